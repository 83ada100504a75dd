package models

// Campaign represents a time-boxed promotion with an SMS message and a list
// of target platforms. Dates are free-text strings supplied by the dashboard,
// not parsed timestamps.
type Campaign struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	SmsMessage  string   `json:"smsMessage"`
	Status      string   `json:"status"`
	Platforms   []string `json:"platforms"`
	CreatedAt   string   `json:"createdAt"`
	FormURL     string   `json:"formUrl,omitempty"`
}

// CampaignStatusActive is the status assigned to newly created campaigns.
const CampaignStatusActive = "active"

// CreateCampaignRequest represents the request body for creating a campaign
type CreateCampaignRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
	SmsMessage  string   `json:"smsMessage" binding:"required"`
	Platforms   []string `json:"platforms" binding:"required,min=1"`
}
