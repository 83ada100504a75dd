package models

// Activity types used by the audit log. The dashboard keys icons off these.
const (
	ActivityTypeAuth         = "auth"
	ActivityTypeCampaign     = "campaign"
	ActivityTypeContact      = "contact"
	ActivityTypeNotification = "notification"
	ActivityTypeUpload       = "upload"
	ActivityTypePoints       = "points"
	ActivityTypeError        = "error"
)

// Activity is an append-only audit log entry. Message may carry HTML markup
// (the dashboard renders it as-is); Timestamp is a display string, recency is
// defined by insertion order.
type Activity struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
