package models

// Submission is a participant's proof-of-engagement entry for one campaign.
// EngagementCount is the externally reported interaction count captured at
// submission time; Points is the admin-awarded score and defaults to 0.
type Submission struct {
	ID              int    `json:"id"`
	CampaignID      int    `json:"campaignId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Platform        string `json:"platform"`
	ScreenshotURL   string `json:"screenshotUrl"`
	EngagementCount int    `json:"engagementCount"`
	Points          int    `json:"points"`
	SubmittedAt     string `json:"submittedAt"`
}

// CreateSubmissionRequest represents the request body for the public campaign
// form. ScreenshotURL may be empty when the screenshot arrives as a multipart
// file instead.
type CreateSubmissionRequest struct {
	CampaignID      int    `json:"campaignId" form:"campaignId" binding:"required"`
	Name            string `json:"name" form:"name" binding:"required"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	Platform        string `json:"platform" form:"platform" binding:"required"`
	ScreenshotURL   string `json:"screenshotUrl" form:"screenshotUrl"`
	EngagementCount int    `json:"engagementCount" form:"engagementCount" binding:"gte=0"`
}

// UpdatePointsRequest carries the new point value for a submission. Older
// dashboard builds sent the value under "engagementCount"; that key is still
// accepted as an alias for "points".
type UpdatePointsRequest struct {
	Points          *int `json:"points"`
	EngagementCount *int `json:"engagementCount"`
}

// Value resolves the requested point value, preferring the canonical key.
// The second return is false when neither key was present.
func (r *UpdatePointsRequest) Value() (int, bool) {
	if r.Points != nil {
		return *r.Points, true
	}
	if r.EngagementCount != nil {
		return *r.EngagementCount, true
	}
	return 0, false
}
