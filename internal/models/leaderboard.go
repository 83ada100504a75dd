package models

// LeaderboardEntry is a derived, read-only row computed from the full
// submission set. ID is the first submission ID seen for the promoter.
type LeaderboardEntry struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Points          int    `json:"points"`
	SubmissionCount int    `json:"submissionCount"`
	TopCampaign     string `json:"topCampaign"`
	LastSubmission  string `json:"lastSubmission"`
	Rank            int    `json:"rank"`
}

// TopPromoter is the condensed variant used by the dashboard's top-5 widget.
// Promoters are keyed by name alone here.
type TopPromoter struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Rank   int    `json:"rank"`
}
