package services

import (
	"time"

	"github.com/mithuan2002/testisimple/internal/models"
	"github.com/mithuan2002/testisimple/internal/storage"
)

// SubmissionService manages proof-of-engagement submissions.
type SubmissionService struct {
	store    storage.Storage
	activity *ActivityService
}

// NewSubmissionService creates a new SubmissionService instance
func NewSubmissionService(store storage.Storage, activity *ActivityService) *SubmissionService {
	return &SubmissionService{store: store, activity: activity}
}

// List returns every submission
func (s *SubmissionService) List() ([]*models.Submission, error) {
	return s.store.GetAllSubmissions()
}

// ByCampaign returns the submissions tied to one campaign
func (s *SubmissionService) ByCampaign(campaignID int) ([]*models.Submission, error) {
	return s.store.GetSubmissionsByCampaign(campaignID)
}

// Create stores a public form submission. The campaign reference is not
// enforced; submissions for an unknown campaign are accepted and the
// activity entry falls back to a generic title.
func (s *SubmissionService) Create(req models.CreateSubmissionRequest, screenshotURL string) (*models.Submission, error) {
	submission := &models.Submission{
		CampaignID:      req.CampaignID,
		Name:            req.Name,
		Email:           req.Email,
		Platform:        req.Platform,
		ScreenshotURL:   screenshotURL,
		EngagementCount: req.EngagementCount,
		Points:          0,
		SubmittedAt:     time.Now().Format("Jan 2, 2006"),
	}

	if err := s.store.CreateSubmission(submission); err != nil {
		return nil, err
	}

	campaignTitle := "a campaign"
	if campaign, err := s.store.GetCampaign(submission.CampaignID); err == nil && campaign != nil {
		campaignTitle = campaign.Title
	}
	s.activity.Record(models.ActivityTypeUpload,
		`<span class="font-medium">%s</span> submitted a new screenshot for <span class="font-medium">%s</span>`,
		submission.Name, campaignTitle)

	return submission, nil
}

// AwardPoints sets the submission's point value and logs the award.
// Returns storage.ErrNotFound when the submission does not exist.
func (s *SubmissionService) AwardPoints(id, points int) (*models.Submission, error) {
	submission, err := s.store.UpdateSubmissionPoints(id, points)
	if err != nil {
		return nil, err
	}

	s.activity.Record(models.ActivityTypePoints,
		`<span class="font-medium">%s</span> was awarded <span class="font-medium">%d points</span> for their submission`,
		submission.Name, points)

	return submission, nil
}
