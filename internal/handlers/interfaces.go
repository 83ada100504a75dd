package handlers

import (
	"context"

	"github.com/mithuan2002/testisimple/internal/models"
	"github.com/mithuan2002/testisimple/internal/services"
)

// AuthServiceInterface defines the contract for admin authentication
// This interface is used for dependency injection and testing
type AuthServiceInterface interface {
	Authenticate(username, password string) (*models.Admin, error)
}

// CampaignServiceInterface defines the contract for campaign operations
// This interface is used for dependency injection and testing
type CampaignServiceInterface interface {
	List() ([]*models.Campaign, error)
	Get(id int) (*models.Campaign, error)
	Create(ctx context.Context, req models.CreateCampaignRequest) (*models.Campaign, *services.NotifyResult, error)
	Resend(ctx context.Context, id int) (*services.NotifyResult, error)
	Delete(id int) error
}

// ContactServiceInterface defines the contract for contact operations
// This interface is used for dependency injection and testing
type ContactServiceInterface interface {
	List() ([]*models.Contact, error)
	Create(req models.CreateContactRequest) (*models.Contact, error)
	Update(id int, req models.UpdateContactRequest) (*models.Contact, error)
	SetActive(id int, active bool) (*models.Contact, error)
	Delete(id int) error
	SendTest(ctx context.Context, id int) error
}

// SubmissionServiceInterface defines the contract for submission operations
// This interface is used for dependency injection and testing
type SubmissionServiceInterface interface {
	List() ([]*models.Submission, error)
	ByCampaign(campaignID int) ([]*models.Submission, error)
	Create(req models.CreateSubmissionRequest, screenshotURL string) (*models.Submission, error)
	AwardPoints(id, points int) (*models.Submission, error)
}

// LeaderboardServiceInterface defines the contract for leaderboard queries
type LeaderboardServiceInterface interface {
	Full() ([]*models.LeaderboardEntry, error)
	Top() ([]*models.TopPromoter, error)
}

// StatsServiceInterface defines the contract for dashboard counters
type StatsServiceInterface interface {
	Compute() (*services.Stats, error)
}

// ActivityServiceInterface defines the contract for the activity feed
type ActivityServiceInterface interface {
	Record(activityType, format string, args ...any)
	Recent(limit int) ([]*models.Activity, error)
}
