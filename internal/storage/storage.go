package storage

import (
	"errors"

	"github.com/mithuan2002/testisimple/internal/models"
)

var (
	// ErrNotFound indicates an update targeted an entity that does not exist
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicatePhone indicates a contact write would violate phone uniqueness
	ErrDuplicatePhone = errors.New("phone number already exists")

	// ErrDuplicateUsername indicates an admin write would violate username uniqueness
	ErrDuplicateUsername = errors.New("username already exists")
)

// Storage is the persistence contract for the dashboard. Lookups by ID
// return (nil, nil) when the entity does not exist; updates on a missing ID
// return ErrNotFound; deletes on a missing ID are silent no-ops.
//
// Two implementations exist: SQLite (production) and Memory (demo/tests,
// single instance only).
type Storage interface {
	// Admin accounts
	GetAdmin(id int) (*models.Admin, error)
	GetAdminByUsername(username string) (*models.Admin, error)
	CreateAdmin(admin *models.Admin) error

	// Contacts
	GetContact(id int) (*models.Contact, error)
	GetAllContacts() ([]*models.Contact, error)
	CreateContact(contact *models.Contact) error
	UpdateContact(id int, update models.UpdateContactRequest) (*models.Contact, error)
	DeleteContact(id int) error

	// Campaigns
	GetCampaign(id int) (*models.Campaign, error)
	GetAllCampaigns() ([]*models.Campaign, error)
	CreateCampaign(campaign *models.Campaign) error
	UpdateCampaign(campaign *models.Campaign) error
	// DeleteCampaign also deletes the campaign's submissions so no
	// orphaned submissions survive.
	DeleteCampaign(id int) error

	// Submissions
	GetSubmission(id int) (*models.Submission, error)
	GetAllSubmissions() ([]*models.Submission, error)
	GetSubmissionsByCampaign(campaignID int) ([]*models.Submission, error)
	CreateSubmission(submission *models.Submission) error
	UpdateSubmissionPoints(id, points int) (*models.Submission, error)

	// Activity log (append-only; recency is descending insertion order)
	GetAllActivities() ([]*models.Activity, error)
	GetRecentActivities(limit int) ([]*models.Activity, error)
	CreateActivity(activity *models.Activity) error

	Close() error
}
