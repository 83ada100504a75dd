package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mithuan2002/testisimple/internal/models"
	"github.com/mithuan2002/testisimple/internal/sms"
	"github.com/mithuan2002/testisimple/internal/storage"
	"github.com/mithuan2002/testisimple/pkg/logger"

	"go.uber.org/zap"
)

// SendFailure records one contact the SMS fan-out could not reach.
type SendFailure struct {
	ContactID int    `json:"contactId"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Error     string `json:"error"`
}

// NotifyResult aggregates the outcome of one notification fan-out. It is
// returned to the API caller instead of being swallowed into log entries.
type NotifyResult struct {
	Total    int           `json:"total"`
	Sent     int           `json:"sent"`
	Failed   int           `json:"failed"`
	Failures []SendFailure `json:"failures,omitempty"`
}

// CampaignService manages campaigns and their SMS notification fan-out.
type CampaignService struct {
	store       storage.Storage
	sender      sms.Sender
	activity    *ActivityService
	baseURL     string
	workers     int
	sendTimeout time.Duration
}

// NewCampaignService creates a new CampaignService instance
func NewCampaignService(store storage.Storage, sender sms.Sender, activity *ActivityService, baseURL string, workers int, sendTimeout time.Duration) *CampaignService {
	if workers <= 0 {
		workers = 4
	}
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &CampaignService{
		store:       store,
		sender:      sender,
		activity:    activity,
		baseURL:     baseURL,
		workers:     workers,
		sendTimeout: sendTimeout,
	}
}

// List returns every campaign
func (s *CampaignService) List() ([]*models.Campaign, error) {
	return s.store.GetAllCampaigns()
}

// Get returns one campaign, or nil if it does not exist
func (s *CampaignService) Get(id int) (*models.Campaign, error) {
	return s.store.GetCampaign(id)
}

// Create stores a new campaign, generates its public form URL and notifies
// every active contact by SMS. The campaign is created even when every send
// fails; the NotifyResult tells the caller what happened downstream.
func (s *CampaignService) Create(ctx context.Context, req models.CreateCampaignRequest) (*models.Campaign, *NotifyResult, error) {
	campaign := &models.Campaign{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		SmsMessage:  req.SmsMessage,
		Status:      models.CampaignStatusActive,
		Platforms:   req.Platforms,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}

	if err := s.store.CreateCampaign(campaign); err != nil {
		return nil, nil, err
	}

	// The form URL needs the assigned ID, so it is written back after insert.
	campaign.FormURL = fmt.Sprintf("%s/campaign/%d", s.baseURL, campaign.ID)
	if err := s.store.UpdateCampaign(campaign); err != nil {
		return nil, nil, err
	}

	result, err := s.notify(ctx, campaign)
	if err != nil {
		// Fan-out setup failed (contact listing); the campaign still exists.
		logger.Error("Campaign notification fan-out failed",
			zap.Int("campaign_id", campaign.ID),
			zap.Error(err),
		)
		result = &NotifyResult{}
	}

	s.activity.Record(models.ActivityTypeCampaign,
		`<span class="font-medium">New campaign created</span>: %s`, campaign.Title)
	if result.Total > 0 {
		// Campaign type, not notification: notification entries are
		// reserved for individual deliveries so they double as the
		// messages-sent counter.
		s.activity.Record(models.ActivityTypeCampaign,
			`SMS notifications sent to <span class="font-medium">%d contacts</span> for %s`,
			result.Total, campaign.Title)
	}

	return campaign, result, nil
}

// Resend repeats the notification fan-out for an existing campaign.
// Returns storage.ErrNotFound when the campaign does not exist.
func (s *CampaignService) Resend(ctx context.Context, id int) (*NotifyResult, error) {
	campaign, err := s.store.GetCampaign(id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, storage.ErrNotFound
	}

	result, err := s.notify(ctx, campaign)
	if err != nil {
		return nil, err
	}

	s.activity.Record(models.ActivityTypeCampaign,
		`SMS notifications resent to <span class="font-medium">%d contacts</span> for %s`,
		result.Total, campaign.Title)
	return result, nil
}

// Delete removes a campaign together with its submissions.
// Returns storage.ErrNotFound when the campaign does not exist.
func (s *CampaignService) Delete(id int) error {
	campaign, err := s.store.GetCampaign(id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return storage.ErrNotFound
	}

	if err := s.store.DeleteCampaign(id); err != nil {
		return err
	}

	s.activity.Record(models.ActivityTypeCampaign,
		`<span class="font-medium">Campaign deleted</span>: %s`, campaign.Title)
	return nil
}

// notify fans the campaign's SMS message out to every active contact with
// bounded concurrency. Each send gets its own timeout so one hanging
// provider call cannot stall the whole request. Per-contact results are
// logged as activities and aggregated into the returned NotifyResult.
func (s *CampaignService) notify(ctx context.Context, campaign *models.Campaign) (*NotifyResult, error) {
	contacts, err := s.store.GetAllContacts()
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	var active []*models.Contact
	for _, contact := range contacts {
		if contact.IsActive {
			active = append(active, contact)
		}
	}

	result := &NotifyResult{Total: len(active)}
	if len(active) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)

	for _, contact := range active {
		wg.Add(1)
		sem <- struct{}{}
		go func(contact *models.Contact) {
			defer wg.Done()
			defer func() { <-sem }()

			sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
			defer cancel()

			err := s.sender.Send(sendCtx, contact.Phone, campaign.SmsMessage)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Failures = append(result.Failures, SendFailure{
					ContactID: contact.ID,
					Name:      contact.Name,
					Phone:     contact.Phone,
					Error:     err.Error(),
				})
				logger.Warn("Failed to send campaign SMS",
					zap.Int("campaign_id", campaign.ID),
					zap.String("phone", contact.Phone),
					zap.Error(err),
				)
				s.activity.Record(models.ActivityTypeError,
					`Failed to send SMS to <span class="font-medium">%s</span>`, contact.Name)
				return
			}

			result.Sent++
			s.activity.Record(models.ActivityTypeNotification,
				`SMS sent to <span class="font-medium">%s</span>`, contact.Name)
		}(contact)
	}

	wg.Wait()
	return result, nil
}
