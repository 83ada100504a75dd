package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mithuan2002/testisimple/internal/models"
	"github.com/mithuan2002/testisimple/internal/sms"
	"github.com/mithuan2002/testisimple/internal/storage"
)

// ContactService manages the notification contact list.
type ContactService struct {
	store       storage.Storage
	sender      sms.Sender
	activity    *ActivityService
	sendTimeout time.Duration
}

// NewContactService creates a new ContactService instance
func NewContactService(store storage.Storage, sender sms.Sender, activity *ActivityService, sendTimeout time.Duration) *ContactService {
	return &ContactService{
		store:       store,
		sender:      sender,
		activity:    activity,
		sendTimeout: sendTimeout,
	}
}

// List returns every contact
func (s *ContactService) List() ([]*models.Contact, error) {
	return s.store.GetAllContacts()
}

// Create adds a contact and logs the activity.
// Returns storage.ErrDuplicatePhone when the phone number is taken.
func (s *ContactService) Create(req models.CreateContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: true,
	}
	if req.IsActive != nil {
		contact.IsActive = *req.IsActive
	}

	if err := s.store.CreateContact(contact); err != nil {
		return nil, err
	}

	s.activity.Record(models.ActivityTypeContact,
		`<span class="font-medium">New contact added</span>: %s`, contact.Name)
	return contact, nil
}

// Update applies a partial update to a contact.
func (s *ContactService) Update(id int, req models.UpdateContactRequest) (*models.Contact, error) {
	contact, err := s.store.UpdateContact(id, req)
	if err != nil {
		return nil, err
	}

	s.activity.Record(models.ActivityTypeContact,
		`<span class="font-medium">Contact updated</span>: %s`, contact.Name)
	return contact, nil
}

// SetActive toggles a contact's active flag.
func (s *ContactService) SetActive(id int, active bool) (*models.Contact, error) {
	contact, err := s.store.UpdateContact(id, models.UpdateContactRequest{IsActive: &active})
	if err != nil {
		return nil, err
	}

	state := "deactivated"
	if active {
		state = "activated"
	}
	s.activity.Record(models.ActivityTypeContact,
		`Contact <span class="font-medium">%s</span> %s`, contact.Name, state)
	return contact, nil
}

// Delete removes a contact. Returns storage.ErrNotFound when it does not
// exist so the API can answer 404 instead of silently succeeding.
func (s *ContactService) Delete(id int) error {
	contact, err := s.store.GetContact(id)
	if err != nil {
		return err
	}
	if contact == nil {
		return storage.ErrNotFound
	}

	if err := s.store.DeleteContact(id); err != nil {
		return err
	}

	s.activity.Record(models.ActivityTypeContact,
		`<span class="font-medium">Contact deleted</span>: %s`, contact.Name)
	return nil
}

// SendTest sends a single test message to the contact through the provider.
func (s *ContactService) SendTest(ctx context.Context, id int) error {
	contact, err := s.store.GetContact(id)
	if err != nil {
		return err
	}
	if contact == nil {
		return storage.ErrNotFound
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	if err := s.sender.Send(sendCtx, contact.Phone, "This is a test message from your promotion dashboard."); err != nil {
		s.activity.Record(models.ActivityTypeError,
			`Failed to send test SMS to <span class="font-medium">%s</span>`, contact.Name)
		return fmt.Errorf("test SMS failed: %w", err)
	}

	s.activity.Record(models.ActivityTypeNotification,
		`Test SMS sent to <span class="font-medium">%s</span> (%s)`, contact.Name, contact.Phone)
	return nil
}
