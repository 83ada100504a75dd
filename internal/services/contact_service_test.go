package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mithuan2002/testisimple/internal/models"
	"github.com/mithuan2002/testisimple/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContactService(t *testing.T, sender *fakeSender) (*ContactService, storage.Storage) {
	t.Helper()
	store := storage.NewMemory()
	activity := NewActivityService(store)
	return NewContactService(store, sender, activity, time.Second), store
}

func TestContactService_Create(t *testing.T) {
	svc, store := newTestContactService(t, &fakeSender{})

	email := "sarah@example.com"
	contact, err := svc.Create(models.CreateContactRequest{
		Name:  "Sarah Johnson",
		Phone: "+15550100",
		Email: &email,
	})
	require.NoError(t, err)
	assert.True(t, contact.IsActive, "contacts default to active")
	require.NotNil(t, contact.Email)
	assert.Equal(t, email, *contact.Email)

	activities, err := store.GetRecentActivities(10)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActivityTypeContact, activities[0].Type)
}

func TestContactService_CreateInactive(t *testing.T) {
	svc, _ := newTestContactService(t, &fakeSender{})

	inactive := false
	contact, err := svc.Create(models.CreateContactRequest{
		Name:     "Quiet",
		Phone:    "+15550101",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, contact.IsActive)
}

func TestContactService_CreateDuplicatePhone(t *testing.T) {
	svc, _ := newTestContactService(t, &fakeSender{})

	_, err := svc.Create(models.CreateContactRequest{Name: "First", Phone: "+15550100"})
	require.NoError(t, err)

	_, err = svc.Create(models.CreateContactRequest{Name: "Second", Phone: "+15550100"})
	assert.ErrorIs(t, err, storage.ErrDuplicatePhone)
}

func TestContactService_Update(t *testing.T) {
	svc, _ := newTestContactService(t, &fakeSender{})

	contact, err := svc.Create(models.CreateContactRequest{Name: "Old Name", Phone: "+15550100"})
	require.NoError(t, err)

	newName := "New Name"
	updated, err := svc.Update(contact.ID, models.UpdateContactRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "+15550100", updated.Phone, "unspecified fields are untouched")
}

func TestContactService_UpdateNotFound(t *testing.T) {
	svc, _ := newTestContactService(t, &fakeSender{})

	name := "Ghost"
	_, err := svc.Update(99, models.UpdateContactRequest{Name: &name})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestContactService_SetActive(t *testing.T) {
	svc, store := newTestContactService(t, &fakeSender{})

	contact, err := svc.Create(models.CreateContactRequest{Name: "Toggle", Phone: "+15550100"})
	require.NoError(t, err)

	updated, err := svc.SetActive(contact.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	activities, err := store.GetRecentActivities(10)
	require.NoError(t, err)
	assert.Contains(t, activities[0].Message, "deactivated")

	updated, err = svc.SetActive(contact.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestContactService_Delete(t *testing.T) {
	svc, store := newTestContactService(t, &fakeSender{})

	contact, err := svc.Create(models.CreateContactRequest{Name: "Gone", Phone: "+15550100"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(contact.ID))

	fetched, err := store.GetContact(contact.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	assert.ErrorIs(t, svc.Delete(contact.ID), storage.ErrNotFound)
}

func TestContactService_SendTest(t *testing.T) {
	sender := &fakeSender{}
	svc, store := newTestContactService(t, sender)

	contact, err := svc.Create(models.CreateContactRequest{Name: "Sarah", Phone: "+15550100"})
	require.NoError(t, err)

	require.NoError(t, svc.SendTest(context.Background(), contact.ID))
	assert.Equal(t, []string{"+15550100"}, sender.sent)

	activities, err := store.GetRecentActivities(10)
	require.NoError(t, err)
	assert.Equal(t, models.ActivityTypeNotification, activities[0].Type)
}

func TestContactService_SendTestFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("provider down")}
	svc, store := newTestContactService(t, sender)

	contact, err := svc.Create(models.CreateContactRequest{Name: "Sarah", Phone: "+15550100"})
	require.NoError(t, err)

	err = svc.SendTest(context.Background(), contact.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider down")

	activities, err := store.GetRecentActivities(10)
	require.NoError(t, err)
	assert.Equal(t, models.ActivityTypeError, activities[0].Type)
}

func TestContactService_SendTestNotFound(t *testing.T) {
	svc, _ := newTestContactService(t, &fakeSender{})

	assert.ErrorIs(t, svc.SendTest(context.Background(), 99), storage.ErrNotFound)
}
