package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeed_CreatesHashedAdmin(t *testing.T) {
	store := NewMemory()

	require.NoError(t, Seed(store, "admin", "secret-pass", false))

	admin, err := store.GetAdminByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	// Stored value is a bcrypt hash, never the plaintext password
	assert.NotEqual(t, "secret-pass", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("secret-pass")))
}

func TestSeed_Idempotent(t *testing.T) {
	store := NewMemory()

	require.NoError(t, Seed(store, "admin", "secret-pass", false))
	first, err := store.GetAdminByUsername("admin")
	require.NoError(t, err)

	require.NoError(t, Seed(store, "admin", "other-pass", false))
	second, err := store.GetAdminByUsername("admin")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.PasswordHash, second.PasswordHash)
}

func TestSeed_DemoData(t *testing.T) {
	store := NewMemory()

	require.NoError(t, Seed(store, "admin", "secret-pass", true))

	contacts, err := store.GetAllContacts()
	require.NoError(t, err)
	assert.NotEmpty(t, contacts)

	campaigns, err := store.GetAllCampaigns()
	require.NoError(t, err)
	assert.Len(t, campaigns, 3)

	submissions, err := store.GetAllSubmissions()
	require.NoError(t, err)
	assert.NotEmpty(t, submissions)

	// Re-seeding with existing contacts leaves the data alone
	require.NoError(t, Seed(store, "admin", "secret-pass", true))
	contactsAgain, err := store.GetAllContacts()
	require.NoError(t, err)
	assert.Len(t, contactsAgain, len(contacts))
}
