package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "http://localhost:5000", cfg.Server.BaseURL)
	assert.Equal(t, "promoboard_session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 4, cfg.SMS.Workers)
	assert.Equal(t, 10*time.Second, cfg.SMS.SendTimeout)
	assert.True(t, cfg.Seed.Enable)
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{
			"server": {"port": 8080, "base_url": "https://promo.example.com"},
			"database": {"in_memory": true},
			"seed": {"enable": false}
		}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "https://promo.example.com", cfg.Server.BaseURL)
		assert.True(t, cfg.Database.InMemory)
		assert.False(t, cfg.Seed.Enable)
		// Values the file omits keep their defaults
		assert.Equal(t, "promoboard_session", cfg.Session.CookieName)
	})

	t.Run("relative path rejected", func(t *testing.T) {
		_, err := LoadConfig("config.json")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("BASE_URL", "https://live.example.com")
	t.Setenv("TWILIO_ACCOUNT_SID", "ACtest")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15550199")
	t.Setenv("ADMIN_PASSWORD", "override")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "https://live.example.com", cfg.Server.BaseURL)
	assert.Equal(t, "ACtest", cfg.SMS.AccountSID)
	assert.Equal(t, "secret", cfg.SMS.AuthToken)
	assert.Equal(t, "+15550199", cfg.SMS.FromNumber)
	assert.Equal(t, "override", cfg.Seed.AdminPassword)
}
