package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mithuan2002/testisimple/pkg/logger"

	"go.uber.org/zap"
)

// Config holds all configuration settings
type Config struct {
	Server struct {
		Port      int    `json:"port"`
		Host      string `json:"host"`
		BaseURL   string `json:"base_url"`
		UploadDir string `json:"upload_dir"`
	} `json:"server"`
	Database struct {
		DSN      string `json:"dsn"`
		InMemory bool   `json:"in_memory"`
	} `json:"database"`
	Session struct {
		CookieName string        `json:"cookie_name"`
		TTL        time.Duration `json:"ttl"`
		Secure     bool          `json:"secure"`
	} `json:"session"`
	SMS struct {
		AccountSID  string        `json:"account_sid"`
		AuthToken   string        `json:"auth_token"`
		FromNumber  string        `json:"from_number"`
		Workers     int           `json:"workers"`
		SendTimeout time.Duration `json:"send_timeout"`
	} `json:"sms"`
	Logging struct {
		Level string `json:"level"`
		Path  string `json:"path"`
	} `json:"logging"`
	Seed struct {
		Enable        bool   `json:"enable"`
		AdminUsername string `json:"admin_username"`
		AdminPassword string `json:"admin_password"`
		DemoData      bool   `json:"demo_data"`
	} `json:"seed"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	// Validate path to prevent directory traversal
	cleanPath := filepath.Clean(path)
	if !filepath.IsAbs(cleanPath) {
		return nil, fmt.Errorf("config path must be absolute")
	}

	// Check if file exists and is a regular file
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("config file error: %w", err)
	}
	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("config path is not a regular file")
	}

	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("Failed to close config file", zap.Error(closeErr))
		}
	}()

	config := DefaultConfig()
	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, err
	}
	config.ApplyEnv()

	return config, nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.Server.Port = 5000
	config.Server.Host = "localhost"
	config.Server.BaseURL = "http://localhost:5000"
	config.Server.UploadDir = "uploads"
	config.Database.DSN = "file:promoboard.db?cache=shared&mode=rwc"
	config.Database.InMemory = false
	config.Session.CookieName = "promoboard_session"
	config.Session.TTL = 24 * time.Hour
	config.Session.Secure = false
	config.SMS.Workers = 4
	config.SMS.SendTimeout = 10 * time.Second
	config.Logging.Level = "info"
	config.Logging.Path = "server.log"
	config.Seed.Enable = true
	config.Seed.AdminUsername = "admin"
	config.Seed.AdminPassword = "admin"
	return config
}

// ApplyEnv overlays secrets and deployment settings from the environment.
// Environment values win over the config file so credentials never need to
// be written to disk.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("BASE_URL"); v != "" {
		c.Server.BaseURL = v
	}
	if v := os.Getenv("TWILIO_ACCOUNT_SID"); v != "" {
		c.SMS.AccountSID = v
	}
	if v := os.Getenv("TWILIO_AUTH_TOKEN"); v != "" {
		c.SMS.AuthToken = v
	}
	if v := os.Getenv("TWILIO_PHONE_NUMBER"); v != "" {
		c.SMS.FromNumber = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.Seed.AdminPassword = v
	}
}
