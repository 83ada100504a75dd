package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mithuan2002/testisimple/internal/config"
	"github.com/mithuan2002/testisimple/internal/handlers"
	"github.com/mithuan2002/testisimple/internal/services"
	"github.com/mithuan2002/testisimple/internal/session"
	"github.com/mithuan2002/testisimple/internal/sms"
	"github.com/mithuan2002/testisimple/internal/storage"
	"github.com/mithuan2002/testisimple/pkg/logger"
	"github.com/mithuan2002/testisimple/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxRequestBody bounds incoming payloads; screenshot uploads fit well
// within this.
const maxRequestBody = 10 << 20

// SetupServer initializes storage, services and routes and returns the
// configured HTTP server plus a cleanup func closing the storage backend.
func SetupServer(cfg *config.Config) (*http.Server, func(), error) {
	if cfg == nil {
		return nil, nil, errors.New("configuration is required")
	}
	if cfg.Server.Port <= 0 {
		return nil, nil, errors.New("invalid server port")
	}

	// Storage backend: SQLite by default, in-memory for demo installs
	var store storage.Storage
	var sessionStore session.Store
	if cfg.Database.InMemory {
		store = storage.NewMemory()
		sessionStore = session.NewMemStore()
	} else {
		sqlStore, err := storage.NewSQLite(cfg.Database.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		store = sqlStore

		sessionStore, err = session.NewSQLStore(sqlStore.GetDB())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize session store: %w", err)
		}
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close storage", zap.Error(err))
		}
	}

	// Seed the admin account (and demo data if requested)
	if cfg.Seed.Enable {
		if err := storage.Seed(store, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword, cfg.Seed.DemoData); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to seed storage: %w", err)
		}
	}

	// SMS provider: Twilio when credentials are configured, otherwise a
	// logging no-op so the rest of the dashboard stays usable.
	var sender sms.Sender = sms.Noop{}
	if cfg.SMS.AccountSID != "" && cfg.SMS.AuthToken != "" {
		twilio, err := sms.NewTwilioClient(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.FromNumber)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to initialize SMS client: %w", err)
		}
		sender = twilio
	}

	if err := os.MkdirAll(cfg.Server.UploadDir, 0o750); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	sessions := session.NewManager(sessionStore, cfg.Session.CookieName, cfg.Session.TTL, cfg.Session.Secure)

	// Initialize services
	activityService := services.NewActivityService(store)
	authService := services.NewAuthService(store)
	campaignService := services.NewCampaignService(store, sender, activityService, cfg.Server.BaseURL, cfg.SMS.Workers, cfg.SMS.SendTimeout)
	contactService := services.NewContactService(store, sender, activityService, cfg.SMS.SendTimeout)
	submissionService := services.NewSubmissionService(store, activityService)
	leaderboardService := services.NewLeaderboardService(store)
	statsService := services.NewStatsService(store)

	// Initialize router
	router := gin.Default()
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.AuditLogMiddleware())
	router.Use(middleware.RequestSizeLimitMiddleware(maxRequestBody))

	setupRoutes(router, cfg, sessions,
		handlers.NewAuthHandler(authService, sessions, activityService),
		handlers.NewCampaignHandler(campaignService, submissionService),
		handlers.NewContactHandler(contactService),
		handlers.NewSubmissionHandler(submissionService, cfg.Server.UploadDir),
		handlers.NewLeaderboardHandler(leaderboardService),
		handlers.NewDashboardHandler(statsService, activityService),
	)

	// Create server with security timeouts
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return srv, cleanup, nil
}

// setupRoutes configures all the HTTP routes
func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	sessions *session.Manager,
	authHandler *handlers.AuthHandler,
	campaignHandler *handlers.CampaignHandler,
	contactHandler *handlers.ContactHandler,
	submissionHandler *handlers.SubmissionHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	// Basic health check endpoint (public)
	router.GET("/health", handleHealthCheck)

	// Stored screenshots (public; submission form previews them)
	router.Static("/uploads", cfg.Server.UploadDir)

	// Auth endpoints (public)
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/status", authHandler.Status)
	}

	// Public endpoints backing the submission form
	public := router.Group("/api")
	{
		public.GET("/campaigns/:id", campaignHandler.GetCampaign)
		public.GET("/campaigns/:id/submissions", campaignHandler.CampaignSubmissions)
		public.POST("/submissions", submissionHandler.CreateSubmission)
	}

	// Admin routes behind the session guard
	protected := router.Group("/api")
	protected.Use(middleware.RequireSession(sessions))
	{
		protected.GET("/stats", dashboardHandler.Stats)
		protected.GET("/activities/recent", dashboardHandler.RecentActivities)

		protected.GET("/campaigns", campaignHandler.ListCampaigns)
		protected.POST("/campaigns", campaignHandler.CreateCampaign)
		protected.DELETE("/campaigns/:id", campaignHandler.DeleteCampaign)
		protected.POST("/campaigns/:id/resend-sms", campaignHandler.ResendSMS)

		protected.GET("/submissions", submissionHandler.ListSubmissions)
		protected.PATCH("/submissions/:id/points", submissionHandler.UpdatePoints)

		protected.GET("/contacts", contactHandler.ListContacts)
		protected.POST("/contacts", contactHandler.CreateContact)
		protected.PATCH("/contacts/:id", contactHandler.UpdateContact)
		protected.PATCH("/contacts/:id/status", contactHandler.UpdateContactStatus)
		protected.DELETE("/contacts/:id", contactHandler.DeleteContact)
		protected.POST("/contacts/:id/test-sms", contactHandler.SendTestSMS)

		protected.GET("/leaderboard", leaderboardHandler.Full)
		protected.GET("/leaderboard/top", leaderboardHandler.Top)
	}
}

// handleHealthCheck handles the health check endpoint
func handleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"time":    time.Now().UTC(),
		"version": version,
		"service": "promo-dashboard",
	})
}

// StartServer starts the HTTP server and handles graceful shutdown
func StartServer(srv *http.Server) error {
	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create a timeout context for shutdown
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
