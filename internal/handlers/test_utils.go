package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/mithuan2002/testisimple/internal/services"
	"github.com/mithuan2002/testisimple/internal/session"
	"github.com/mithuan2002/testisimple/internal/sms"
	"github.com/mithuan2002/testisimple/internal/storage"
	"github.com/mithuan2002/testisimple/pkg/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	logger.SetTestMode(true)
	gin.SetMode(gin.TestMode)
}

// stubSender is an sms.Sender that records recipients and optionally fails.
type stubSender struct {
	mu   sync.Mutex
	sent []string
	err  error
}

var _ sms.Sender = (*stubSender)(nil)

func (s *stubSender) Send(_ context.Context, to, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}

// testEnv bundles real services over in-memory storage for handler tests.
type testEnv struct {
	store    storage.Storage
	sender   *stubSender
	sessions *session.Manager

	auth        *services.AuthService
	campaigns   *services.CampaignService
	contacts    *services.ContactService
	submissions *services.SubmissionService
	leaderboard *services.LeaderboardService
	stats       *services.StatsService
	activity    *services.ActivityService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := storage.NewMemory()
	sender := &stubSender{}
	activity := services.NewActivityService(store)

	return &testEnv{
		store:       store,
		sender:      sender,
		sessions:    session.NewManager(session.NewMemStore(), "test_session", time.Hour, false),
		auth:        services.NewAuthService(store),
		campaigns:   services.NewCampaignService(store, sender, activity, "http://localhost:5000", 2, time.Second),
		contacts:    services.NewContactService(store, sender, activity, time.Second),
		submissions: services.NewSubmissionService(store, activity),
		leaderboard: services.NewLeaderboardService(store),
		stats:       services.NewStatsService(store),
		activity:    activity,
	}
}

// perform runs one request through the router and returns the recorder.
func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
