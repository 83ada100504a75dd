package services

import (
	"fmt"
	"time"

	"github.com/mithuan2002/testisimple/internal/models"
	"github.com/mithuan2002/testisimple/internal/storage"
	"github.com/mithuan2002/testisimple/pkg/logger"

	"go.uber.org/zap"
)

// activityTimeFormat is the display format stored with each entry, matching
// what the dashboard renders verbatim.
const activityTimeFormat = "Jan 2, 2006, 3:04:05 PM"

// ActivityService appends and reads the audit log.
type ActivityService struct {
	store storage.Storage
	now   func() time.Time
}

// NewActivityService creates a new ActivityService instance
func NewActivityService(store storage.Storage) *ActivityService {
	return &ActivityService{store: store, now: time.Now}
}

// Record appends one entry. Activity logging is a side effect of other
// operations, so failures are logged server-side and swallowed rather than
// failing the primary operation.
func (s *ActivityService) Record(activityType, format string, args ...any) {
	activity := &models.Activity{
		Type:      activityType,
		Message:   fmt.Sprintf(format, args...),
		Timestamp: s.now().Format(activityTimeFormat),
	}

	if err := s.store.CreateActivity(activity); err != nil {
		logger.Error("Failed to record activity",
			zap.String("type", activityType),
			zap.Error(err),
		)
	}
}

// Recent returns up to limit entries, most recent first
func (s *ActivityService) Recent(limit int) ([]*models.Activity, error) {
	return s.store.GetRecentActivities(limit)
}
