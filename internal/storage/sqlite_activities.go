package storage

import (
	"fmt"

	"github.com/mithuan2002/testisimple/internal/models"
)

// GetAllActivities retrieves the full audit log, most recent first
func (s *SQLite) GetAllActivities() ([]*models.Activity, error) {
	return s.queryActivities("SELECT id, type, message, timestamp FROM activities ORDER BY id DESC")
}

// GetRecentActivities retrieves up to limit entries, most recent first
func (s *SQLite) GetRecentActivities(limit int) ([]*models.Activity, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.queryActivities(
		"SELECT id, type, message, timestamp FROM activities ORDER BY id DESC LIMIT ?",
		limit,
	)
}

func (s *SQLite) queryActivities(query string, args ...any) ([]*models.Activity, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		activity := &models.Activity{}
		if err := rows.Scan(&activity.ID, &activity.Type, &activity.Message, &activity.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

// CreateActivity appends an entry to the audit log and assigns its ID
func (s *SQLite) CreateActivity(activity *models.Activity) error {
	if activity == nil {
		return fmt.Errorf("activity cannot be nil")
	}

	res, err := s.db.Exec(
		"INSERT INTO activities (type, message, timestamp) VALUES (?, ?, ?)",
		activity.Type, activity.Message, activity.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	activity.ID, err = lastInsertID(res)
	return err
}
