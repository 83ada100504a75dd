package services

import (
	"github.com/mithuan2002/testisimple/internal/models"
	"github.com/mithuan2002/testisimple/internal/storage"
)

// Stats holds the dashboard's aggregate counters. These are real counts
// computed from storage, not estimates.
type Stats struct {
	ActiveCampaigns    int `json:"activeCampaigns"`
	TotalContacts      int `json:"totalContacts"`
	TotalSubmissions   int `json:"totalSubmissions"`
	TotalPointsAwarded int `json:"totalPointsAwarded"`
	MessagesSent       int `json:"messagesSent"`
}

// StatsService computes dashboard counters on demand.
type StatsService struct {
	store storage.Storage
}

// NewStatsService creates a new StatsService instance
func NewStatsService(store storage.Storage) *StatsService {
	return &StatsService{store: store}
}

// Compute gathers the current counters.
func (s *StatsService) Compute() (*Stats, error) {
	campaigns, err := s.store.GetAllCampaigns()
	if err != nil {
		return nil, err
	}
	contacts, err := s.store.GetAllContacts()
	if err != nil {
		return nil, err
	}
	submissions, err := s.store.GetAllSubmissions()
	if err != nil {
		return nil, err
	}
	activities, err := s.store.GetAllActivities()
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalContacts:    len(contacts),
		TotalSubmissions: len(submissions),
	}
	for _, campaign := range campaigns {
		if campaign.Status == models.CampaignStatusActive {
			stats.ActiveCampaigns++
		}
	}
	for _, submission := range submissions {
		stats.TotalPointsAwarded += submission.Points
	}
	// Every successful SMS delivery is logged as a notification activity,
	// so the count doubles as the messages-sent counter.
	for _, activity := range activities {
		if activity.Type == models.ActivityTypeNotification {
			stats.MessagesSent++
		}
	}

	return stats, nil
}
