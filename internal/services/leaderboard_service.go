package services

import (
	"sort"

	"github.com/mithuan2002/testisimple/internal/models"
	"github.com/mithuan2002/testisimple/internal/storage"
)

// topPromoterLimit caps the condensed leaderboard variant.
const topPromoterLimit = 5

// LeaderboardService derives promoter rankings from the submission set.
// Rankings are computed fresh on every call; nothing is cached.
type LeaderboardService struct {
	store storage.Storage
}

// NewLeaderboardService creates a new LeaderboardService instance
func NewLeaderboardService(store storage.Storage) *LeaderboardService {
	return &LeaderboardService{store: store}
}

// promoterAccum collects per-promoter totals during the single pass over
// the submission set.
type promoterAccum struct {
	entry     *models.LeaderboardEntry
	campaigns map[int]int // campaign ID -> summed engagement
	order     []int       // campaign IDs in first-encountered order
}

// Full computes the complete leaderboard. Promoters are keyed by name+email;
// points are the sum of engagement counts across their submissions. Each
// promoter's top campaign is the one with the highest summed engagement,
// ties resolving to the first campaign encountered. Ranks are 1-based and
// distinct; equal point totals keep their first-encountered order.
func (s *LeaderboardService) Full() ([]*models.LeaderboardEntry, error) {
	submissions, err := s.store.GetAllSubmissions()
	if err != nil {
		return nil, err
	}

	accums := make(map[string]*promoterAccum)
	var keys []string

	for _, submission := range submissions {
		key := submission.Name + ":" + submission.Email
		accum, ok := accums[key]
		if !ok {
			accum = &promoterAccum{
				entry: &models.LeaderboardEntry{
					ID:    submission.ID,
					Name:  submission.Name,
					Email: submission.Email,
				},
				campaigns: make(map[int]int),
			}
			accums[key] = accum
			keys = append(keys, key)
		}

		accum.entry.Points += submission.EngagementCount
		accum.entry.SubmissionCount++
		accum.entry.LastSubmission = submission.SubmittedAt

		if _, seen := accum.campaigns[submission.CampaignID]; !seen {
			accum.order = append(accum.order, submission.CampaignID)
		}
		accum.campaigns[submission.CampaignID] += submission.EngagementCount
	}

	entries := make([]*models.LeaderboardEntry, 0, len(keys))
	for _, key := range keys {
		accum := accums[key]

		// Strict greater-than comparison: ties keep the first campaign.
		topCampaignID := 0
		topEngagement := 0
		for _, campaignID := range accum.order {
			if accum.campaigns[campaignID] > topEngagement {
				topEngagement = accum.campaigns[campaignID]
				topCampaignID = campaignID
			}
		}

		if topCampaignID != 0 {
			campaign, err := s.store.GetCampaign(topCampaignID)
			if err != nil {
				return nil, err
			}
			if campaign != nil {
				accum.entry.TopCampaign = campaign.Title
			}
		}

		entries = append(entries, accum.entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	for i, entry := range entries {
		entry.Rank = i + 1
	}

	return entries, nil
}

// Top computes the condensed top-5 variant, keyed by promoter name alone.
func (s *LeaderboardService) Top() ([]*models.TopPromoter, error) {
	submissions, err := s.store.GetAllSubmissions()
	if err != nil {
		return nil, err
	}

	promoters := make(map[string]*models.TopPromoter)
	var order []string

	for _, submission := range submissions {
		promoter, ok := promoters[submission.Name]
		if !ok {
			promoter = &models.TopPromoter{ID: submission.ID, Name: submission.Name}
			promoters[submission.Name] = promoter
			order = append(order, submission.Name)
		}
		promoter.Points += submission.EngagementCount
	}

	entries := make([]*models.TopPromoter, 0, len(order))
	for _, name := range order {
		entries = append(entries, promoters[name])
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	if len(entries) > topPromoterLimit {
		entries = entries[:topPromoterLimit]
	}
	for i, entry := range entries {
		entry.Rank = i + 1
	}

	return entries, nil
}
