package storage

import (
	"testing"

	"github.com/mithuan2002/testisimple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubmission(campaignID int, name string, engagement int) *models.Submission {
	return &models.Submission{
		CampaignID:      campaignID,
		Name:            name,
		Email:           name + "@example.com",
		Platform:        "instagram",
		ScreenshotURL:   "/uploads/shot.jpg",
		EngagementCount: engagement,
		SubmittedAt:     "Jul 20, 2023",
	}
}

func TestSubmissions_CreateAndGet(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			submission := testSubmission(1, "sarah", 2840)
			require.NoError(t, store.CreateSubmission(submission))
			assert.Equal(t, 1, submission.ID)

			got, err := store.GetSubmission(submission.ID)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "sarah", got.Name)
			assert.Equal(t, 2840, got.EngagementCount)
			// Points default to zero until an admin awards them
			assert.Equal(t, 0, got.Points)

			missing, err := store.GetSubmission(999)
			require.NoError(t, err)
			assert.Nil(t, missing)
		})
	}
}

func TestSubmissions_ByCampaign(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.CreateSubmission(testSubmission(1, "a", 10)))
			require.NoError(t, store.CreateSubmission(testSubmission(2, "b", 20)))
			require.NoError(t, store.CreateSubmission(testSubmission(1, "c", 30)))

			forOne, err := store.GetSubmissionsByCampaign(1)
			require.NoError(t, err)
			require.Len(t, forOne, 2)
			assert.Equal(t, "a", forOne[0].Name)
			assert.Equal(t, "c", forOne[1].Name)

			forThree, err := store.GetSubmissionsByCampaign(3)
			require.NoError(t, err)
			assert.Empty(t, forThree)
		})
	}
}

func TestSubmissions_UpdatePoints(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			submission := testSubmission(1, "sarah", 2840)
			require.NoError(t, store.CreateSubmission(submission))

			updated, err := store.UpdateSubmissionPoints(submission.ID, 150)
			require.NoError(t, err)
			assert.Equal(t, 150, updated.Points)
			// Engagement count is untouched by a points award
			assert.Equal(t, 2840, updated.EngagementCount)

			stored, err := store.GetSubmission(submission.ID)
			require.NoError(t, err)
			assert.Equal(t, 150, stored.Points)
		})
	}
}

func TestSubmissions_UpdatePointsMissing(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.UpdateSubmissionPoints(42, 10)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}
