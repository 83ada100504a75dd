package storage

import (
	"database/sql"
	"fmt"

	"github.com/mithuan2002/testisimple/internal/models"
)

const submissionColumns = "id, campaign_id, name, email, platform, screenshot_url, engagement_count, points, submitted_at"

func scanSubmission(row interface{ Scan(...any) error }) (*models.Submission, error) {
	submission := &models.Submission{}
	err := row.Scan(
		&submission.ID,
		&submission.CampaignID,
		&submission.Name,
		&submission.Email,
		&submission.Platform,
		&submission.ScreenshotURL,
		&submission.EngagementCount,
		&submission.Points,
		&submission.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return submission, nil
}

// GetSubmission retrieves a submission by ID
func (s *SQLite) GetSubmission(id int) (*models.Submission, error) {
	row := s.db.QueryRow("SELECT "+submissionColumns+" FROM submissions WHERE id = ?", id)

	submission, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return submission, nil
}

// GetAllSubmissions retrieves every submission ordered by ID
func (s *SQLite) GetAllSubmissions() ([]*models.Submission, error) {
	return s.querySubmissions("SELECT " + submissionColumns + " FROM submissions ORDER BY id")
}

// GetSubmissionsByCampaign retrieves the submissions tied to one campaign
func (s *SQLite) GetSubmissionsByCampaign(campaignID int) ([]*models.Submission, error) {
	return s.querySubmissions(
		"SELECT "+submissionColumns+" FROM submissions WHERE campaign_id = ? ORDER BY id",
		campaignID,
	)
}

func (s *SQLite) querySubmissions(query string, args ...any) ([]*models.Submission, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, submission)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}

// CreateSubmission inserts a new submission and assigns its ID
func (s *SQLite) CreateSubmission(submission *models.Submission) error {
	if submission == nil {
		return fmt.Errorf("submission cannot be nil")
	}

	res, err := s.db.Exec(
		`INSERT INTO submissions (campaign_id, name, email, platform, screenshot_url, engagement_count, points, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		submission.CampaignID,
		submission.Name,
		submission.Email,
		submission.Platform,
		submission.ScreenshotURL,
		submission.EngagementCount,
		submission.Points,
		submission.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}

	submission.ID, err = lastInsertID(res)
	return err
}

// UpdateSubmissionPoints sets the awarded points and returns the stored
// record. Returns ErrNotFound when the submission does not exist.
func (s *SQLite) UpdateSubmissionPoints(id, points int) (*models.Submission, error) {
	res, err := s.db.Exec("UPDATE submissions SET points = ? WHERE id = ?", points, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update submission points: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.GetSubmission(id)
}
