package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mithuan2002/testisimple/internal/models"
)

// Platforms are stored as a JSON-encoded string list in a single column.
func encodePlatforms(platforms []string) (string, error) {
	if platforms == nil {
		platforms = []string{}
	}
	raw, err := json.Marshal(platforms)
	if err != nil {
		return "", fmt.Errorf("failed to encode platforms: %w", err)
	}
	return string(raw), nil
}

func decodePlatforms(raw string) ([]string, error) {
	var platforms []string
	if err := json.Unmarshal([]byte(raw), &platforms); err != nil {
		return nil, fmt.Errorf("failed to decode platforms: %w", err)
	}
	return platforms, nil
}

func scanCampaign(row interface{ Scan(...any) error }) (*models.Campaign, error) {
	campaign := &models.Campaign{}
	var platforms string
	err := row.Scan(
		&campaign.ID,
		&campaign.Title,
		&campaign.Description,
		&campaign.StartDate,
		&campaign.EndDate,
		&campaign.SmsMessage,
		&campaign.Status,
		&platforms,
		&campaign.CreatedAt,
		&campaign.FormURL,
	)
	if err != nil {
		return nil, err
	}

	campaign.Platforms, err = decodePlatforms(platforms)
	if err != nil {
		return nil, err
	}
	return campaign, nil
}

const campaignColumns = "id, title, description, start_date, end_date, sms_message, status, platforms, created_at, form_url"

// GetCampaign retrieves a campaign by ID
func (s *SQLite) GetCampaign(id int) (*models.Campaign, error) {
	row := s.db.QueryRow("SELECT "+campaignColumns+" FROM campaigns WHERE id = ?", id)

	campaign, err := scanCampaign(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return campaign, nil
}

// GetAllCampaigns retrieves every campaign ordered by ID
func (s *SQLite) GetAllCampaigns() ([]*models.Campaign, error) {
	rows, err := s.db.Query("SELECT " + campaignColumns + " FROM campaigns ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*models.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return campaigns, nil
}

// CreateCampaign inserts a new campaign and assigns its ID
func (s *SQLite) CreateCampaign(campaign *models.Campaign) error {
	if campaign == nil {
		return fmt.Errorf("campaign cannot be nil")
	}

	platforms, err := encodePlatforms(campaign.Platforms)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(
		`INSERT INTO campaigns (title, description, start_date, end_date, sms_message, status, platforms, created_at, form_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		campaign.Title,
		campaign.Description,
		campaign.StartDate,
		campaign.EndDate,
		campaign.SmsMessage,
		campaign.Status,
		platforms,
		campaign.CreatedAt,
		campaign.FormURL,
	)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	campaign.ID, err = lastInsertID(res)
	return err
}

// UpdateCampaign writes the full record back by ID.
// Returns ErrNotFound when the campaign does not exist.
func (s *SQLite) UpdateCampaign(campaign *models.Campaign) error {
	if campaign == nil {
		return fmt.Errorf("campaign cannot be nil")
	}

	platforms, err := encodePlatforms(campaign.Platforms)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(
		`UPDATE campaigns SET title = ?, description = ?, start_date = ?, end_date = ?,
		 sms_message = ?, status = ?, platforms = ?, created_at = ?, form_url = ? WHERE id = ?`,
		campaign.Title,
		campaign.Description,
		campaign.StartDate,
		campaign.EndDate,
		campaign.SmsMessage,
		campaign.Status,
		platforms,
		campaign.CreatedAt,
		campaign.FormURL,
		campaign.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteCampaign removes a campaign and its submissions in one transaction.
// Deleting a missing ID is a no-op.
func (s *SQLite) DeleteCampaign(id int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM submissions WHERE campaign_id = ?", id); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete campaign submissions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM campaigns WHERE id = ?", id); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	return tx.Commit()
}
