package storage

import (
	"fmt"

	"github.com/mithuan2002/testisimple/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost used by the auth service
const bcryptCost = 12

// Seed ensures the default admin account exists and optionally loads demo
// data. It is invoked once at process start; nothing here runs as an import
// side effect.
func Seed(s Storage, username, password string, demoData bool) error {
	admin, err := s.GetAdminByUsername(username)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}

	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		if err := s.CreateAdmin(&models.Admin{Username: username, PasswordHash: string(hash)}); err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
	}

	if !demoData {
		return nil
	}

	return seedDemoData(s)
}

// seedDemoData loads sample contacts, campaigns and submissions so a fresh
// install has something to show. Skipped if any contacts already exist.
func seedDemoData(s Storage) error {
	existing, err := s.GetAllContacts()
	if err != nil {
		return fmt.Errorf("failed to check contacts: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	contacts := []struct {
		name  string
		phone string
	}{
		{"Sarah Johnson", "+15550100001"},
		{"Michael Chen", "+15550100002"},
		{"Aisha Rodriguez", "+15550100003"},
		{"David Wilson", "+15550100004"},
		{"Emily Patel", "+15550100005"},
	}
	for _, c := range contacts {
		email := demoEmail(c.name)
		contact := &models.Contact{Name: c.name, Phone: c.phone, Email: &email, IsActive: true}
		if err := s.CreateContact(contact); err != nil {
			return fmt.Errorf("failed to seed contact %s: %w", c.name, err)
		}
	}

	campaigns := []*models.Campaign{
		{
			Title:       "Summer Photo Contest",
			Description: "Share your summer memories with our products and win amazing prizes! Top 3 most engaging posts will receive gift cards.",
			StartDate:   "Jul 15, 2023",
			EndDate:     "Aug 15, 2023",
			SmsMessage:  "Join our Summer Photo Contest! Share pics with our products on Instagram or Snapchat & win prizes.",
			Status:      models.CampaignStatusActive,
			Platforms:   []string{"instagram", "snapchat"},
			CreatedAt:   "2023-07-10T10:00:00",
		},
		{
			Title:       "Product Launch Celebration",
			Description: "Help us celebrate our new product line! Post a creative story with our products and tag us to enter the contest.",
			StartDate:   "Jun 25, 2023",
			EndDate:     "Jul 25, 2023",
			SmsMessage:  "New Product Alert! Share a creative story with our new products on social media and win exclusive merchandise.",
			Status:      models.CampaignStatusActive,
			Platforms:   []string{"instagram", "snapchat"},
			CreatedAt:   "2023-06-20T14:30:00",
		},
		{
			Title:       "Customer Testimonial Drive",
			Description: "Share your experience with our products on social media. Best testimonials will win loyalty points and feature on our website!",
			StartDate:   "Jul 5, 2023",
			EndDate:     "Aug 5, 2023",
			SmsMessage:  "We want to hear from you! Share your experience with our products on social media. Best testimonials win rewards!",
			Status:      models.CampaignStatusActive,
			Platforms:   []string{"instagram"},
			CreatedAt:   "2023-07-01T09:15:00",
		},
	}
	for _, campaign := range campaigns {
		if err := s.CreateCampaign(campaign); err != nil {
			return fmt.Errorf("failed to seed campaign %s: %w", campaign.Title, err)
		}
	}

	submissions := []*models.Submission{
		{CampaignID: 1, Name: "Sarah Johnson", Email: "sarah.johnson@example.com", Platform: "instagram", ScreenshotURL: "/uploads/screenshot1.jpg", EngagementCount: 2840, SubmittedAt: "Jul 20, 2023"},
		{CampaignID: 1, Name: "Michael Chen", Email: "michael.chen@example.com", Platform: "snapchat", ScreenshotURL: "/uploads/screenshot2.jpg", EngagementCount: 2450, SubmittedAt: "Jul 22, 2023"},
		{CampaignID: 2, Name: "Aisha Rodriguez", Email: "aisha.rodriguez@example.com", Platform: "instagram", ScreenshotURL: "/uploads/screenshot3.jpg", EngagementCount: 2218, SubmittedAt: "Jun 30, 2023"},
		{CampaignID: 3, Name: "David Wilson", Email: "david.wilson@example.com", Platform: "instagram", ScreenshotURL: "/uploads/screenshot4.jpg", EngagementCount: 1985, SubmittedAt: "Jul 10, 2023"},
		{CampaignID: 3, Name: "Emily Patel", Email: "emily.patel@example.com", Platform: "instagram", ScreenshotURL: "/uploads/screenshot5.jpg", EngagementCount: 1756, SubmittedAt: "Jul 12, 2023"},
	}
	for _, submission := range submissions {
		if err := s.CreateSubmission(submission); err != nil {
			return fmt.Errorf("failed to seed submission for %s: %w", submission.Name, err)
		}
	}

	return nil
}

func demoEmail(name string) string {
	email := ""
	for _, r := range name {
		switch {
		case r == ' ':
			email += "."
		case r >= 'A' && r <= 'Z':
			email += string(r + 32)
		default:
			email += string(r)
		}
	}
	return email + "@example.com"
}
