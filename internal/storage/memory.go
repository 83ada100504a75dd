package storage

import (
	"sort"
	"sync"

	"github.com/mithuan2002/testisimple/internal/models"
)

// Memory is the map-backed Storage implementation. It is safe for concurrent
// handlers within one process but holds no state across restarts, so it is
// only suitable for single-instance demo use.
type Memory struct {
	mu sync.RWMutex

	admins      map[int]*models.Admin
	contacts    map[int]*models.Contact
	campaigns   map[int]*models.Campaign
	submissions map[int]*models.Submission
	activities  map[int]*models.Activity

	adminID      int
	contactID    int
	campaignID   int
	submissionID int
	activityID   int
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		admins:      make(map[int]*models.Admin),
		contacts:    make(map[int]*models.Contact),
		campaigns:   make(map[int]*models.Campaign),
		submissions: make(map[int]*models.Submission),
		activities:  make(map[int]*models.Activity),
	}
}

// Close is a no-op for the in-memory store
func (m *Memory) Close() error {
	return nil
}

// GetAdmin retrieves an admin account by ID
func (m *Memory) GetAdmin(id int) (*models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	admin, ok := m.admins[id]
	if !ok {
		return nil, nil
	}
	copied := *admin
	return &copied, nil
}

// GetAdminByUsername retrieves an admin account by username
func (m *Memory) GetAdminByUsername(username string) (*models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, admin := range m.admins {
		if admin.Username == username {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, nil
}

// CreateAdmin inserts a new admin account and assigns its ID
func (m *Memory) CreateAdmin(admin *models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.admins {
		if existing.Username == admin.Username {
			return ErrDuplicateUsername
		}
	}

	m.adminID++
	admin.ID = m.adminID
	copied := *admin
	m.admins[admin.ID] = &copied
	return nil
}

// GetContact retrieves a contact by ID
func (m *Memory) GetContact(id int) (*models.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	contact, ok := m.contacts[id]
	if !ok {
		return nil, nil
	}
	copied := *contact
	return &copied, nil
}

// GetAllContacts retrieves every contact ordered by ID
func (m *Memory) GetAllContacts() ([]*models.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	contacts := make([]*models.Contact, 0, len(m.contacts))
	for _, contact := range m.contacts {
		copied := *contact
		contacts = append(contacts, &copied)
	}
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID < contacts[j].ID })
	if len(contacts) == 0 {
		return nil, nil
	}
	return contacts, nil
}

// CreateContact inserts a new contact and assigns its ID
func (m *Memory) CreateContact(contact *models.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.contacts {
		if existing.Phone == contact.Phone {
			return ErrDuplicatePhone
		}
	}

	m.contactID++
	contact.ID = m.contactID
	copied := *contact
	m.contacts[contact.ID] = &copied
	return nil
}

// UpdateContact applies a partial update and returns the stored record
func (m *Memory) UpdateContact(id int, update models.UpdateContactRequest) (*models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	contact, ok := m.contacts[id]
	if !ok {
		return nil, ErrNotFound
	}

	if update.Phone != nil && *update.Phone != contact.Phone {
		for _, existing := range m.contacts {
			if existing.Phone == *update.Phone {
				return nil, ErrDuplicatePhone
			}
		}
		contact.Phone = *update.Phone
	}
	if update.Name != nil {
		contact.Name = *update.Name
	}
	if update.Email != nil {
		contact.Email = update.Email
	}
	if update.IsActive != nil {
		contact.IsActive = *update.IsActive
	}

	copied := *contact
	return &copied, nil
}

// DeleteContact removes a contact. Deleting a missing ID is a no-op.
func (m *Memory) DeleteContact(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.contacts, id)
	return nil
}

// GetCampaign retrieves a campaign by ID
func (m *Memory) GetCampaign(id int) (*models.Campaign, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	campaign, ok := m.campaigns[id]
	if !ok {
		return nil, nil
	}
	return copyCampaign(campaign), nil
}

// GetAllCampaigns retrieves every campaign ordered by ID
func (m *Memory) GetAllCampaigns() ([]*models.Campaign, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	campaigns := make([]*models.Campaign, 0, len(m.campaigns))
	for _, campaign := range m.campaigns {
		campaigns = append(campaigns, copyCampaign(campaign))
	}
	sort.Slice(campaigns, func(i, j int) bool { return campaigns[i].ID < campaigns[j].ID })
	if len(campaigns) == 0 {
		return nil, nil
	}
	return campaigns, nil
}

// CreateCampaign inserts a new campaign and assigns its ID
func (m *Memory) CreateCampaign(campaign *models.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.campaignID++
	campaign.ID = m.campaignID
	m.campaigns[campaign.ID] = copyCampaign(campaign)
	return nil
}

// UpdateCampaign writes the full record back by ID
func (m *Memory) UpdateCampaign(campaign *models.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.campaigns[campaign.ID]; !ok {
		return ErrNotFound
	}
	m.campaigns[campaign.ID] = copyCampaign(campaign)
	return nil
}

// DeleteCampaign removes a campaign and its submissions.
// Deleting a missing ID is a no-op.
func (m *Memory) DeleteCampaign(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.campaigns, id)
	for sid, submission := range m.submissions {
		if submission.CampaignID == id {
			delete(m.submissions, sid)
		}
	}
	return nil
}

// GetSubmission retrieves a submission by ID
func (m *Memory) GetSubmission(id int) (*models.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	submission, ok := m.submissions[id]
	if !ok {
		return nil, nil
	}
	copied := *submission
	return &copied, nil
}

// GetAllSubmissions retrieves every submission ordered by ID
func (m *Memory) GetAllSubmissions() ([]*models.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.collectSubmissions(func(*models.Submission) bool { return true }), nil
}

// GetSubmissionsByCampaign retrieves the submissions tied to one campaign
func (m *Memory) GetSubmissionsByCampaign(campaignID int) ([]*models.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.collectSubmissions(func(s *models.Submission) bool {
		return s.CampaignID == campaignID
	}), nil
}

func (m *Memory) collectSubmissions(keep func(*models.Submission) bool) []*models.Submission {
	var submissions []*models.Submission
	for _, submission := range m.submissions {
		if keep(submission) {
			copied := *submission
			submissions = append(submissions, &copied)
		}
	}
	sort.Slice(submissions, func(i, j int) bool { return submissions[i].ID < submissions[j].ID })
	return submissions
}

// CreateSubmission inserts a new submission and assigns its ID
func (m *Memory) CreateSubmission(submission *models.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.submissionID++
	submission.ID = m.submissionID
	copied := *submission
	m.submissions[submission.ID] = &copied
	return nil
}

// UpdateSubmissionPoints sets the awarded points and returns the stored record
func (m *Memory) UpdateSubmissionPoints(id, points int) (*models.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	submission, ok := m.submissions[id]
	if !ok {
		return nil, ErrNotFound
	}

	submission.Points = points
	copied := *submission
	return &copied, nil
}

// GetAllActivities retrieves the full audit log, most recent first
func (m *Memory) GetAllActivities() ([]*models.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.collectActivities(len(m.activities)), nil
}

// GetRecentActivities retrieves up to limit entries, most recent first
func (m *Memory) GetRecentActivities(limit int) ([]*models.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 {
		limit = 5
	}
	return m.collectActivities(limit), nil
}

func (m *Memory) collectActivities(limit int) []*models.Activity {
	activities := make([]*models.Activity, 0, len(m.activities))
	for _, activity := range m.activities {
		copied := *activity
		activities = append(activities, &copied)
	}
	// Recency is descending insertion order
	sort.Slice(activities, func(i, j int) bool { return activities[i].ID > activities[j].ID })
	if len(activities) > limit {
		activities = activities[:limit]
	}
	if len(activities) == 0 {
		return nil
	}
	return activities
}

// CreateActivity appends an entry to the audit log and assigns its ID
func (m *Memory) CreateActivity(activity *models.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.activityID++
	activity.ID = m.activityID
	copied := *activity
	m.activities[activity.ID] = &copied
	return nil
}

func copyCampaign(campaign *models.Campaign) *models.Campaign {
	copied := *campaign
	copied.Platforms = append([]string(nil), campaign.Platforms...)
	return &copied
}
