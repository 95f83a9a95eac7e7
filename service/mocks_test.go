package service

import (
	"time"

	"findmyrun.app/models"
	"findmyrun.app/providers"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSubmissionRepository for testing
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(submission *models.Submission) error {
	// Mirror the BeforeCreate hook the real repository triggers via gorm.
	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	args := m.Called(submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) FindByID(id string) (*models.Submission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) List() ([]models.Submission, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) MarkProcessed(id, status string) (bool, error) {
	args := m.Called(id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubmissionRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockClubRepository for testing
type MockClubRepository struct {
	mock.Mock
}

func (m *MockClubRepository) Create(club *models.Club) error {
	args := m.Called(club)
	return args.Error(0)
}

func (m *MockClubRepository) CreateInBatches(clubs []models.Club, batchSize int) error {
	args := m.Called(clubs, batchSize)
	return args.Error(0)
}

func (m *MockClubRepository) FindByID(id string) (*models.Club, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Club), args.Error(1)
}

func (m *MockClubRepository) FindByName(name string) (*models.Club, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Club), args.Error(1)
}

func (m *MockClubRepository) FindByIDAndOwner(id, ownerEmail string) (*models.Club, error) {
	args := m.Called(id, ownerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Club), args.Error(1)
}

func (m *MockClubRepository) FindByOwner(ownerEmail string) ([]models.Club, error) {
	args := m.Called(ownerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Club), args.Error(1)
}

func (m *MockClubRepository) ExistsByName(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockClubRepository) ListApproved(city string) ([]models.Club, error) {
	args := m.Called(city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Club), args.Error(1)
}

func (m *MockClubRepository) ListAll() ([]models.Club, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Club), args.Error(1)
}

func (m *MockClubRepository) SetOwner(clubID, ownerEmail, ownerName string, claimedAt time.Time) error {
	args := m.Called(clubID, ownerEmail, ownerName, claimedAt)
	return args.Error(0)
}

func (m *MockClubRepository) UpdateFields(clubID string, fields map[string]interface{}) (*models.Club, error) {
	args := m.Called(clubID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Club), args.Error(1)
}

func (m *MockClubRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockClubRepository) CreateSessions(sessions []models.Session) error {
	args := m.Called(sessions)
	return args.Error(0)
}

func (m *MockClubRepository) FindSessionsByClubName(clubName string) ([]models.Session, error) {
	args := m.Called(clubName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

// MockClaimRepository for testing
type MockClaimRepository struct {
	mock.Mock
}

func (m *MockClaimRepository) Create(claim *models.ClubClaim) error {
	args := m.Called(claim)
	return args.Error(0)
}

func (m *MockClaimRepository) FindByID(id string) (*models.ClubClaim, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClubClaim), args.Error(1)
}

func (m *MockClaimRepository) HasPendingForClub(clubID string) (bool, error) {
	args := m.Called(clubID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClaimRepository) List() ([]models.ClubClaim, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ClubClaim), args.Error(1)
}

func (m *MockClaimRepository) MarkVerified(id string, verifiedAt time.Time) (bool, error) {
	args := m.Called(id, verifiedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockClaimRepository) MarkRejected(id, reason string) (bool, error) {
	args := m.Called(id, reason)
	return args.Bool(0), args.Error(1)
}

func (m *MockClaimRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockOwnerSessionRepository for testing
type MockOwnerSessionRepository struct {
	mock.Mock
}

func (m *MockOwnerSessionRepository) Create(email, tokenHash string, expiresAt time.Time) (*models.OwnerSession, error) {
	args := m.Called(email, tokenHash, expiresAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OwnerSession), args.Error(1)
}

func (m *MockOwnerSessionRepository) FindActive(email, tokenHash string) (*models.OwnerSession, error) {
	args := m.Called(email, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OwnerSession), args.Error(1)
}

func (m *MockOwnerSessionRepository) ExistsForEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockOwnerSessionRepository) Delete(session *models.OwnerSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockOwnerSessionRepository) DeleteByHash(email, tokenHash string) error {
	args := m.Called(email, tokenHash)
	return args.Error(0)
}

func (m *MockOwnerSessionRepository) DeleteExpired() error {
	args := m.Called()
	return args.Error(0)
}

// MockAttendanceRepository for testing
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Create(attendance *models.Attendance) error {
	args := m.Called(attendance)
	return args.Error(0)
}

func (m *MockAttendanceRepository) ExistsForVisitor(clubName, sessionDate, visitorID string) (bool, error) {
	args := m.Called(clubName, sessionDate, visitorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAttendanceRepository) CountForClubWeek(clubName string, from time.Time) (int64, error) {
	args := m.Called(clubName, from)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttendanceRepository) CountsByClubWeek(from time.Time) (map[string]int64, error) {
	args := m.Called(from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// MockEmailService for testing
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendSubmissionNotification(submission *models.Submission, approveURL, rejectURL string) error {
	args := m.Called(submission, approveURL, rejectURL)
	return args.Error(0)
}

func (m *MockEmailService) SendApprovalNotification(submitterEmail, clubName string) error {
	args := m.Called(submitterEmail, clubName)
	return args.Error(0)
}

func (m *MockEmailService) SendRejectionNotification(submitterEmail, clubName, reason string) error {
	args := m.Called(submitterEmail, clubName, reason)
	return args.Error(0)
}

func (m *MockEmailService) SendClaimVerificationEmail(contactEmail, clubName, verifyURL string) error {
	args := m.Called(contactEmail, clubName, verifyURL)
	return args.Error(0)
}

func (m *MockEmailService) SendClaimAdminNotification(params ClaimAdminNotificationParams) error {
	args := m.Called(params)
	return args.Error(0)
}

func (m *MockEmailService) SendClaimApprovedEmail(ownerEmail, clubName string) error {
	args := m.Called(ownerEmail, clubName)
	return args.Error(0)
}

func (m *MockEmailService) SendClaimRejectedEmail(claimantEmail, clubName, reason string) error {
	args := m.Called(claimantEmail, clubName, reason)
	return args.Error(0)
}

func (m *MockEmailService) SendOwnerLoginEmail(email, loginURL string) error {
	args := m.Called(email, loginURL)
	return args.Error(0)
}

// stubGeocoder returns fixed coordinates for every lookup
type stubGeocoder struct {
	result *providers.GeocodeResult
}

func (g *stubGeocoder) Geocode(meetingPoint, area, city string) *providers.GeocodeResult {
	return g.result
}
