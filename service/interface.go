package service

import (
	"time"

	"findmyrun.app/models"
)

// EmailServiceInterface defines the notification templates the workflows send
type EmailServiceInterface interface {
	SendSubmissionNotification(submission *models.Submission, approveURL, rejectURL string) error
	SendApprovalNotification(submitterEmail, clubName string) error
	SendRejectionNotification(submitterEmail, clubName, reason string) error
	SendClaimVerificationEmail(contactEmail, clubName, verifyURL string) error
	SendClaimAdminNotification(params ClaimAdminNotificationParams) error
	SendClaimApprovedEmail(ownerEmail, clubName string) error
	SendClaimRejectedEmail(claimantEmail, clubName, reason string) error
	SendOwnerLoginEmail(email, loginURL string) error
}

// SubmissionServiceInterface handles club submission intake
type SubmissionServiceInterface interface {
	Submit(req *models.SubmissionRequest) (string, error)
}

// ModerationServiceInterface drives the approve/reject state machine
type ModerationServiceInterface interface {
	Approve(submissionID, tok string) (*ModerationResult, error)
	Reject(submissionID, tok, reason string) (*ModerationResult, error)
}

// ClaimServiceInterface drives the ownership-claim state machine
type ClaimServiceInterface interface {
	Create(req *models.ClaimRequest) (*ClaimCreationResult, error)
	Status(claimID string) (*models.ClubClaim, error)
	VerifyByLink(claimID, tok string) (*ClaimResult, error)
	AdminApprove(claimID, credential string) (*ClaimResult, error)
	AdminReject(claimID, credential, reason string) (*ClaimResult, error)
}

// OwnerServiceInterface covers passwordless login and the owner edit surface
type OwnerServiceInterface interface {
	RequestLogin(email string) (string, error)
	RedeemLogin(email, secret string) (string, time.Time, error)
	VerifySession(cookieValue string) (string, error)
	RevokeSession(cookieValue string) error
	ListOwnedClubs(ownerEmail string) ([]models.Club, error)
	GetOwnedClub(ownerEmail, clubID string) (*models.Club, error)
	UpdateOwnedClub(ownerEmail, clubID string, payload map[string]interface{}) (*models.Club, error)
}

// AdminServiceInterface covers the shared-secret console operations
type AdminServiceInterface interface {
	ListClubs() ([]models.Club, error)
	DeleteClub(id, name string) error
	ListSubmissions() ([]models.Submission, error)
	DeleteSubmission(id string) error
	ListClaims() ([]models.ClubClaim, error)
	DeleteClaim(id string) error
	ImportSeedClubs() (*SeedImportResult, error)
}

// DirectoryServiceInterface covers the public read surface
type DirectoryServiceInterface interface {
	ListClubs(city string) ([]models.Club, error)
	MarkAttendance(req *models.AttendanceRequest) (bool, error)
	AttendanceCount(clubName string) (int64, error)
	AttendanceCounts() (map[string]int64, error)
}

// SubmissionRepositoryInterface defines the interface for submission data operations
type SubmissionRepositoryInterface interface {
	Create(submission *models.Submission) error
	FindByID(id string) (*models.Submission, error)
	List() ([]models.Submission, error)
	MarkProcessed(id, status string) (bool, error)
	Delete(id string) error
}

// ClubRepositoryInterface defines the interface for club data operations
type ClubRepositoryInterface interface {
	Create(club *models.Club) error
	CreateInBatches(clubs []models.Club, batchSize int) error
	FindByID(id string) (*models.Club, error)
	FindByName(name string) (*models.Club, error)
	FindByIDAndOwner(id, ownerEmail string) (*models.Club, error)
	FindByOwner(ownerEmail string) ([]models.Club, error)
	ExistsByName(name string) (bool, error)
	ListApproved(city string) ([]models.Club, error)
	ListAll() ([]models.Club, error)
	SetOwner(clubID, ownerEmail, ownerName string, claimedAt time.Time) error
	UpdateFields(clubID string, fields map[string]interface{}) (*models.Club, error)
	Delete(id string) error
	CreateSessions(sessions []models.Session) error
	FindSessionsByClubName(clubName string) ([]models.Session, error)
}

// ClaimRepositoryInterface defines the interface for claim data operations
type ClaimRepositoryInterface interface {
	Create(claim *models.ClubClaim) error
	FindByID(id string) (*models.ClubClaim, error)
	HasPendingForClub(clubID string) (bool, error)
	List() ([]models.ClubClaim, error)
	MarkVerified(id string, verifiedAt time.Time) (bool, error)
	MarkRejected(id, reason string) (bool, error)
	Delete(id string) error
}

// OwnerSessionRepositoryInterface defines the interface for owner session records
type OwnerSessionRepositoryInterface interface {
	Create(email, tokenHash string, expiresAt time.Time) (*models.OwnerSession, error)
	FindActive(email, tokenHash string) (*models.OwnerSession, error)
	ExistsForEmail(email string) (bool, error)
	Delete(session *models.OwnerSession) error
	DeleteByHash(email, tokenHash string) error
	DeleteExpired() error
}

// AttendanceRepositoryInterface defines the interface for attendance records
type AttendanceRepositoryInterface interface {
	Create(attendance *models.Attendance) error
	ExistsForVisitor(clubName, sessionDate, visitorID string) (bool, error)
	CountForClubWeek(clubName string, from time.Time) (int64, error)
	CountsByClubWeek(from time.Time) (map[string]int64, error)
}

// Ensure implementations satisfy interfaces
var _ EmailServiceInterface = (*EmailService)(nil)
var _ SubmissionServiceInterface = (*SubmissionService)(nil)
var _ ModerationServiceInterface = (*ModerationService)(nil)
var _ ClaimServiceInterface = (*ClaimService)(nil)
var _ OwnerServiceInterface = (*OwnerService)(nil)
var _ AdminServiceInterface = (*AdminService)(nil)
var _ DirectoryServiceInterface = (*DirectoryService)(nil)
