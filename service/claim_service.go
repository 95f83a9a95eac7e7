package service

import (
	"crypto/subtle"
	"fmt"
	"log"
	"time"

	"findmyrun.app/errors"
	"findmyrun.app/metrics"
	"findmyrun.app/models"
	"findmyrun.app/token"
)

// ClaimCreationResult tells the claimant what happens next
type ClaimCreationResult struct {
	ClaimID       string `json:"claimId"`
	Method        string `json:"method"`
	Message       string `json:"message"`
	InstagramCode string `json:"instagramCode,omitempty"`
}

// ClaimResult describes the outcome of a claim decision
type ClaimResult struct {
	ClubName         string
	Status           string
	AlreadyProcessed bool
}

// ClaimService drives the club-ownership claim state machine. A club holds at
// most one owner and at most one pending claim at a time; verified and
// rejected are terminal states.
type ClaimService struct {
	claimRepo    ClaimRepositoryInterface
	clubRepo     ClubRepositoryInterface
	emailService EmailServiceInterface
	codec        *token.Codec
	adminSecret  string
	appBaseURL   string
	now          func() time.Time
}

// NewClaimService creates a new claim workflow service
func NewClaimService(
	claimRepo ClaimRepositoryInterface,
	clubRepo ClubRepositoryInterface,
	emailService EmailServiceInterface,
	codec *token.Codec,
	adminSecret string,
	appBaseURL string,
) *ClaimService {
	return &ClaimService{
		claimRepo:    claimRepo,
		clubRepo:     clubRepo,
		emailService: emailService,
		codec:        codec,
		adminSecret:  adminSecret,
		appBaseURL:   appBaseURL,
		now:          time.Now,
	}
}

// Create opens a claim on a club and starts the chosen verification channel
func (s *ClaimService) Create(req *models.ClaimRequest) (*ClaimCreationResult, error) {
	log.Printf("[DEBUG] ClaimService.Create called for club %s via %s\n", req.ClubID, req.VerificationMethod)

	club, err := s.clubRepo.FindByID(req.ClubID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to load club", err)
	}
	if club == nil {
		return nil, errors.NewNotFoundError("club not found")
	}
	if club.OwnerEmail != "" {
		return nil, errors.NewConflictError("this club has already been claimed")
	}

	pending, err := s.claimRepo.HasPendingForClub(club.ID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to check pending claims", err)
	}
	if pending {
		return nil, errors.NewConflictError("there is already a pending claim for this club")
	}

	if req.VerificationMethod == models.VerificationEmail && club.ContactEmail == "" {
		return nil, errors.NewConflictError("this club has no contact email on record, use instagram verification instead")
	}

	// Stored lowercased so the address lines up with owner-session lookups,
	// which normalize before matching owner_email.
	claimantEmail := normalizeEmail(req.ClaimantEmail)

	claim := &models.ClubClaim{
		ClubID:             club.ID,
		ClaimantEmail:      claimantEmail,
		ClaimantName:       req.ClaimantName,
		VerificationMethod: req.VerificationMethod,
		Status:             models.ClaimStatusPending,
		TokenExpiresAt:     s.now().Add(token.DefaultExpiry),
	}

	if req.VerificationMethod == models.VerificationInstagram {
		code, err := token.NewRandomCode()
		if err != nil {
			return nil, errors.NewTokenError("failed to generate verification code")
		}
		claim.InstagramCode = code
	}

	if err := s.claimRepo.Create(claim); err != nil {
		return nil, errors.NewDatabaseError("failed to save claim", err)
	}
	metrics.Collector().ClaimsCreated.WithLabelValues(req.VerificationMethod).Inc()

	switch req.VerificationMethod {
	case models.VerificationEmail:
		verifyURL := fmt.Sprintf("%s/api/claims/%s/verify?token=%s",
			s.appBaseURL, claim.ID, s.codec.Generate(claim.ID, token.ActionClaimVerify))
		if err := s.emailService.SendClaimVerificationEmail(club.ContactEmail, club.Name, verifyURL); err != nil {
			return nil, errors.NewEmailError("failed to send verification email", err)
		}
		return &ClaimCreationResult{
			ClaimID: claim.ID,
			Method:  models.VerificationEmail,
			Message: "A verification link has been sent to the club's contact email.",
		}, nil

	default:
		approveURL := fmt.Sprintf("%s/api/claims/%s/approve?token=%s",
			s.appBaseURL, claim.ID, s.codec.Generate(claim.ID, token.ActionClaimApprove))
		rejectURL := fmt.Sprintf("%s/api/claims/%s/reject?token=%s",
			s.appBaseURL, claim.ID, s.codec.Generate(claim.ID, token.ActionClaimReject))
		if err := s.emailService.SendClaimAdminNotification(ClaimAdminNotificationParams{
			ClubName:      club.Name,
			ClaimantEmail: claimantEmail,
			ClaimantName:  req.ClaimantName,
			Method:        models.VerificationInstagram,
			InstagramCode: claim.InstagramCode,
			ApproveURL:    approveURL,
			RejectURL:     rejectURL,
		}); err != nil {
			log.Printf("[WARNING] Failed to notify admin about claim %s: %v\n", claim.ID, err)
		}
		return &ClaimCreationResult{
			ClaimID:       claim.ID,
			Method:        models.VerificationInstagram,
			Message:       "Send this code as a DM from the club's Instagram account to complete verification.",
			InstagramCode: claim.InstagramCode,
		}, nil
	}
}

// Status returns the current state of a claim
func (s *ClaimService) Status(claimID string) (*models.ClubClaim, error) {
	claim, err := s.claimRepo.FindByID(claimID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to load claim", err)
	}
	if claim == nil {
		return nil, errors.NewNotFoundError("claim not found")
	}
	return claim, nil
}

// VerifyByLink settles an email claim through its signed verification link
func (s *ClaimService) VerifyByLink(claimID, tok string) (*ClaimResult, error) {
	if err := s.codec.Verify(tok, claimID, token.ActionClaimVerify); err != nil {
		return nil, err
	}
	return s.approve(claimID)
}

// AdminApprove settles a claim using either the admin shared secret or a
// signed claim-approve token from the notification email.
func (s *ClaimService) AdminApprove(claimID, credential string) (*ClaimResult, error) {
	if err := s.authorize(claimID, credential, token.ActionClaimApprove); err != nil {
		return nil, err
	}
	return s.approve(claimID)
}

// AdminReject declines a claim using either credential form
func (s *ClaimService) AdminReject(claimID, credential, reason string) (*ClaimResult, error) {
	if err := s.authorize(claimID, credential, token.ActionClaimReject); err != nil {
		return nil, err
	}

	claim, club, err := s.loadClaimAndClub(claimID)
	if err != nil {
		return nil, err
	}
	if claim.Status != models.ClaimStatusPending {
		return s.replayResult(claim, club)
	}

	transitioned, err := s.claimRepo.MarkRejected(claim.ID, reason)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to update claim status", err)
	}
	if !transitioned {
		log.Printf("[WARNING] Claim %s was settled concurrently\n", claim.ID)
		refetched, err := s.claimRepo.FindByID(claim.ID)
		if err != nil || refetched == nil {
			return nil, errors.NewDatabaseError("failed to reload claim", err)
		}
		return s.replayResult(refetched, club)
	}
	metrics.Collector().ClaimsResolved.WithLabelValues("rejected").Inc()

	if err := s.emailService.SendClaimRejectedEmail(claim.ClaimantEmail, club.Name, reason); err != nil {
		log.Printf("[WARNING] Failed to send claim rejection email: %v\n", err)
	}

	return &ClaimResult{ClubName: club.Name, Status: models.ClaimStatusRejected}, nil
}

func (s *ClaimService) approve(claimID string) (*ClaimResult, error) {
	claim, club, err := s.loadClaimAndClub(claimID)
	if err != nil {
		return nil, err
	}
	if claim.Status != models.ClaimStatusPending {
		return s.settledResult(claim, club)
	}

	verifiedAt := s.now()
	transitioned, err := s.claimRepo.MarkVerified(claim.ID, verifiedAt)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to update claim status", err)
	}
	if !transitioned {
		log.Printf("[WARNING] Claim %s was settled concurrently\n", claim.ID)
		refetched, err := s.claimRepo.FindByID(claim.ID)
		if err != nil || refetched == nil {
			return nil, errors.NewDatabaseError("failed to reload claim", err)
		}
		return s.settledResult(refetched, club)
	}
	metrics.Collector().ClaimsResolved.WithLabelValues("verified").Inc()

	if err := s.clubRepo.SetOwner(club.ID, normalizeEmail(claim.ClaimantEmail), claim.ClaimantName, verifiedAt); err != nil {
		return nil, errors.NewDatabaseError("failed to record club owner", err)
	}

	if err := s.emailService.SendClaimApprovedEmail(claim.ClaimantEmail, club.Name); err != nil {
		log.Printf("[WARNING] Failed to send claim approval email: %v\n", err)
	}

	return &ClaimResult{ClubName: club.Name, Status: models.ClaimStatusVerified}, nil
}

// authorize accepts the admin shared secret or a signed token for the action
func (s *ClaimService) authorize(claimID, credential, action string) error {
	if s.adminSecret != "" &&
		subtle.ConstantTimeCompare([]byte(credential), []byte(s.adminSecret)) == 1 {
		return nil
	}
	return s.codec.Verify(credential, claimID, action)
}

func (s *ClaimService) loadClaimAndClub(claimID string) (*models.ClubClaim, *models.Club, error) {
	claim, err := s.claimRepo.FindByID(claimID)
	if err != nil {
		return nil, nil, errors.NewDatabaseError("failed to load claim", err)
	}
	if claim == nil {
		return nil, nil, errors.NewNotFoundError("claim not found")
	}

	club, err := s.clubRepo.FindByID(claim.ClubID)
	if err != nil {
		return nil, nil, errors.NewDatabaseError("failed to load club", err)
	}
	if club == nil {
		return nil, nil, errors.NewNotFoundError("club not found")
	}
	return claim, club, nil
}

// settledResult reports a claim the approve path found already settled.
// Rejected is terminal for approval, so that replay is a hard conflict.
func (s *ClaimService) settledResult(claim *models.ClubClaim, club *models.Club) (*ClaimResult, error) {
	if claim.Status == models.ClaimStatusRejected {
		return nil, errors.NewConflictError("this claim has already been rejected")
	}
	return s.replayResult(claim, club)
}

// replayResult reports a decision that was already made. The status carried
// in the result tells an earlier rejection apart from an earlier verification.
func (s *ClaimService) replayResult(claim *models.ClubClaim, club *models.Club) (*ClaimResult, error) {
	return &ClaimResult{ClubName: club.Name, Status: claim.Status, AlreadyProcessed: true}, nil
}
