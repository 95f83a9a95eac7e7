package service

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"findmyrun.app/errors"
	"findmyrun.app/models"
	"findmyrun.app/token"
)

const (
	loginChallengeTTL = time.Hour
	ownerSessionTTL   = 7 * 24 * time.Hour
)

// LoginRequestedMessage is returned for every login request, whether or not
// the address owns anything, so the endpoint cannot be used to probe which
// emails are registered owners.
const LoginRequestedMessage = "If you own any clubs, you will receive a login link shortly."

// allowedEditFields is the whitelist of columns an owner may change on their
// own listing. Everything else, including ownership and status columns, is
// admin-only.
var allowedEditFields = map[string]bool{
	"name":              true,
	"area":              true,
	"day":               true,
	"time":              true,
	"distance":          true,
	"meeting_point":     true,
	"description":       true,
	"pace":              true,
	"terrain":           true,
	"beginner_friendly": true,
	"dog_friendly":      true,
	"female_only":       true,
	"post_run":          true,
	"instagram":         true,
	"website":           true,
	"contact_email":     true,
}

// OwnerService implements passwordless owner login and the owner edit surface.
// Credentials live in two phases: a one-hour single-use login challenge, then
// a seven-day session. Only hashes of either secret are stored.
type OwnerService struct {
	sessionRepo  OwnerSessionRepositoryInterface
	clubRepo     ClubRepositoryInterface
	emailService EmailServiceInterface
	appBaseURL   string
	now          func() time.Time
}

// NewOwnerService creates a new owner service
func NewOwnerService(
	sessionRepo OwnerSessionRepositoryInterface,
	clubRepo ClubRepositoryInterface,
	emailService EmailServiceInterface,
	appBaseURL string,
) *OwnerService {
	return &OwnerService{
		sessionRepo:  sessionRepo,
		clubRepo:     clubRepo,
		emailService: emailService,
		appBaseURL:   appBaseURL,
		now:          time.Now,
	}
}

// RequestLogin emails a one-time login link to a club owner. Non-owners get
// the same response with no email and no stored state.
func (s *OwnerService) RequestLogin(email string) (string, error) {
	email = normalizeEmail(email)
	log.Printf("[DEBUG] OwnerService.RequestLogin called\n")

	clubs, err := s.clubRepo.FindByOwner(email)
	if err != nil {
		return "", errors.NewDatabaseError("failed to look up owned clubs", err)
	}
	if len(clubs) == 0 {
		log.Printf("[DEBUG] Login requested for address with no owned clubs\n")
		return LoginRequestedMessage, nil
	}

	secret, err := token.NewSessionSecret()
	if err != nil {
		return "", errors.NewTokenError("failed to generate login secret")
	}

	if _, err := s.sessionRepo.Create(email, token.HashSecret(secret), s.now().Add(loginChallengeTTL)); err != nil {
		return "", errors.NewDatabaseError("failed to save login challenge", err)
	}

	loginURL := fmt.Sprintf("%s/api/owner/auth?token=%s&email=%s",
		s.appBaseURL, secret, url.QueryEscape(email))
	if err := s.emailService.SendOwnerLoginEmail(email, loginURL); err != nil {
		return "", errors.NewEmailError("failed to send login email", err)
	}

	return LoginRequestedMessage, nil
}

// RedeemLogin exchanges a valid login challenge for a session secret. The
// challenge is consumed whether or not session creation succeeds afterwards.
func (s *OwnerService) RedeemLogin(email, secret string) (string, time.Time, error) {
	email = normalizeEmail(email)

	challenge, err := s.sessionRepo.FindActive(email, token.HashSecret(secret))
	if err != nil {
		return "", time.Time{}, errors.NewDatabaseError("failed to look up login challenge", err)
	}
	if challenge == nil {
		return "", time.Time{}, errors.NewAuthorizationError("invalid or expired login link")
	}
	if err := s.sessionRepo.Delete(challenge); err != nil {
		return "", time.Time{}, errors.NewDatabaseError("failed to consume login challenge", err)
	}

	sessionSecret, err := token.NewSessionSecret()
	if err != nil {
		return "", time.Time{}, errors.NewTokenError("failed to generate session secret")
	}

	expiresAt := s.now().Add(ownerSessionTTL)
	if _, err := s.sessionRepo.Create(email, token.HashSecret(sessionSecret), expiresAt); err != nil {
		return "", time.Time{}, errors.NewDatabaseError("failed to save session", err)
	}

	return sessionSecret, expiresAt, nil
}

// VerifySession resolves a session cookie value to the owner email it belongs to
func (s *OwnerService) VerifySession(cookieValue string) (string, error) {
	email, secret, err := splitSessionCookie(cookieValue)
	if err != nil {
		return "", err
	}

	session, err := s.sessionRepo.FindActive(email, token.HashSecret(secret))
	if err != nil {
		return "", errors.NewDatabaseError("failed to look up session", err)
	}
	if session == nil {
		return "", errors.NewAuthorizationError("session expired, please log in again")
	}
	return email, nil
}

// RevokeSession deletes the session named by the cookie value, if any
func (s *OwnerService) RevokeSession(cookieValue string) error {
	email, secret, err := splitSessionCookie(cookieValue)
	if err != nil {
		return err
	}
	if err := s.sessionRepo.DeleteByHash(email, token.HashSecret(secret)); err != nil {
		return errors.NewDatabaseError("failed to revoke session", err)
	}
	return nil
}

// ListOwnedClubs returns all clubs the owner can manage
func (s *OwnerService) ListOwnedClubs(ownerEmail string) ([]models.Club, error) {
	clubs, err := s.clubRepo.FindByOwner(ownerEmail)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list owned clubs", err)
	}
	return clubs, nil
}

// GetOwnedClub returns one club if and only if the caller owns it. Clubs the
// caller does not own look identical to clubs that do not exist.
func (s *OwnerService) GetOwnedClub(ownerEmail, clubID string) (*models.Club, error) {
	club, err := s.clubRepo.FindByIDAndOwner(clubID, ownerEmail)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to load club", err)
	}
	if club == nil {
		return nil, errors.NewNotFoundError("club not found")
	}
	return club, nil
}

// UpdateOwnedClub applies whitelisted field changes to a club the caller owns
func (s *OwnerService) UpdateOwnedClub(ownerEmail, clubID string, payload map[string]interface{}) (*models.Club, error) {
	if _, err := s.GetOwnedClub(ownerEmail, clubID); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	for key, value := range payload {
		if allowedEditFields[key] {
			fields[key] = value
		}
	}
	if len(fields) == 0 {
		return nil, errors.NewValidationError("no editable fields provided")
	}

	club, err := s.clubRepo.UpdateFields(clubID, fields)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to update club", err)
	}

	log.Printf("[DEBUG] Owner updated club %s (%d fields)\n", clubID, len(fields))
	return club, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// splitSessionCookie parses the "email:secret" cookie value. The secret is
// hex so the first colon is an unambiguous separator.
func splitSessionCookie(cookieValue string) (string, string, error) {
	email, secret, found := strings.Cut(cookieValue, ":")
	if !found || email == "" || secret == "" {
		return "", "", errors.NewAuthorizationError("not logged in")
	}
	return normalizeEmail(email), secret, nil
}
