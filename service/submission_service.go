package service

import (
	"fmt"
	"log"

	"findmyrun.app/errors"
	"findmyrun.app/metrics"
	"findmyrun.app/models"
	"findmyrun.app/token"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// SubmissionService handles club submission intake
type SubmissionService struct {
	submissionRepo SubmissionRepositoryInterface
	emailService   EmailServiceInterface
	codec          *token.Codec
	appBaseURL     string
}

// NewSubmissionService creates a new submission intake service
func NewSubmissionService(
	submissionRepo SubmissionRepositoryInterface,
	emailService EmailServiceInterface,
	codec *token.Codec,
	appBaseURL string,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		emailService:   emailService,
		codec:          codec,
		appBaseURL:     appBaseURL,
	}
}

// Submit validates and records a prospective club listing, then notifies
// the admin with one-click moderation links. Returns the submission id.
//
// When the honeypot field is filled the request is treated as spam: the
// returned id is a throwaway and nothing is persisted or sent, so the
// response stays indistinguishable from a real success.
func (s *SubmissionService) Submit(req *models.SubmissionRequest) (string, error) {
	log.Printf("[DEBUG] SubmissionService.Submit called for: %s (%s)\n", req.ClubName, req.City)

	if req.WebsiteURL != "" {
		log.Println("[DEBUG] Honeypot field populated, dropping submission silently")
		metrics.Collector().SubmissionsSpam.Inc()
		return uuid.NewString(), nil
	}

	if err := s.validateSubmissionRequest(req); err != nil {
		return "", err
	}

	submission := s.buildSubmission(req)
	if err := s.submissionRepo.Create(submission); err != nil {
		return "", errors.NewDatabaseError("failed to save submission", err)
	}
	metrics.Collector().SubmissionsReceived.Inc()

	// The submission is durably stored at this point; admin notification is
	// best-effort and must not fail the request.
	approveURL := fmt.Sprintf("%s/api/submissions/%s/approve?token=%s",
		s.appBaseURL, submission.ID, s.codec.Generate(submission.ID, token.ActionApprove))
	rejectURL := fmt.Sprintf("%s/api/submissions/%s/reject?token=%s",
		s.appBaseURL, submission.ID, s.codec.Generate(submission.ID, token.ActionReject))

	if err := s.emailService.SendSubmissionNotification(submission, approveURL, rejectURL); err != nil {
		log.Printf("[WARNING] Failed to send submission notification: %v\n", err)
	}

	return submission.ID, nil
}

func (s *SubmissionService) validateSubmissionRequest(req *models.SubmissionRequest) error {
	day, timeOfDay := req.Day, req.Time
	if len(req.Sessions) > 0 {
		if day == "" {
			day = req.Sessions[0].Day
		}
		if timeOfDay == "" {
			timeOfDay = req.Sessions[0].Time
		}
	}

	required := []struct {
		field string
		value string
	}{
		{"club_name", req.ClubName},
		{"city", req.City},
		{"area", req.Area},
		{"day", day},
		{"time", timeOfDay},
		{"meeting_point", req.MeetingPoint},
		{"contact_email", req.ContactEmail},
	}
	for _, item := range required {
		if item.value == "" {
			return errors.NewValidationError(fmt.Sprintf("missing required field: %s", item.field))
		}
	}

	if err := validate.Var(req.ContactEmail, "email"); err != nil {
		return errors.NewValidationError("contact_email must be a valid email address")
	}
	return nil
}

func (s *SubmissionService) buildSubmission(req *models.SubmissionRequest) *models.Submission {
	pace := req.Pace
	if pace == "" {
		pace = "mixed"
	}

	sessions := req.Sessions
	if len(sessions) == 0 {
		sessions = []models.SessionInput{{Day: req.Day, Time: req.Time, Distance: req.Distance}}
	}

	day, timeOfDay, distance := req.Day, req.Time, req.Distance
	if day == "" {
		day = sessions[0].Day
	}
	if timeOfDay == "" {
		timeOfDay = sessions[0].Time
	}
	if distance == "" {
		distance = sessions[0].Distance
	}

	return &models.Submission{
		Name:             req.ClubName,
		City:             req.City,
		Area:             req.Area,
		Day:              day,
		Time:             timeOfDay,
		Distance:         distance,
		MeetingPoint:     req.MeetingPoint,
		Description:      req.Description,
		Pace:             pace,
		Terrain:          req.Terrain,
		BeginnerFriendly: normalizeBool(req.BeginnerFriendly),
		DogFriendly:      normalizeBool(req.DogFriendly),
		FemaleOnly:       normalizeBool(req.FemaleOnly),
		PostRun:          req.PostRun,
		Instagram:        req.Instagram,
		Website:          req.Website,
		SubmitterEmail:   req.ContactEmail,
		SubmitterName:    req.SubmitterName,
		Status:           models.StatusPending,
		Sessions:         sessions,
	}
}

// normalizeBool accepts the form's "yes" strings as well as JSON booleans
func normalizeBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "yes" || v == "true"
	default:
		return false
	}
}
