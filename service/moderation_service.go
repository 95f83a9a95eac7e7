package service

import (
	"log"

	"findmyrun.app/errors"
	"findmyrun.app/metrics"
	"findmyrun.app/models"
	"findmyrun.app/providers"
	"findmyrun.app/token"
)

// ModerationResult describes the outcome of an approve/reject action so the
// handler can render the right redirect.
type ModerationResult struct {
	ClubName         string
	Status           string
	AlreadyProcessed bool
}

// ModerationService drives the submission approve/reject state machine.
// Transitions are one-way: once a submission leaves pending, replaying the
// same link reports the earlier outcome instead of acting again.
type ModerationService struct {
	submissionRepo SubmissionRepositoryInterface
	clubRepo       ClubRepositoryInterface
	emailService   EmailServiceInterface
	geocoder       providers.GeocodeProvider
	codec          *token.Codec
}

// NewModerationService creates a new moderation service
func NewModerationService(
	submissionRepo SubmissionRepositoryInterface,
	clubRepo ClubRepositoryInterface,
	emailService EmailServiceInterface,
	geocoder providers.GeocodeProvider,
	codec *token.Codec,
) *ModerationService {
	return &ModerationService{
		submissionRepo: submissionRepo,
		clubRepo:       clubRepo,
		emailService:   emailService,
		geocoder:       geocoder,
		codec:          codec,
	}
}

// Approve publishes a pending submission as a live club listing
func (s *ModerationService) Approve(submissionID, tok string) (*ModerationResult, error) {
	log.Printf("[DEBUG] ModerationService.Approve called for submission: %s\n", submissionID)

	if err := s.codec.Verify(tok, submissionID, token.ActionApprove); err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.FindByID(submissionID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to load submission", err)
	}
	if submission == nil {
		return nil, errors.NewNotFoundError("submission not found")
	}
	if submission.Status != models.StatusPending {
		return &ModerationResult{
			ClubName:         submission.Name,
			Status:           submission.Status,
			AlreadyProcessed: true,
		}, nil
	}

	club := s.buildClub(submission)

	// Geocoding never blocks approval. The provider degrades to a city-centre
	// fallback on its own, so a zero result here means no provider at all.
	if loc := s.geocoder.Geocode(submission.MeetingPoint, submission.Area, submission.City); loc != nil {
		club.Lat = loc.Lat
		club.Lng = loc.Lng
	}

	if err := s.clubRepo.Create(club); err != nil {
		return nil, errors.NewDatabaseError("failed to create club", err)
	}

	// The conditional update is the authoritative transition. Losing the race
	// after the club insert leaves a duplicate listing for the admin console
	// to clean up, which beats losing an approval.
	transitioned, err := s.submissionRepo.MarkProcessed(submissionID, models.StatusApproved)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to update submission status", err)
	}
	if !transitioned {
		log.Printf("[WARNING] Submission %s was processed concurrently\n", submissionID)
		return &ModerationResult{ClubName: submission.Name, Status: submission.Status, AlreadyProcessed: true}, nil
	}
	metrics.Collector().ModerationActions.WithLabelValues("approve").Inc()

	if err := s.createSessionRows(submission); err != nil {
		log.Printf("[WARNING] Failed to create session rows for %s: %v\n", submission.Name, err)
	}

	if err := s.emailService.SendApprovalNotification(submission.SubmitterEmail, submission.Name); err != nil {
		log.Printf("[WARNING] Failed to send approval notification: %v\n", err)
	}

	return &ModerationResult{ClubName: submission.Name, Status: models.StatusApproved}, nil
}

// Reject marks a pending submission as rejected without publishing it
func (s *ModerationService) Reject(submissionID, tok, reason string) (*ModerationResult, error) {
	log.Printf("[DEBUG] ModerationService.Reject called for submission: %s\n", submissionID)

	if err := s.codec.Verify(tok, submissionID, token.ActionReject); err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.FindByID(submissionID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to load submission", err)
	}
	if submission == nil {
		return nil, errors.NewNotFoundError("submission not found")
	}
	if submission.Status != models.StatusPending {
		return &ModerationResult{
			ClubName:         submission.Name,
			Status:           submission.Status,
			AlreadyProcessed: true,
		}, nil
	}

	transitioned, err := s.submissionRepo.MarkProcessed(submissionID, models.StatusRejected)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to update submission status", err)
	}
	if !transitioned {
		log.Printf("[WARNING] Submission %s was processed concurrently\n", submissionID)
		return &ModerationResult{ClubName: submission.Name, Status: submission.Status, AlreadyProcessed: true}, nil
	}
	metrics.Collector().ModerationActions.WithLabelValues("reject").Inc()

	if err := s.emailService.SendRejectionNotification(submission.SubmitterEmail, submission.Name, reason); err != nil {
		log.Printf("[WARNING] Failed to send rejection notification: %v\n", err)
	}

	return &ModerationResult{ClubName: submission.Name, Status: models.StatusRejected}, nil
}

func (s *ModerationService) buildClub(submission *models.Submission) *models.Club {
	day, timeOfDay, distance := submission.Day, submission.Time, submission.Distance
	if len(submission.Sessions) > 0 {
		primary := submission.Sessions[0]
		if day == "" {
			day = primary.Day
		}
		if timeOfDay == "" {
			timeOfDay = primary.Time
		}
		if distance == "" {
			distance = primary.Distance
		}
	}

	return &models.Club{
		Name:             submission.Name,
		City:             submission.City,
		Area:             submission.Area,
		Day:              day,
		Time:             timeOfDay,
		Distance:         distance,
		MeetingPoint:     submission.MeetingPoint,
		Description:      submission.Description,
		Pace:             submission.Pace,
		Terrain:          submission.Terrain,
		BeginnerFriendly: submission.BeginnerFriendly,
		DogFriendly:      submission.DogFriendly,
		FemaleOnly:       submission.FemaleOnly,
		PostRun:          submission.PostRun,
		Instagram:        submission.Instagram,
		Website:          submission.Website,
		ContactEmail:     submission.SubmitterEmail,
		Status:           models.StatusApproved,
	}
}

func (s *ModerationService) createSessionRows(submission *models.Submission) error {
	if len(submission.Sessions) == 0 {
		return nil
	}

	sessions := make([]models.Session, 0, len(submission.Sessions))
	for _, input := range submission.Sessions {
		if input.Day == "" || input.Time == "" {
			continue
		}
		sessions = append(sessions, models.Session{
			ClubName:     submission.Name,
			Day:          input.Day,
			Time:         input.Time,
			Distance:     input.Distance,
			MeetingPoint: submission.MeetingPoint,
			SessionType:  input.Type,
		})
	}
	return s.clubRepo.CreateSessions(sessions)
}
