package service

import (
	"log"

	"findmyrun.app/errors"
	"findmyrun.app/models"
	"findmyrun.app/seed"
)

const seedBatchSize = 20

// SeedImportResult summarizes one run of the seed import
type SeedImportResult struct {
	Migrated int `json:"migrated"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}

// AdminService implements the shared-secret console operations: full
// visibility over clubs, submissions and claims, plus the seed import.
type AdminService struct {
	clubRepo       ClubRepositoryInterface
	submissionRepo SubmissionRepositoryInterface
	claimRepo      ClaimRepositoryInterface
}

// NewAdminService creates a new admin console service
func NewAdminService(
	clubRepo ClubRepositoryInterface,
	submissionRepo SubmissionRepositoryInterface,
	claimRepo ClaimRepositoryInterface,
) *AdminService {
	return &AdminService{
		clubRepo:       clubRepo,
		submissionRepo: submissionRepo,
		claimRepo:      claimRepo,
	}
}

// ListClubs returns every club regardless of status
func (s *AdminService) ListClubs() ([]models.Club, error) {
	clubs, err := s.clubRepo.ListAll()
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list clubs", err)
	}
	return clubs, nil
}

// DeleteClub removes a club by id, or by exact name when no id is given
func (s *AdminService) DeleteClub(id, name string) error {
	if id == "" && name == "" {
		return errors.NewValidationError("either id or name is required")
	}

	if id == "" {
		club, err := s.clubRepo.FindByName(name)
		if err != nil {
			return errors.NewDatabaseError("failed to look up club", err)
		}
		if club == nil {
			return errors.NewNotFoundError("club not found")
		}
		id = club.ID
	}

	if err := s.clubRepo.Delete(id); err != nil {
		return errors.NewDatabaseError("failed to delete club", err)
	}
	return nil
}

// ListSubmissions returns every submission, any status
func (s *AdminService) ListSubmissions() ([]models.Submission, error) {
	submissions, err := s.submissionRepo.List()
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list submissions", err)
	}
	return submissions, nil
}

// DeleteSubmission removes a submission regardless of its status
func (s *AdminService) DeleteSubmission(id string) error {
	if err := s.submissionRepo.Delete(id); err != nil {
		return errors.NewDatabaseError("failed to delete submission", err)
	}
	return nil
}

// ListClaims returns every ownership claim, any status
func (s *AdminService) ListClaims() ([]models.ClubClaim, error) {
	claims, err := s.claimRepo.List()
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list claims", err)
	}
	return claims, nil
}

// DeleteClaim removes a claim record
func (s *AdminService) DeleteClaim(id string) error {
	if err := s.claimRepo.Delete(id); err != nil {
		return errors.NewDatabaseError("failed to delete claim", err)
	}
	return nil
}

// ImportSeedClubs loads the starter dataset, skipping names already present.
// Inserts happen in fixed-size batches so a large dataset cannot produce one
// oversized statement.
func (s *AdminService) ImportSeedClubs() (*SeedImportResult, error) {
	candidates := seed.Clubs()
	result := &SeedImportResult{Total: len(candidates)}

	var toInsert []models.Club
	for _, club := range candidates {
		exists, err := s.clubRepo.ExistsByName(club.Name)
		if err != nil {
			return nil, errors.NewDatabaseError("failed to check existing clubs", err)
		}
		if exists {
			result.Skipped++
			continue
		}
		toInsert = append(toInsert, club)
	}

	if len(toInsert) > 0 {
		if err := s.clubRepo.CreateInBatches(toInsert, seedBatchSize); err != nil {
			return nil, errors.NewDatabaseError("failed to import seed clubs", err)
		}
	}
	result.Migrated = len(toInsert)

	log.Printf("[DEBUG] Seed import finished: %d migrated, %d skipped of %d\n",
		result.Migrated, result.Skipped, result.Total)
	return result, nil
}
