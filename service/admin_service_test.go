package service

import (
	stderrors "errors"
	"testing"

	"findmyrun.app/errors"
	"findmyrun.app/models"
	"findmyrun.app/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAdminFixture() (*AdminService, *MockClubRepository, *MockSubmissionRepository, *MockClaimRepository) {
	clubRepo := new(MockClubRepository)
	submissionRepo := new(MockSubmissionRepository)
	claimRepo := new(MockClaimRepository)
	return NewAdminService(clubRepo, submissionRepo, claimRepo), clubRepo, submissionRepo, claimRepo
}

func TestAdminService_DeleteClub(t *testing.T) {
	t.Run("ByID", func(t *testing.T) {
		svc, clubRepo, _, _ := newAdminFixture()

		clubRepo.On("Delete", "club-1").Return(nil)

		assert.NoError(t, svc.DeleteClub("club-1", ""))
		clubRepo.AssertNotCalled(t, "FindByName", mock.Anything)
	})

	t.Run("ByName", func(t *testing.T) {
		svc, clubRepo, _, _ := newAdminFixture()

		clubRepo.On("FindByName", "Canalside Runners").
			Return(&models.Club{ID: "club-1", Name: "Canalside Runners"}, nil)
		clubRepo.On("Delete", "club-1").Return(nil)

		assert.NoError(t, svc.DeleteClub("", "Canalside Runners"))
		clubRepo.AssertExpectations(t)
	})

	t.Run("ByNameNotFound", func(t *testing.T) {
		svc, clubRepo, _, _ := newAdminFixture()

		clubRepo.On("FindByName", "Ghost Club").Return(nil, nil)

		err := svc.DeleteClub("", "Ghost Club")

		var appErr *errors.AppError
		assert.True(t, stderrors.As(err, &appErr))
		assert.Equal(t, errors.NotFoundError, appErr.Type)
	})

	t.Run("NeitherProvided", func(t *testing.T) {
		svc, _, _, _ := newAdminFixture()

		err := svc.DeleteClub("", "")

		var appErr *errors.AppError
		assert.True(t, stderrors.As(err, &appErr))
		assert.Equal(t, errors.ValidationError, appErr.Type)
	})
}

func TestAdminService_ImportSeedClubs(t *testing.T) {
	t.Run("FreshDatabase", func(t *testing.T) {
		svc, clubRepo, _, _ := newAdminFixture()

		clubRepo.On("ExistsByName", mock.AnythingOfType("string")).Return(false, nil)
		clubRepo.On("CreateInBatches", mock.AnythingOfType("[]models.Club"), 20).Return(nil)

		result, err := svc.ImportSeedClubs()
		assert.NoError(t, err)
		assert.Equal(t, len(seed.Clubs()), result.Total)
		assert.Equal(t, result.Total, result.Migrated)
		assert.Zero(t, result.Skipped)
	})

	t.Run("RerunSkipsExisting", func(t *testing.T) {
		svc, clubRepo, _, _ := newAdminFixture()

		clubRepo.On("ExistsByName", mock.AnythingOfType("string")).Return(true, nil)

		result, err := svc.ImportSeedClubs()
		assert.NoError(t, err)
		assert.Equal(t, result.Total, result.Skipped)
		assert.Zero(t, result.Migrated)

		clubRepo.AssertNotCalled(t, "CreateInBatches", mock.Anything, mock.Anything)
	})
}

func TestAdminService_Listings(t *testing.T) {
	svc, clubRepo, submissionRepo, claimRepo := newAdminFixture()

	clubRepo.On("ListAll").Return([]models.Club{{Name: "A"}, {Name: "B"}}, nil)
	submissionRepo.On("List").Return([]models.Submission{{Name: "S"}}, nil)
	claimRepo.On("List").Return([]models.ClubClaim{}, nil)

	clubs, err := svc.ListClubs()
	assert.NoError(t, err)
	assert.Len(t, clubs, 2)

	submissions, err := svc.ListSubmissions()
	assert.NoError(t, err)
	assert.Len(t, submissions, 1)

	claims, err := svc.ListClaims()
	assert.NoError(t, err)
	assert.Empty(t, claims)
}
