package repository

import (
	"testing"
	"time"

	"findmyrun.app/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database with in-memory SQLite
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.Submission{},
		&models.Club{},
		&models.Session{},
		&models.ClubClaim{},
		&models.OwnerSession{},
		&models.Attendance{},
	)
	assert.NoError(t, err)

	return db
}

func pendingSubmission() *models.Submission {
	return &models.Submission{
		Name:           "Canalside Runners",
		City:           "Manchester",
		Area:           "Ancoats",
		Day:            "Tuesday",
		Time:           "18:30",
		MeetingPoint:   "Cotton Field Park",
		SubmitterEmail: "organiser@example.com",
		Status:         models.StatusPending,
	}
}

func TestSubmissionRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)

	submission := pendingSubmission()
	err := repo.Create(submission)
	assert.NoError(t, err)
	assert.NotEmpty(t, submission.ID, "a UUID should be assigned on create")

	found, err := repo.FindByID(submission.ID)
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "Canalside Runners", found.Name)
	assert.Equal(t, models.StatusPending, found.Status)
}

func TestSubmissionRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)

	found, err := repo.FindByID("no-such-id")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestSubmissionRepository_MarkProcessed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db)

	t.Run("PendingTransitions", func(t *testing.T) {
		submission := pendingSubmission()
		assert.NoError(t, repo.Create(submission))

		transitioned, err := repo.MarkProcessed(submission.ID, models.StatusApproved)
		assert.NoError(t, err)
		assert.True(t, transitioned)

		found, err := repo.FindByID(submission.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusApproved, found.Status)
	})

	t.Run("ReplayDoesNotTransition", func(t *testing.T) {
		submission := pendingSubmission()
		submission.Name = "Replay Club"
		assert.NoError(t, repo.Create(submission))

		transitioned, err := repo.MarkProcessed(submission.ID, models.StatusApproved)
		assert.NoError(t, err)
		assert.True(t, transitioned)

		// Second transition attempt hits no pending row
		transitioned, err = repo.MarkProcessed(submission.ID, models.StatusRejected)
		assert.NoError(t, err)
		assert.False(t, transitioned)

		found, err := repo.FindByID(submission.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusApproved, found.Status, "the first decision must stand")
	})

	t.Run("UnknownID", func(t *testing.T) {
		transitioned, err := repo.MarkProcessed("no-such-id", models.StatusApproved)
		assert.NoError(t, err)
		assert.False(t, transitioned)
	})
}

func approvedClub(name string) *models.Club {
	return &models.Club{
		Name:   name,
		City:   "London",
		Area:   "Hackney",
		Status: models.StatusApproved,
	}
}

func TestClubRepository_ExistsByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	assert.NoError(t, repo.Create(approvedClub("Victoria Park Social")))

	exists, err := repo.ExistsByName("Victoria Park Social")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName("VICTORIA PARK SOCIAL")
	assert.NoError(t, err)
	assert.True(t, exists, "name matching is case-insensitive")

	exists, err = repo.ExistsByName("Some Other Club")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestClubRepository_ListApproved(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	london := approvedClub("Zebra Runners")
	assert.NoError(t, repo.Create(london))

	manchester := approvedClub("Alpha Runners")
	manchester.City = "Manchester"
	assert.NoError(t, repo.Create(manchester))

	pending := approvedClub("Hidden Club")
	pending.Status = models.StatusPending
	assert.NoError(t, repo.Create(pending))

	t.Run("AllCities", func(t *testing.T) {
		clubs, err := repo.ListApproved("")
		assert.NoError(t, err)
		assert.Len(t, clubs, 2)
		assert.Equal(t, "Alpha Runners", clubs[0].Name, "sorted by name")
	})

	t.Run("CityFilterCaseInsensitive", func(t *testing.T) {
		clubs, err := repo.ListApproved("manchester")
		assert.NoError(t, err)
		assert.Len(t, clubs, 1)
		assert.Equal(t, "Alpha Runners", clubs[0].Name)
	})
}

func TestClubRepository_Ownership(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	club := approvedClub("Owned Club")
	assert.NoError(t, repo.Create(club))

	claimedAt := time.Now()
	assert.NoError(t, repo.SetOwner(club.ID, "owner@example.com", "Sam", claimedAt))

	t.Run("FindByIDAndOwner", func(t *testing.T) {
		found, err := repo.FindByIDAndOwner(club.ID, "owner@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, "Sam", found.OwnerName)
		assert.NotNil(t, found.ClaimedAt)
	})

	t.Run("WrongOwnerLooksAbsent", func(t *testing.T) {
		found, err := repo.FindByIDAndOwner(club.ID, "stranger@example.com")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("FindByOwner", func(t *testing.T) {
		clubs, err := repo.FindByOwner("owner@example.com")
		assert.NoError(t, err)
		assert.Len(t, clubs, 1)
	})
}

func TestClubRepository_UpdateFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	club := approvedClub("Editable Club")
	assert.NoError(t, repo.Create(club))

	updated, err := repo.UpdateFields(club.ID, map[string]interface{}{
		"description": "New description",
		"pace":        "steady",
	})
	assert.NoError(t, err)
	assert.Equal(t, "New description", updated.Description)
	assert.Equal(t, "steady", updated.Pace)
	assert.Equal(t, "Editable Club", updated.Name, "untouched fields survive")
}

func TestClubRepository_Delete_Cascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	club := approvedClub("Doomed Club")
	assert.NoError(t, repo.Create(club))
	assert.NoError(t, repo.CreateSessions([]models.Session{
		{ClubName: "Doomed Club", Day: "Monday", Time: "18:00"},
	}))
	assert.NoError(t, db.Create(&models.Attendance{
		ClubName: "Doomed Club", SessionDate: "2025-06-02",
	}).Error)

	assert.NoError(t, repo.Delete(club.ID))

	found, err := repo.FindByID(club.ID)
	assert.NoError(t, err)
	assert.Nil(t, found)

	sessions, err := repo.FindSessionsByClubName("Doomed Club")
	assert.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestClaimRepository_Transitions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClaimRepository(db)

	newClaim := func(clubID string) *models.ClubClaim {
		return &models.ClubClaim{
			ClubID:             clubID,
			ClaimantEmail:      "claimant@example.com",
			VerificationMethod: models.VerificationEmail,
			Status:             models.ClaimStatusPending,
		}
	}

	t.Run("MarkVerified", func(t *testing.T) {
		claim := newClaim("club-1")
		assert.NoError(t, repo.Create(claim))

		transitioned, err := repo.MarkVerified(claim.ID, time.Now())
		assert.NoError(t, err)
		assert.True(t, transitioned)

		found, err := repo.FindByID(claim.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.ClaimStatusVerified, found.Status)
		assert.NotNil(t, found.VerifiedAt)

		// Terminal: neither transition applies again
		transitioned, err = repo.MarkVerified(claim.ID, time.Now())
		assert.NoError(t, err)
		assert.False(t, transitioned)

		transitioned, err = repo.MarkRejected(claim.ID, "late")
		assert.NoError(t, err)
		assert.False(t, transitioned)
	})

	t.Run("MarkRejected", func(t *testing.T) {
		claim := newClaim("club-2")
		assert.NoError(t, repo.Create(claim))

		transitioned, err := repo.MarkRejected(claim.ID, "could not verify identity")
		assert.NoError(t, err)
		assert.True(t, transitioned)

		found, err := repo.FindByID(claim.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.ClaimStatusRejected, found.Status)
		assert.Equal(t, "could not verify identity", found.RejectedReason)
	})

	t.Run("HasPendingForClub", func(t *testing.T) {
		claim := newClaim("club-3")
		assert.NoError(t, repo.Create(claim))

		pending, err := repo.HasPendingForClub("club-3")
		assert.NoError(t, err)
		assert.True(t, pending)

		_, err = repo.MarkRejected(claim.ID, "")
		assert.NoError(t, err)

		pending, err = repo.HasPendingForClub("club-3")
		assert.NoError(t, err)
		assert.False(t, pending, "settled claims no longer block new ones")
	})
}

func TestOwnerSessionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOwnerSessionRepository(db)

	t.Run("FindActiveMatchesHashAndExpiry", func(t *testing.T) {
		_, err := repo.Create("owner@example.com", "hash-1", time.Now().Add(time.Hour))
		assert.NoError(t, err)

		session, err := repo.FindActive("owner@example.com", "hash-1")
		assert.NoError(t, err)
		assert.NotNil(t, session)

		session, err = repo.FindActive("owner@example.com", "wrong-hash")
		assert.NoError(t, err)
		assert.Nil(t, session)

		session, err = repo.FindActive("other@example.com", "hash-1")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("ExpiredSessionIsInvisible", func(t *testing.T) {
		_, err := repo.Create("expired@example.com", "hash-2", time.Now().Add(-time.Minute))
		assert.NoError(t, err)

		session, err := repo.FindActive("expired@example.com", "hash-2")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("DeleteByHash", func(t *testing.T) {
		_, err := repo.Create("logout@example.com", "hash-3", time.Now().Add(time.Hour))
		assert.NoError(t, err)

		assert.NoError(t, repo.DeleteByHash("logout@example.com", "hash-3"))

		session, err := repo.FindActive("logout@example.com", "hash-3")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("DeleteExpired", func(t *testing.T) {
		_, err := repo.Create("keep@example.com", "hash-4", time.Now().Add(time.Hour))
		assert.NoError(t, err)
		_, err = repo.Create("purge@example.com", "hash-5", time.Now().Add(-time.Hour))
		assert.NoError(t, err)

		assert.NoError(t, repo.DeleteExpired())

		var count int64
		db.Model(&models.OwnerSession{}).Where("owner_email = ?", "purge@example.com").Count(&count)
		assert.Zero(t, count)

		session, err := repo.FindActive("keep@example.com", "hash-4")
		assert.NoError(t, err)
		assert.NotNil(t, session)
	})
}

func TestAttendanceRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)

	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	inWeek := "2025-06-04"
	outOfWeek := "2025-06-20"

	assert.NoError(t, repo.Create(&models.Attendance{
		ClubName: "Canalside Runners", SessionDate: inWeek, VisitorID: "visitor-1",
	}))
	assert.NoError(t, repo.Create(&models.Attendance{
		ClubName: "Canalside Runners", SessionDate: inWeek, VisitorID: "visitor-2",
	}))
	assert.NoError(t, repo.Create(&models.Attendance{
		ClubName: "Canalside Runners", SessionDate: outOfWeek, VisitorID: "visitor-3",
	}))

	t.Run("ExistsForVisitor", func(t *testing.T) {
		exists, err := repo.ExistsForVisitor("Canalside Runners", inWeek, "visitor-1")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsForVisitor("Canalside Runners", inWeek, "visitor-9")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("CountForClubWeek", func(t *testing.T) {
		count, err := repo.CountForClubWeek("Canalside Runners", from)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count, "marks outside the window are excluded")
	})

	t.Run("CountsByClubWeek", func(t *testing.T) {
		assert.NoError(t, repo.Create(&models.Attendance{
			ClubName: "Other Club", SessionDate: inWeek, VisitorID: "visitor-4",
		}))

		counts, err := repo.CountsByClubWeek(from)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), counts["Canalside Runners"])
		assert.Equal(t, int64(1), counts["Other Club"])
	})
}
