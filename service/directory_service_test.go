package service

import (
	"testing"
	"time"

	"findmyrun.app/models"
	"findmyrun.app/providers/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDirectoryFixture() (*DirectoryService, *MockClubRepository, *MockAttendanceRepository) {
	clubRepo := new(MockClubRepository)
	attendanceRepo := new(MockAttendanceRepository)
	svc := NewDirectoryService(clubRepo, attendanceRepo, cache.NewMemoryCache())
	return svc, clubRepo, attendanceRepo
}

func TestDirectoryService_ListClubs_CachesResults(t *testing.T) {
	svc, clubRepo, _ := newDirectoryFixture()

	clubRepo.On("ListApproved", "Manchester").
		Return([]models.Club{{Name: "Canalside Runners", City: "Manchester"}}, nil).Once()

	clubs, err := svc.ListClubs("Manchester")
	assert.NoError(t, err)
	assert.Len(t, clubs, 1)

	// Second call is served from cache; the mock only allows one hit
	clubs, err = svc.ListClubs("Manchester")
	assert.NoError(t, err)
	assert.Len(t, clubs, 1)
	assert.Equal(t, "Canalside Runners", clubs[0].Name)

	clubRepo.AssertExpectations(t)
}

func TestDirectoryService_ListClubs_CityKeysAreIndependent(t *testing.T) {
	svc, clubRepo, _ := newDirectoryFixture()

	clubRepo.On("ListApproved", "Manchester").Return([]models.Club{{Name: "M Club"}}, nil).Once()
	clubRepo.On("ListApproved", "Leeds").Return([]models.Club{{Name: "L Club"}}, nil).Once()

	manchester, err := svc.ListClubs("Manchester")
	assert.NoError(t, err)
	leeds, err := svc.ListClubs("Leeds")
	assert.NoError(t, err)

	assert.Equal(t, "M Club", manchester[0].Name)
	assert.Equal(t, "L Club", leeds[0].Name)
}

func TestDirectoryService_MarkAttendance(t *testing.T) {
	t.Run("NewMark", func(t *testing.T) {
		svc, _, attendanceRepo := newDirectoryFixture()

		attendanceRepo.On("ExistsForVisitor", "Canalside Runners", "2025-06-04", "visitor-1").
			Return(false, nil)
		attendanceRepo.On("Create", mock.AnythingOfType("*models.Attendance")).Return(nil)

		created, err := svc.MarkAttendance(&models.AttendanceRequest{
			ClubName: "Canalside Runners", SessionDate: "2025-06-04", VisitorID: "visitor-1",
		})
		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("DuplicateMark", func(t *testing.T) {
		svc, _, attendanceRepo := newDirectoryFixture()

		attendanceRepo.On("ExistsForVisitor", "Canalside Runners", "2025-06-04", "visitor-1").
			Return(true, nil)

		created, err := svc.MarkAttendance(&models.AttendanceRequest{
			ClubName: "Canalside Runners", SessionDate: "2025-06-04", VisitorID: "visitor-1",
		})
		assert.NoError(t, err)
		assert.False(t, created)

		attendanceRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("AnonymousMarkSkipsDedup", func(t *testing.T) {
		svc, _, attendanceRepo := newDirectoryFixture()

		attendanceRepo.On("Create", mock.AnythingOfType("*models.Attendance")).Return(nil)

		created, err := svc.MarkAttendance(&models.AttendanceRequest{
			ClubName: "Canalside Runners", SessionDate: "2025-06-04",
		})
		assert.NoError(t, err)
		assert.True(t, created)

		attendanceRepo.AssertNotCalled(t, "ExistsForVisitor",
			mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDirectoryService_AttendanceCounts(t *testing.T) {
	svc, _, attendanceRepo := newDirectoryFixture()

	attendanceRepo.On("CountForClubWeek", "Canalside Runners", mock.AnythingOfType("time.Time")).
		Return(int64(4), nil)
	attendanceRepo.On("CountsByClubWeek", mock.AnythingOfType("time.Time")).
		Return(map[string]int64{"Canalside Runners": 4}, nil)

	count, err := svc.AttendanceCount("Canalside Runners")
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)

	counts, err := svc.AttendanceCounts()
	assert.NoError(t, err)
	assert.Equal(t, int64(4), counts["Canalside Runners"])

	from := attendanceRepo.Calls[0].Arguments.Get(1).(time.Time)
	assert.WithinDuration(t, time.Now(), from, time.Minute, "window starts now and looks forward")
}
