package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"findmyrun.app/errors"
	"findmyrun.app/metrics"
	"findmyrun.app/models"
	"findmyrun.app/providers/cache"
)

const clubListCacheTTL = time.Minute

// DirectoryService serves the public read surface: the approved club listing
// and the lightweight "I'm going" attendance counters.
type DirectoryService struct {
	clubRepo       ClubRepositoryInterface
	attendanceRepo AttendanceRepositoryInterface
	cache          cache.CacheInterface
	now            func() time.Time
}

// NewDirectoryService creates a new public directory service
func NewDirectoryService(
	clubRepo ClubRepositoryInterface,
	attendanceRepo AttendanceRepositoryInterface,
	listCache cache.CacheInterface,
) *DirectoryService {
	return &DirectoryService{
		clubRepo:       clubRepo,
		attendanceRepo: attendanceRepo,
		cache:          listCache,
		now:            time.Now,
	}
}

// ListClubs returns approved clubs, optionally filtered by city. Results are
// cached briefly since the listing changes only on moderation actions.
func (s *DirectoryService) ListClubs(city string) ([]models.Club, error) {
	ctx := context.Background()
	cacheKey := "clubs:" + strings.ToLower(city)

	if s.cache != nil {
		if data, found := s.cache.Get(ctx, cacheKey); found {
			var clubs []models.Club
			if err := json.Unmarshal(data, &clubs); err == nil {
				metrics.Collector().CacheHits.WithLabelValues("clubs").Inc()
				return clubs, nil
			}
		}
		metrics.Collector().CacheMisses.WithLabelValues("clubs").Inc()
	}

	clubs, err := s.clubRepo.ListApproved(city)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list clubs", err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(clubs); err == nil {
			s.cache.Set(ctx, cacheKey, data, clubListCacheTTL)
		}
	}

	return clubs, nil
}

// MarkAttendance records an "I'm going" for a club session date. Returns
// false when this visitor already marked that date.
func (s *DirectoryService) MarkAttendance(req *models.AttendanceRequest) (bool, error) {
	if req.VisitorID != "" {
		exists, err := s.attendanceRepo.ExistsForVisitor(req.ClubName, req.SessionDate, req.VisitorID)
		if err != nil {
			return false, errors.NewDatabaseError("failed to check attendance", err)
		}
		if exists {
			return false, nil
		}
	}

	attendance := &models.Attendance{
		ClubName:    req.ClubName,
		SessionDate: req.SessionDate,
		VisitorID:   req.VisitorID,
	}
	if err := s.attendanceRepo.Create(attendance); err != nil {
		return false, errors.NewDatabaseError("failed to record attendance", err)
	}
	return true, nil
}

// AttendanceCount returns how many runners marked themselves as going to a
// club's sessions over the coming seven days.
func (s *DirectoryService) AttendanceCount(clubName string) (int64, error) {
	count, err := s.attendanceRepo.CountForClubWeek(clubName, s.now())
	if err != nil {
		return 0, errors.NewDatabaseError("failed to count attendance", err)
	}
	return count, nil
}

// AttendanceCounts returns coming-week attendance for every club at once,
// keyed by club name.
func (s *DirectoryService) AttendanceCounts() (map[string]int64, error) {
	counts, err := s.attendanceRepo.CountsByClubWeek(s.now())
	if err != nil {
		return nil, errors.NewDatabaseError("failed to count attendance", err)
	}
	return counts, nil
}
