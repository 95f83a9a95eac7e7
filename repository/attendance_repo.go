package repository

import (
	"errors"
	"log"
	"time"

	"findmyrun.app/models"
	"gorm.io/gorm"
)

// AttendanceRepository handles "I'm going" records for club sessions
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new repository for attendance data
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create persists an attendance mark
func (r *AttendanceRepository) Create(attendance *models.Attendance) error {
	result := r.db.Create(attendance)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when creating attendance: %v\n", result.Error)
		return result.Error
	}
	return nil
}

// ExistsForVisitor reports whether a visitor already marked attendance for
// a club and date
func (r *AttendanceRepository) ExistsForVisitor(clubName, sessionDate, visitorID string) (bool, error) {
	var attendance models.Attendance
	result := r.db.
		Where("club_name = ? AND session_date = ? AND visitor_id = ?", clubName, sessionDate, visitorID).
		First(&attendance)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

// CountForClubWeek counts attendance marks for one club over the next seven days
func (r *AttendanceRepository) CountForClubWeek(clubName string, from time.Time) (int64, error) {
	var count int64
	result := r.db.Model(&models.Attendance{}).
		Where("club_name = ? AND session_date >= ? AND session_date < ?",
			clubName, from.Format("2006-01-02"), from.AddDate(0, 0, 7).Format("2006-01-02")).
		Count(&count)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when counting attendance: %v\n", result.Error)
		return 0, result.Error
	}
	return count, nil
}

// CountsByClubWeek returns attendance counts per club over the next seven days
func (r *AttendanceRepository) CountsByClubWeek(from time.Time) (map[string]int64, error) {
	var rows []models.Attendance
	result := r.db.
		Where("session_date >= ? AND session_date < ?",
			from.Format("2006-01-02"), from.AddDate(0, 0, 7).Format("2006-01-02")).
		Find(&rows)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when counting attendance: %v\n", result.Error)
		return nil, result.Error
	}

	counts := make(map[string]int64)
	for _, row := range rows {
		counts[row.ClubName]++
	}
	return counts, nil
}
