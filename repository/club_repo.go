package repository

import (
	"errors"
	"log"
	"time"

	"findmyrun.app/models"
	"gorm.io/gorm"
)

// ClubRepository handles data access operations for clubs and their sessions
type ClubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new repository for club data
func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// Create persists a new club
func (r *ClubRepository) Create(club *models.Club) error {
	log.Printf("[DEBUG] ClubRepository.Create: name=%s, city=%s\n", club.Name, club.City)

	result := r.db.Create(club)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when creating club: %v\n", result.Error)
		return result.Error
	}

	log.Printf("[DEBUG] Created club with ID: %s\n", club.ID)
	return nil
}

// CreateInBatches persists clubs in fixed-size insert batches
func (r *ClubRepository) CreateInBatches(clubs []models.Club, batchSize int) error {
	if len(clubs) == 0 {
		return nil
	}

	result := r.db.CreateInBatches(&clubs, batchSize)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when batch-creating clubs: %v\n", result.Error)
		return result.Error
	}
	return nil
}

// FindByID retrieves a club by its ID; returns nil when absent
func (r *ClubRepository) FindByID(id string) (*models.Club, error) {
	var club models.Club
	result := r.db.Where("id = ?", id).First(&club)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding club: %v\n", result.Error)
		return nil, result.Error
	}
	return &club, nil
}

// FindByName retrieves a club by exact name; returns nil when absent
func (r *ClubRepository) FindByName(name string) (*models.Club, error) {
	var club models.Club
	result := r.db.Where("name = ?", name).First(&club)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding club by name: %v\n", result.Error)
		return nil, result.Error
	}
	return &club, nil
}

// FindByIDAndOwner retrieves a club only if owned by the given email
func (r *ClubRepository) FindByIDAndOwner(id, ownerEmail string) (*models.Club, error) {
	var club models.Club
	result := r.db.Where("id = ? AND owner_email = ?", id, ownerEmail).First(&club)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding owned club: %v\n", result.Error)
		return nil, result.Error
	}
	return &club, nil
}

// FindByOwner retrieves all clubs owned by the given email, sorted by name
func (r *ClubRepository) FindByOwner(ownerEmail string) ([]models.Club, error) {
	var clubs []models.Club
	result := r.db.Where("owner_email = ?", ownerEmail).Order("name").Find(&clubs)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when finding clubs by owner: %v\n", result.Error)
		return nil, result.Error
	}
	return clubs, nil
}

// ExistsByName reports whether a club with the given name already exists
func (r *ClubRepository) ExistsByName(name string) (bool, error) {
	var count int64
	result := r.db.Model(&models.Club{}).Where("LOWER(name) = LOWER(?)", name).Count(&count)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when checking club existence: %v\n", result.Error)
		return false, result.Error
	}
	return count > 0, nil
}

// ListApproved retrieves approved clubs, optionally filtered by city
func (r *ClubRepository) ListApproved(city string) ([]models.Club, error) {
	query := r.db.Where("status = ?", models.StatusApproved)
	if city != "" {
		query = query.Where("LOWER(city) = LOWER(?)", city)
	}

	var clubs []models.Club
	result := query.Order("name").Find(&clubs)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing clubs: %v\n", result.Error)
		return nil, result.Error
	}
	return clubs, nil
}

// ListAll retrieves every club, newest first
func (r *ClubRepository) ListAll() ([]models.Club, error) {
	var clubs []models.Club
	result := r.db.Order("created_at DESC").Find(&clubs)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing all clubs: %v\n", result.Error)
		return nil, result.Error
	}
	return clubs, nil
}

// SetOwner records the ownership fields won through a verified claim
func (r *ClubRepository) SetOwner(clubID, ownerEmail, ownerName string, claimedAt time.Time) error {
	log.Printf("[DEBUG] ClubRepository.SetOwner: club=%s, owner=%s\n", clubID, ownerEmail)

	result := r.db.Model(&models.Club{}).Where("id = ?", clubID).Updates(map[string]interface{}{
		"owner_email": ownerEmail,
		"owner_name":  ownerName,
		"claimed_at":  claimedAt,
	})
	if result.Error != nil {
		log.Printf("[ERROR] Database error when setting club owner: %v\n", result.Error)
		return result.Error
	}
	return nil
}

// UpdateFields applies an already-filtered set of editable fields to a club
func (r *ClubRepository) UpdateFields(clubID string, fields map[string]interface{}) (*models.Club, error) {
	result := r.db.Model(&models.Club{}).Where("id = ?", clubID).Updates(fields)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when updating club: %v\n", result.Error)
		return nil, result.Error
	}
	return r.FindByID(clubID)
}

// Delete removes a club and cascades to its sessions and attendance records
func (r *ClubRepository) Delete(id string) error {
	club, err := r.FindByID(id)
	if err != nil {
		return err
	}
	if club == nil {
		return nil
	}

	if err := r.db.Where("id = ?", id).Delete(&models.Club{}).Error; err != nil {
		log.Printf("[ERROR] Database error when deleting club: %v\n", err)
		return err
	}
	if err := r.db.Where("club_name = ?", club.Name).Delete(&models.Session{}).Error; err != nil {
		log.Printf("[ERROR] Database error when deleting club sessions: %v\n", err)
		return err
	}
	if err := r.db.Where("club_name = ?", club.Name).Delete(&models.Attendance{}).Error; err != nil {
		log.Printf("[ERROR] Database error when deleting club attendance: %v\n", err)
		return err
	}

	log.Printf("[DEBUG] Deleted club %s and its dependent records\n", club.Name)
	return nil
}

// CreateSessions persists the session rows belonging to a club
func (r *ClubRepository) CreateSessions(sessions []models.Session) error {
	if len(sessions) == 0 {
		return nil
	}

	result := r.db.Create(&sessions)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when creating sessions: %v\n", result.Error)
		return result.Error
	}

	log.Printf("[DEBUG] Created %d session rows\n", len(sessions))
	return nil
}

// FindSessionsByClubName retrieves the session rows for one club
func (r *ClubRepository) FindSessionsByClubName(clubName string) ([]models.Session, error) {
	var sessions []models.Session
	result := r.db.Where("club_name = ?", clubName).Find(&sessions)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when finding sessions: %v\n", result.Error)
		return nil, result.Error
	}
	return sessions, nil
}
