// Package repository implements data access layer for the application
package repository

import (
	"errors"
	"log"

	"findmyrun.app/models"
	"gorm.io/gorm"
)

// SubmissionRepository handles data access operations for club submissions
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new repository for submission data
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create persists a new submission
func (r *SubmissionRepository) Create(submission *models.Submission) error {
	log.Printf("[DEBUG] SubmissionRepository.Create: name=%s, city=%s\n", submission.Name, submission.City)

	result := r.db.Create(submission)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when creating submission: %v\n", result.Error)
		return result.Error
	}

	log.Printf("[DEBUG] Created submission with ID: %s\n", submission.ID)
	return nil
}

// FindByID retrieves a submission by its ID; returns nil when absent
func (r *SubmissionRepository) FindByID(id string) (*models.Submission, error) {
	log.Printf("[DEBUG] SubmissionRepository.FindByID: id=%s\n", id)

	var submission models.Submission
	result := r.db.Where("id = ?", id).First(&submission)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding submission: %v\n", result.Error)
		return nil, result.Error
	}

	return &submission, nil
}

// List retrieves all submissions, newest first
func (r *SubmissionRepository) List() ([]models.Submission, error) {
	var submissions []models.Submission
	result := r.db.Order("created_at DESC").Find(&submissions)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing submissions: %v\n", result.Error)
		return nil, result.Error
	}
	return submissions, nil
}

// MarkProcessed moves a pending submission to the given status. The update
// is conditional on the row still being pending so a concurrent replay of
// the same magic link converges instead of transitioning twice. Returns
// whether this call applied the transition.
func (r *SubmissionRepository) MarkProcessed(id, status string) (bool, error) {
	log.Printf("[DEBUG] SubmissionRepository.MarkProcessed: id=%s, status=%s\n", id, status)

	result := r.db.Model(&models.Submission{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Update("status", status)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when updating submission status: %v\n", result.Error)
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Delete removes a submission by ID
func (r *SubmissionRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Submission{})
	if result.Error != nil {
		log.Printf("[ERROR] Database error when deleting submission: %v\n", result.Error)
		return result.Error
	}

	log.Printf("[DEBUG] Deleted submission: %s\n", id)
	return nil
}
