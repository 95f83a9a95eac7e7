package repository

import (
	"errors"
	"log"
	"time"

	"findmyrun.app/models"
	"gorm.io/gorm"
)

// ClaimRepository handles data access operations for club ownership claims
type ClaimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new repository for claim data
func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Create persists a new claim
func (r *ClaimRepository) Create(claim *models.ClubClaim) error {
	log.Printf("[DEBUG] ClaimRepository.Create: club=%s, claimant=%s, method=%s\n",
		claim.ClubID, claim.ClaimantEmail, claim.VerificationMethod)

	result := r.db.Create(claim)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when creating claim: %v\n", result.Error)
		return result.Error
	}

	log.Printf("[DEBUG] Created claim with ID: %s\n", claim.ID)
	return nil
}

// FindByID retrieves a claim by its ID; returns nil when absent
func (r *ClaimRepository) FindByID(id string) (*models.ClubClaim, error) {
	var claim models.ClubClaim
	result := r.db.Where("id = ?", id).First(&claim)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding claim: %v\n", result.Error)
		return nil, result.Error
	}
	return &claim, nil
}

// HasPendingForClub reports whether a pending claim already exists for a club
func (r *ClaimRepository) HasPendingForClub(clubID string) (bool, error) {
	var count int64
	result := r.db.Model(&models.ClubClaim{}).
		Where("club_id = ? AND status = ?", clubID, models.ClaimStatusPending).
		Count(&count)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when checking pending claims: %v\n", result.Error)
		return false, result.Error
	}
	return count > 0, nil
}

// List retrieves all claims, newest first
func (r *ClaimRepository) List() ([]models.ClubClaim, error) {
	var claims []models.ClubClaim
	result := r.db.Order("created_at DESC").Find(&claims)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing claims: %v\n", result.Error)
		return nil, result.Error
	}
	return claims, nil
}

// MarkVerified moves a pending claim to verified, conditional on it still
// being pending. Returns whether this call applied the transition.
func (r *ClaimRepository) MarkVerified(id string, verifiedAt time.Time) (bool, error) {
	log.Printf("[DEBUG] ClaimRepository.MarkVerified: id=%s\n", id)

	result := r.db.Model(&models.ClubClaim{}).
		Where("id = ? AND status = ?", id, models.ClaimStatusPending).
		Updates(map[string]interface{}{
			"status":      models.ClaimStatusVerified,
			"verified_at": verifiedAt,
		})
	if result.Error != nil {
		log.Printf("[ERROR] Database error when verifying claim: %v\n", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// MarkRejected moves a pending claim to rejected with an optional reason,
// conditional on it still being pending.
func (r *ClaimRepository) MarkRejected(id, reason string) (bool, error) {
	log.Printf("[DEBUG] ClaimRepository.MarkRejected: id=%s\n", id)

	result := r.db.Model(&models.ClubClaim{}).
		Where("id = ? AND status = ?", id, models.ClaimStatusPending).
		Updates(map[string]interface{}{
			"status":          models.ClaimStatusRejected,
			"rejected_reason": reason,
		})
	if result.Error != nil {
		log.Printf("[ERROR] Database error when rejecting claim: %v\n", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a claim by ID
func (r *ClaimRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.ClubClaim{})
	if result.Error != nil {
		log.Printf("[ERROR] Database error when deleting claim: %v\n", result.Error)
		return result.Error
	}

	log.Printf("[DEBUG] Deleted claim: %s\n", id)
	return nil
}
