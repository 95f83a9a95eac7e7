package repository

import (
	"errors"
	"log"
	"time"

	"findmyrun.app/models"
	"gorm.io/gorm"
)

// OwnerSessionRepository handles data access for owner login credentials.
// Rows only ever hold the hash of a secret, never the secret itself.
type OwnerSessionRepository struct {
	db *gorm.DB
}

// NewOwnerSessionRepository creates a new repository for owner sessions
func NewOwnerSessionRepository(db *gorm.DB) *OwnerSessionRepository {
	return &OwnerSessionRepository{db: db}
}

// Create persists a session record with the given hashed secret and expiry
func (r *OwnerSessionRepository) Create(email, tokenHash string, expiresAt time.Time) (*models.OwnerSession, error) {
	log.Printf("[DEBUG] OwnerSessionRepository.Create: email=%s, expiresAt=%v\n", email, expiresAt)

	session := &models.OwnerSession{
		OwnerEmail: email,
		TokenHash:  tokenHash,
		ExpiresAt:  expiresAt,
	}

	result := r.db.Create(session)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when creating owner session: %v\n", result.Error)
		return nil, result.Error
	}

	return session, nil
}

// FindActive retrieves a non-expired session matching email and hash;
// returns nil when absent.
func (r *OwnerSessionRepository) FindActive(email, tokenHash string) (*models.OwnerSession, error) {
	var session models.OwnerSession
	result := r.db.
		Where("owner_email = ? AND token_hash = ? AND expires_at > ?", email, tokenHash, time.Now()).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding owner session: %v\n", result.Error)
		return nil, result.Error
	}
	return &session, nil
}

// ExistsForEmail reports whether any session record exists for an email
func (r *OwnerSessionRepository) ExistsForEmail(email string) (bool, error) {
	var count int64
	result := r.db.Model(&models.OwnerSession{}).Where("owner_email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes a session record
func (r *OwnerSessionRepository) Delete(session *models.OwnerSession) error {
	result := r.db.Delete(session)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when deleting owner session: %v\n", result.Error)
		return result.Error
	}
	return nil
}

// DeleteByHash removes the session matching email and hash; absence is not
// an error.
func (r *OwnerSessionRepository) DeleteByHash(email, tokenHash string) error {
	result := r.db.Where("owner_email = ? AND token_hash = ?", email, tokenHash).
		Delete(&models.OwnerSession{})
	if result.Error != nil {
		log.Printf("[ERROR] Database error when deleting owner session: %v\n", result.Error)
		return result.Error
	}
	return nil
}

// DeleteExpired removes all expired session records
func (r *OwnerSessionRepository) DeleteExpired() error {
	result := r.db.Where("expires_at < ?", time.Now()).Delete(&models.OwnerSession{})
	if result.Error != nil {
		log.Printf("[ERROR] Database error when purging expired owner sessions: %v\n", result.Error)
		return result.Error
	}

	log.Printf("[DEBUG] Purged %d expired owner sessions\n", result.RowsAffected)
	return nil
}
