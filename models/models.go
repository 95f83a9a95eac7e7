// Package models defines data structures used throughout the application
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Claim statuses
const (
	ClaimStatusPending  = "pending"
	ClaimStatusVerified = "verified"
	ClaimStatusRejected = "rejected"
)

// Claim verification methods
const (
	VerificationEmail     = "email"
	VerificationInstagram = "instagram"
)

// SessionInput describes one weekly run session as submitted on the form.
// Stored as JSON on the submission so multi-session clubs survive moderation.
type SessionInput struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Distance string `json:"distance,omitempty"`
	Type     string `json:"type,omitempty"`
}

// Submission represents a prospective club listing awaiting moderation
type Submission struct {
	ID               string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name             string         `json:"name" gorm:"not null"`
	City             string         `json:"city" gorm:"index;not null"`
	Area             string         `json:"area" gorm:"not null"`
	Day              string         `json:"day"`
	Time             string         `json:"time"`
	Distance         string         `json:"distance"`
	MeetingPoint     string         `json:"meeting_point" gorm:"not null"`
	Description      string         `json:"description"`
	Pace             string         `json:"pace" gorm:"default:mixed"`
	Terrain          string         `json:"terrain"`
	BeginnerFriendly bool           `json:"beginner_friendly" gorm:"default:false"`
	DogFriendly      bool           `json:"dog_friendly" gorm:"default:false"`
	FemaleOnly       bool           `json:"female_only" gorm:"default:false"`
	PostRun          string         `json:"post_run"`
	Instagram        string         `json:"instagram"`
	Website          string         `json:"website"`
	SubmitterEmail   string         `json:"submitter_email" gorm:"not null"`
	SubmitterName    string         `json:"submitter_name"`
	Status           string         `json:"status" gorm:"index;default:pending"`
	Sessions         []SessionInput `json:"sessions" gorm:"serializer:json"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

func (s *Submission) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Club represents an approved, published listing
type Club struct {
	ID               string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name             string         `json:"name" gorm:"index;not null"`
	City             string         `json:"city" gorm:"index;not null"`
	Area             string         `json:"area"`
	Lat              float64        `json:"lat"`
	Lng              float64        `json:"lng"`
	Day              string         `json:"day"`
	Time             string         `json:"time"`
	Distance         string         `json:"distance"`
	MeetingPoint     string         `json:"meeting_point"`
	Description      string         `json:"description"`
	Pace             string         `json:"pace" gorm:"default:mixed"`
	Terrain          string         `json:"terrain"`
	BeginnerFriendly bool           `json:"beginner_friendly" gorm:"default:false"`
	DogFriendly      bool           `json:"dog_friendly" gorm:"default:false"`
	FemaleOnly       bool           `json:"female_only" gorm:"default:false"`
	PostRun          string         `json:"post_run"`
	Instagram        string         `json:"instagram"`
	Website          string         `json:"website"`
	ContactEmail     string         `json:"contact_email"`
	Verified         bool           `json:"verified" gorm:"default:false"`
	Status           string         `json:"status" gorm:"default:approved"`
	OwnerEmail       string         `json:"owner_email" gorm:"index"`
	OwnerName        string         `json:"owner_name"`
	ClaimedAt        *time.Time     `json:"claimed_at"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

func (c *Club) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Session represents one recurring weekly run belonging to a club.
// Tied to the club by name, created alongside the club on approval.
type Session struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	ClubName     string         `json:"club_name" gorm:"index;not null"`
	Day          string         `json:"day" gorm:"not null"`
	Time         string         `json:"time" gorm:"not null"`
	Distance     string         `json:"distance"`
	MeetingPoint string         `json:"meeting_point"`
	SessionType  string         `json:"session_type"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (s *Session) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// ClubClaim represents a request to become a club's recorded owner
type ClubClaim struct {
	ID                 string         `json:"id" gorm:"primaryKey;type:uuid"`
	ClubID             string         `json:"club_id" gorm:"index;not null"`
	Club               Club           `json:"-" gorm:"foreignKey:ClubID"`
	ClaimantEmail      string         `json:"claimant_email" gorm:"not null"`
	ClaimantName       string         `json:"claimant_name"`
	VerificationMethod string         `json:"verification_method" gorm:"not null"` // "email" or "instagram"
	Status             string         `json:"status" gorm:"index;default:pending"`
	InstagramCode      string         `json:"instagram_code"`
	RejectedReason     string         `json:"rejected_reason"`
	TokenExpiresAt     time.Time      `json:"token_expires_at"`
	VerifiedAt         *time.Time     `json:"verified_at"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`
}

func (c *ClubClaim) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// OwnerSession links an owner email to a hashed credential with an expiry.
// Only the hash of the secret is ever stored. A login challenge lives one
// hour and is deleted on redemption; an authenticated session lives seven days.
type OwnerSession struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OwnerEmail string    `json:"owner_email" gorm:"index;not null"`
	TokenHash  string    `json:"-" gorm:"index;not null"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// Attendance records an "I'm going" mark for a club session date
type Attendance struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	ClubName    string    `json:"club_name" gorm:"index;not null"`
	SessionDate string    `json:"session_date" gorm:"index;not null"` // YYYY-MM-DD
	VisitorID   string    `json:"visitor_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *Attendance) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// SubmissionRequest represents the club submission form payload.
// WebsiteURL is the honeypot field: real users never see or fill it.
type SubmissionRequest struct {
	ClubName         string         `json:"club_name" form:"club_name"`
	City             string         `json:"city" form:"city"`
	Area             string         `json:"area" form:"area"`
	Day              string         `json:"day" form:"day"`
	Time             string         `json:"time" form:"time"`
	Distance         string         `json:"distance" form:"distance"`
	MeetingPoint     string         `json:"meeting_point" form:"meeting_point"`
	Description      string         `json:"description" form:"description"`
	Pace             string         `json:"pace" form:"pace"`
	Terrain          string         `json:"terrain" form:"terrain"`
	BeginnerFriendly any            `json:"beginner_friendly" form:"beginner_friendly"`
	DogFriendly      any            `json:"dog_friendly" form:"dog_friendly"`
	FemaleOnly       any            `json:"female_only" form:"female_only"`
	PostRun          string         `json:"post_run" form:"post_run"`
	Instagram        string         `json:"instagram" form:"instagram"`
	Website          string         `json:"website" form:"website"`
	ContactEmail     string         `json:"contact_email" form:"contact_email"`
	SubmitterName    string         `json:"submitter_name" form:"submitter_name"`
	Sessions         []SessionInput `json:"sessions" form:"-"`
	WebsiteURL       string         `json:"website_url" form:"website_url"`
}

// ClaimRequest represents the claim form payload
type ClaimRequest struct {
	ClubID             string `json:"clubId" binding:"required"`
	ClaimantEmail      string `json:"claimantEmail" binding:"required,email"`
	ClaimantName       string `json:"claimantName"`
	VerificationMethod string `json:"verificationMethod" binding:"required,oneof=email instagram"`
}

// OwnerLoginRequest represents the passwordless login request payload
type OwnerLoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AttendanceRequest represents an "I'm going" payload
type AttendanceRequest struct {
	ClubName    string `json:"clubName" binding:"required"`
	SessionDate string `json:"sessionDate" binding:"required"`
	VisitorID   string `json:"visitorId"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
