// Package scheduler implements background housekeeping jobs
package scheduler

import (
	"log"
	"time"

	"findmyrun.app/config"
	"findmyrun.app/repository"
	"gorm.io/gorm"
)

// Scheduler manages periodic tasks for the application
type Scheduler struct {
	db          *gorm.DB
	config      *config.Config
	sessionRepo *repository.OwnerSessionRepository
}

// NewScheduler creates and configures a new task scheduler
func NewScheduler(db *gorm.DB, config *config.Config) *Scheduler {
	return &Scheduler{
		db:          db,
		config:      config,
		sessionRepo: repository.NewOwnerSessionRepository(db),
	}
}

// Start begins the scheduler's operations
func (s *Scheduler) Start() {
	interval := time.Duration(s.config.Scheduler.SessionPurgeIntervalMinutes) * time.Minute
	go s.scheduleInterval(interval, s.purgeExpiredSessions)
}

func (s *Scheduler) scheduleInterval(interval time.Duration, job func()) {
	job()

	ticker := time.NewTicker(interval)
	for range ticker.C {
		job()
	}
}

func (s *Scheduler) purgeExpiredSessions() {
	if err := s.sessionRepo.DeleteExpired(); err != nil {
		log.Printf("Error purging expired owner sessions: %v\n", err)
	}
}
