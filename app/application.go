// Package app wires configuration, storage, providers and services into a
// runnable application.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"findmyrun.app/api"
	"findmyrun.app/config"
	"findmyrun.app/database"
	"findmyrun.app/providers"
	"findmyrun.app/repository"
	"findmyrun.app/scheduler"
	"findmyrun.app/service"
	"findmyrun.app/token"
	"gorm.io/gorm"
)

// Application represents the main application with all its dependencies
type Application struct {
	config    *config.Config
	db        *gorm.DB
	server    *api.Server
	scheduler *scheduler.Scheduler
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeDatabase(); err != nil {
		return nil, err
	}

	app.initializeServices()
	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) initializeDatabase() error {
	slog.Info("Initializing database...")

	db, err := database.InitDB(app.config.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return fmt.Errorf("initialize database connection: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		return fmt.Errorf("run database migrations: %w", err)
	}

	app.db = db
	slog.Info("Database initialized successfully")
	return nil
}

func (app *Application) initializeServices() {
	slog.Info("Initializing services...")

	emailProvider := app.createEmailProvider()
	geocoder := app.createGeocoder()
	codec := token.NewCodec(app.config.Admin.Secret)

	submissionRepo := repository.NewSubmissionRepository(app.db)
	clubRepo := repository.NewClubRepository(app.db)
	claimRepo := repository.NewClaimRepository(app.db)
	sessionRepo := repository.NewOwnerSessionRepository(app.db)
	attendanceRepo := repository.NewAttendanceRepository(app.db)

	emailService := service.NewEmailService(emailProvider, app.config.Admin.Email)
	submissionService := service.NewSubmissionService(submissionRepo, emailService, codec, app.config.AppBaseURL)
	moderationService := service.NewModerationService(submissionRepo, clubRepo, emailService, geocoder, codec)
	claimService := service.NewClaimService(claimRepo, clubRepo, emailService, codec,
		app.config.Admin.Secret, app.config.AppBaseURL)
	ownerService := service.NewOwnerService(sessionRepo, clubRepo, emailService, app.config.AppBaseURL)
	adminService := service.NewAdminService(clubRepo, submissionRepo, claimRepo)
	directoryService := service.NewDirectoryService(clubRepo, attendanceRepo,
		providers.NewCacheBackend(&app.config.Cache))

	app.server = api.NewServer(api.ServerOptions{
		DB:                app.db,
		Config:            app.config,
		SubmissionService: submissionService,
		ModerationService: moderationService,
		ClaimService:      claimService,
		OwnerService:      ownerService,
		AdminService:      adminService,
		DirectoryService:  directoryService,
	})
	app.scheduler = scheduler.NewScheduler(app.db, app.config)

	slog.Info("Services initialized successfully")
}

func (app *Application) createEmailProvider() providers.EmailProvider {
	if app.config.Email.Provider == "resend" {
		slog.Debug("Using Resend email provider")
		return providers.NewResendEmailProvider(&app.config.Email)
	}

	slog.Debug("Using SMTP email provider")
	return providers.NewSMTPEmailProvider(&app.config.Email)
}

func (app *Application) createGeocoder() providers.GeocodeProvider {
	geocoder := providers.NewMapboxGeocoder(&app.config.Geocode)
	ttl := time.Duration(app.config.Geocode.CacheTTLMinutes) * time.Minute

	return providers.NewGeocodeCacheProxy(geocoder, providers.NewCacheBackend(&app.config.Cache), ttl)
}

// Start starts the application
func (app *Application) Start() error {
	slog.Info("Starting application...")

	slog.Info("Starting scheduler...")
	app.scheduler.Start()

	slog.Info("Starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	if app.db != nil {
		if err := database.CloseDB(app.db); err != nil {
			slog.Warn("Error closing database", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}
