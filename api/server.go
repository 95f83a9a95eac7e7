package api

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"findmyrun.app/config"
	apperrors "findmyrun.app/errors"
	"findmyrun.app/models"
	"findmyrun.app/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Server represents the HTTP server and API handler
type Server struct {
	router            *gin.Engine
	db                *gorm.DB
	config            *config.Config
	submissionService service.SubmissionServiceInterface
	moderationService service.ModerationServiceInterface
	claimService      service.ClaimServiceInterface
	ownerService      service.OwnerServiceInterface
	adminService      service.AdminServiceInterface
	directoryService  service.DirectoryServiceInterface
}

// ServerOptions bundles the dependencies a server needs
type ServerOptions struct {
	DB                *gorm.DB
	Config            *config.Config
	SubmissionService service.SubmissionServiceInterface
	ModerationService service.ModerationServiceInterface
	ClaimService      service.ClaimServiceInterface
	OwnerService      service.OwnerServiceInterface
	AdminService      service.AdminServiceInterface
	DirectoryService  service.DirectoryServiceInterface
}

// NewServer creates and configures a new HTTP server
func NewServer(opts ServerOptions) *Server {
	router := gin.Default()

	server := &Server{
		router:            router,
		db:                opts.DB,
		config:            opts.Config,
		submissionService: opts.SubmissionService,
		moderationService: opts.ModerationService,
		claimService:      opts.ClaimService,
		ownerService:      opts.OwnerService,
		adminService:      opts.AdminService,
		directoryService:  opts.DirectoryService,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/clubs", s.listClubs)
		api.POST("/attendance", s.markAttendance)
		api.GET("/attendance", s.getAttendance)

		api.POST("/submissions", s.submitClub)
		api.GET("/submissions/:id/approve", s.approveSubmission)
		api.GET("/submissions/:id/reject", s.rejectSubmission)

		api.POST("/claims", s.createClaim)
		api.GET("/claims/:id", s.claimStatus)
		api.GET("/claims/:id/verify", s.verifyClaim)
		api.GET("/claims/:id/approve", s.approveClaim)
		api.GET("/claims/:id/reject", s.rejectClaim)

		owner := api.Group("/owner")
		{
			owner.POST("/login", s.requestOwnerLogin)
			owner.GET("/auth", s.redeemOwnerLogin)
			owner.GET("/me", s.ownerProfile)
			owner.POST("/logout", s.ownerLogout)
			owner.GET("/clubs", s.listOwnedClubs)
			owner.GET("/clubs/:id", s.getOwnedClub)
			owner.PATCH("/clubs/:id", s.updateOwnedClub)
		}

		admin := api.Group("/admin", s.requireAdmin)
		{
			admin.GET("/clubs", s.adminListClubs)
			admin.DELETE("/clubs", s.adminDeleteClub)
			admin.GET("/submissions", s.adminListSubmissions)
			admin.DELETE("/submissions/:id", s.adminDeleteSubmission)
			admin.GET("/claims", s.adminListClaims)
			admin.DELETE("/claims/:id", s.adminDeleteClaim)
			admin.POST("/migrate-seed", s.adminImportSeed)
		}
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.ServeStaticFiles()
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// handleError maps application errors to HTTP status codes
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	var statusCode int
	var message string

	if stderrors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case apperrors.TokenError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case apperrors.AuthorizationError:
			statusCode = http.StatusUnauthorized
			message = appErr.Message
		case apperrors.NotFoundError:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case apperrors.ConflictError:
			statusCode = http.StatusConflict
			message = appErr.Message
		case apperrors.DatabaseError:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		case apperrors.ExternalAPIError:
			statusCode = http.StatusServiceUnavailable
			message = "External service unavailable"
		case apperrors.EmailError:
			statusCode = http.StatusServiceUnavailable
			message = "Unable to send email"
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}

// linkErrorMessage picks the text a result page shows when a magic link
// fails. Internal failure details stay out of the browser.
func linkErrorMessage(err error) string {
	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ValidationError, apperrors.TokenError, apperrors.AuthorizationError,
			apperrors.NotFoundError, apperrors.ConflictError:
			return appErr.Message
		}
	}
	return "something went wrong, please try again later"
}
