package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	apperrors "findmyrun.app/errors"
	"github.com/gin-gonic/gin"
)

// requireAdmin gates the console routes behind the shared admin secret
func (s *Server) requireAdmin(c *gin.Context) {
	provided := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if provided == "" ||
		subtle.ConstantTimeCompare([]byte(provided), []byte(s.config.Admin.Secret)) != 1 {
		s.handleError(c, apperrors.NewAuthorizationError("invalid admin credentials"))
		c.Abort()
		return
	}
	c.Next()
}

func (s *Server) adminListClubs(c *gin.Context) {
	clubs, err := s.adminService.ListClubs()
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clubs": clubs, "count": len(clubs)})
}

func (s *Server) adminDeleteClub(c *gin.Context) {
	id := c.Query("id")
	name := c.Query("name")

	if err := s.adminService.DeleteClub(id, name); err != nil {
		s.handleError(c, err)
		return
	}

	slog.Info("Admin deleted club", "id", id, "name", name)
	c.JSON(http.StatusOK, gin.H{"message": "Club deleted"})
}

func (s *Server) adminListSubmissions(c *gin.Context) {
	submissions, err := s.adminService.ListSubmissions()
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": submissions, "count": len(submissions)})
}

func (s *Server) adminDeleteSubmission(c *gin.Context) {
	id := c.Param("id")
	if err := s.adminService.DeleteSubmission(id); err != nil {
		s.handleError(c, err)
		return
	}

	slog.Info("Admin deleted submission", "id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Submission deleted"})
}

func (s *Server) adminListClaims(c *gin.Context) {
	claims, err := s.adminService.ListClaims()
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": claims, "count": len(claims)})
}

func (s *Server) adminDeleteClaim(c *gin.Context) {
	id := c.Param("id")
	if err := s.adminService.DeleteClaim(id); err != nil {
		s.handleError(c, err)
		return
	}

	slog.Info("Admin deleted claim", "id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Claim deleted"})
}

func (s *Server) adminImportSeed(c *gin.Context) {
	result, err := s.adminService.ImportSeedClubs()
	if err != nil {
		s.handleError(c, err)
		return
	}

	slog.Info("Seed import complete", "migrated", result.Migrated, "skipped", result.Skipped)
	c.JSON(http.StatusOK, result)
}
