package api

import (
	"log/slog"
	"net/http"

	apperrors "findmyrun.app/errors"
	"findmyrun.app/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) listClubs(c *gin.Context) {
	city := c.Query("city")
	slog.Debug("Listing clubs", "city", city)

	clubs, err := s.directoryService.ListClubs(city)
	if err != nil {
		slog.Error("Club listing error", "error", err, "city", city)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clubs": clubs, "count": len(clubs)})
}

func (s *Server) markAttendance(c *gin.Context) {
	var req models.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, apperrors.NewValidationError("clubName and sessionDate are required"))
		return
	}

	created, err := s.directoryService.MarkAttendance(&req)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recorded": created})
}

func (s *Server) getAttendance(c *gin.Context) {
	clubName := c.Query("club")

	if clubName != "" {
		count, err := s.directoryService.AttendanceCount(clubName)
		if err != nil {
			s.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"club": clubName, "count": count})
		return
	}

	counts, err := s.directoryService.AttendanceCounts()
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}
