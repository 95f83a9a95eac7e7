package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	apperrors "findmyrun.app/errors"
	"findmyrun.app/models"
	"findmyrun.app/service"
	"github.com/gin-gonic/gin"
)

func (s *Server) submitClub(c *gin.Context) {
	var req models.SubmissionRequest
	slog.Debug("Handling club submission")

	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperrors.NewValidationError("invalid request format"))
		return
	}

	id, err := s.submissionService.Submit(&req)
	if err != nil {
		slog.Error("Submission error", "error", err, "club", req.ClubName)
		s.handleError(c, err)
		return
	}

	slog.Debug("Submission accepted", "id", id, "club", req.ClubName)
	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"message": "Thanks! Your club has been submitted and will appear once approved.",
	})
}

func (s *Server) approveSubmission(c *gin.Context) {
	s.moderate(c, s.moderationService.Approve)
}

func (s *Server) rejectSubmission(c *gin.Context) {
	id := c.Param("id")
	tok := c.Query("token")
	reason := c.Query("reason")
	if tok == "" {
		s.redirectModerationError(c, apperrors.NewValidationError("token parameter is required"))
		return
	}

	result, err := s.moderationService.Reject(id, tok, reason)
	if err != nil {
		slog.Error("Moderation error", "error", err, "submission", id)
		s.redirectModerationError(c, err)
		return
	}
	s.redirectModerationResult(c, result)
}

func (s *Server) moderate(c *gin.Context, decide func(id, tok string) (*service.ModerationResult, error)) {
	id := c.Param("id")
	tok := c.Query("token")
	if tok == "" {
		s.redirectModerationError(c, apperrors.NewValidationError("token parameter is required"))
		return
	}

	result, err := decide(id, tok)
	if err != nil {
		slog.Error("Moderation error", "error", err, "submission", id)
		s.redirectModerationError(c, err)
		return
	}
	s.redirectModerationResult(c, result)
}

// redirectModerationResult sends the admin's browser to a human-readable
// outcome page. Magic links are opened from email clients, so a JSON body
// would be the wrong surface here.
func (s *Server) redirectModerationResult(c *gin.Context, result *service.ModerationResult) {
	target := fmt.Sprintf("/submission-result?status=%s&club=%s",
		result.Status, url.QueryEscape(result.ClubName))
	if result.AlreadyProcessed {
		target += "&already=1"
	}
	c.Redirect(http.StatusFound, target)
}

// redirectModerationError lands link failures on the same result page, with
// the reason in the query string instead of a JSON body nobody would see.
func (s *Server) redirectModerationError(c *gin.Context, err error) {
	c.Redirect(http.StatusFound,
		"/submission-result?status=error&message="+url.QueryEscape(linkErrorMessage(err)))
}
