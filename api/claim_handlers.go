package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	apperrors "findmyrun.app/errors"
	"findmyrun.app/models"
	"findmyrun.app/service"
	"github.com/gin-gonic/gin"
)

func (s *Server) createClaim(c *gin.Context) {
	var req models.ClaimRequest
	slog.Debug("Handling ownership claim")

	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperrors.NewValidationError("invalid request format"))
		return
	}

	result, err := s.claimService.Create(&req)
	if err != nil {
		slog.Error("Claim creation error", "error", err, "club", req.ClubID)
		s.handleError(c, err)
		return
	}

	slog.Debug("Claim created", "claim", result.ClaimID, "method", result.Method)
	c.JSON(http.StatusOK, result)
}

func (s *Server) claimStatus(c *gin.Context) {
	claim, err := s.claimService.Status(c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                 claim.ID,
		"status":             claim.Status,
		"verificationMethod": claim.VerificationMethod,
		"rejectedReason":     claim.RejectedReason,
	})
}

func (s *Server) verifyClaim(c *gin.Context) {
	id := c.Param("id")
	tok := c.Query("token")
	if tok == "" {
		s.redirectClaimError(c, apperrors.NewValidationError("token parameter is required"))
		return
	}

	result, err := s.claimService.VerifyByLink(id, tok)
	if err != nil {
		slog.Error("Claim verification error", "error", err, "claim", id)
		s.redirectClaimError(c, err)
		return
	}
	s.redirectClaimResult(c, result)
}

func (s *Server) approveClaim(c *gin.Context) {
	id := c.Param("id")

	result, err := s.claimService.AdminApprove(id, s.claimCredential(c))
	if err != nil {
		slog.Error("Claim approval error", "error", err, "claim", id)
		s.redirectClaimError(c, err)
		return
	}
	s.redirectClaimResult(c, result)
}

func (s *Server) rejectClaim(c *gin.Context) {
	id := c.Param("id")

	result, err := s.claimService.AdminReject(id, s.claimCredential(c), c.Query("reason"))
	if err != nil {
		slog.Error("Claim rejection error", "error", err, "claim", id)
		s.redirectClaimError(c, err)
		return
	}
	s.redirectClaimResult(c, result)
}

// claimCredential extracts either a signed token from the email link or the
// admin shared secret from an Authorization header.
func (s *Server) claimCredential(c *gin.Context) string {
	if tok := c.Query("token"); tok != "" {
		return tok
	}
	return strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
}

func (s *Server) redirectClaimResult(c *gin.Context, result *service.ClaimResult) {
	target := fmt.Sprintf("/claim-result?status=%s&club=%s",
		result.Status, url.QueryEscape(result.ClubName))
	if result.AlreadyProcessed {
		target += "&already=1"
	}
	c.Redirect(http.StatusFound, target)
}

// redirectClaimError sends link failures to the claim result page. These
// endpoints are opened from email clients, so JSON is the wrong surface.
func (s *Server) redirectClaimError(c *gin.Context, err error) {
	c.Redirect(http.StatusFound,
		"/claim-result?status=error&message="+url.QueryEscape(linkErrorMessage(err)))
}
