package api

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	apperrors "findmyrun.app/errors"
	"findmyrun.app/models"
	"github.com/gin-gonic/gin"
)

const ownerSessionCookie = "owner_session"

func (s *Server) requestOwnerLogin(c *gin.Context) {
	var req models.OwnerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, apperrors.NewValidationError("a valid email address is required"))
		return
	}

	message, err := s.ownerService.RequestLogin(req.Email)
	if err != nil {
		slog.Error("Owner login request error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (s *Server) redeemOwnerLogin(c *gin.Context) {
	secret := c.Query("token")
	email := c.Query("email")
	if secret == "" || email == "" {
		s.handleError(c, apperrors.NewValidationError("token and email parameters are required"))
		return
	}

	sessionSecret, _, err := s.ownerService.RedeemLogin(email, secret)
	if err != nil {
		var appErr *apperrors.AppError
		if stderrors.As(err, &appErr) && appErr.Type == apperrors.AuthorizationError {
			// Clicked from an email client, so land on a page, not JSON.
			c.Redirect(http.StatusFound, "/owner/login?error=expired")
			return
		}
		slog.Error("Owner login redemption error", "error", err)
		s.handleError(c, err)
		return
	}

	s.setOwnerCookie(c, email+":"+sessionSecret)
	c.Redirect(http.StatusFound, "/owner")
}

func (s *Server) ownerProfile(c *gin.Context) {
	email, ok := s.requireOwner(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email})
}

func (s *Server) ownerLogout(c *gin.Context) {
	if cookie, err := c.Cookie(ownerSessionCookie); err == nil {
		if err := s.ownerService.RevokeSession(cookie); err != nil {
			slog.Warn("Failed to revoke owner session", "error", err)
		}
	}

	s.clearOwnerCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (s *Server) listOwnedClubs(c *gin.Context) {
	email, ok := s.requireOwner(c)
	if !ok {
		return
	}

	clubs, err := s.ownerService.ListOwnedClubs(email)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clubs": clubs})
}

func (s *Server) getOwnedClub(c *gin.Context) {
	email, ok := s.requireOwner(c)
	if !ok {
		return
	}

	club, err := s.ownerService.GetOwnedClub(email, c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

func (s *Server) updateOwnedClub(c *gin.Context) {
	email, ok := s.requireOwner(c)
	if !ok {
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		s.handleError(c, apperrors.NewValidationError("invalid request format"))
		return
	}

	club, err := s.ownerService.UpdateOwnedClub(email, c.Param("id"), payload)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

// requireOwner resolves the session cookie to an owner email, replying 401
// itself when the caller is not signed in.
func (s *Server) requireOwner(c *gin.Context) (string, bool) {
	cookie, err := c.Cookie(ownerSessionCookie)
	if err != nil {
		s.handleError(c, apperrors.NewAuthorizationError("not logged in"))
		return "", false
	}

	email, err := s.ownerService.VerifySession(cookie)
	if err != nil {
		s.handleError(c, err)
		return "", false
	}
	return email, true
}

func (s *Server) setOwnerCookie(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ownerSessionCookie, value, 7*24*3600, "/", "", s.config.Server.SecureCookie, true)
}

func (s *Server) clearOwnerCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ownerSessionCookie, "", -1, "/", "", s.config.Server.SecureCookie, true)
}
