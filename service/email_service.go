package service

import (
	"fmt"
	"log"
	"strings"

	"findmyrun.app/errors"
	"findmyrun.app/metrics"
	"findmyrun.app/models"
	"findmyrun.app/providers"
)

// ClaimAdminNotificationParams carries everything the admin needs to decide
// a claim: who is asking, over which channel, and one-click decision links.
type ClaimAdminNotificationParams struct {
	ClubName      string
	ClaimantEmail string
	ClaimantName  string
	Method        string
	InstagramCode string
	ApproveURL    string
	RejectURL     string
}

// EmailService renders and sends workflow notifications through a provider
type EmailService struct {
	provider   providers.EmailProvider
	adminEmail string
}

// NewEmailService creates a new email service with the specified provider
func NewEmailService(provider providers.EmailProvider, adminEmail string) *EmailService {
	return &EmailService{
		provider:   provider,
		adminEmail: adminEmail,
	}
}

func (s *EmailService) send(template, to, subject, body string) error {
	err := s.provider.SendEmail(to, subject, body, true)
	if err != nil {
		metrics.Collector().EmailsFailed.WithLabelValues(template).Inc()
		log.Printf("[ERROR] Failed to send %s email to %s: %v\n", template, to, err)
		return err
	}

	metrics.Collector().EmailsSent.WithLabelValues(template).Inc()
	return nil
}

// SendSubmissionNotification tells the admin a submission awaits moderation
func (s *EmailService) SendSubmissionNotification(submission *models.Submission, approveURL, rejectURL string) error {
	if s.adminEmail == "" {
		return errors.NewValidationError("admin email is not configured")
	}

	subject := fmt.Sprintf("New club submission: %s (%s)", submission.Name, submission.City)

	var sessions strings.Builder
	for _, session := range submission.Sessions {
		fmt.Fprintf(&sessions, "<li>%s at %s", session.Day, session.Time)
		if session.Distance != "" {
			fmt.Fprintf(&sessions, " (%s)", session.Distance)
		}
		sessions.WriteString("</li>")
	}

	htmlContent := fmt.Sprintf(
		"<h2>%s</h2>"+
			"<p><strong>City:</strong> %s<br><strong>Area:</strong> %s<br>"+
			"<strong>Meeting point:</strong> %s<br><strong>Pace:</strong> %s</p>"+
			"<ul>%s</ul>"+
			"<p>%s</p>"+
			"<p>Submitted by %s (%s)</p>"+
			"<p><a href=\"%s\">Approve</a> | <a href=\"%s\">Reject</a></p>",
		submission.Name, submission.City, submission.Area,
		submission.MeetingPoint, submission.Pace,
		sessions.String(),
		submission.Description,
		submission.SubmitterName, submission.SubmitterEmail,
		approveURL, rejectURL,
	)

	return s.send("submission_notification", s.adminEmail, subject, htmlContent)
}

// SendApprovalNotification tells a submitter their club is live
func (s *EmailService) SendApprovalNotification(submitterEmail, clubName string) error {
	if submitterEmail == "" {
		return errors.NewValidationError("submitter email cannot be empty")
	}

	subject := fmt.Sprintf("%s is now live on Find My Run", clubName)
	htmlContent := fmt.Sprintf(
		"<p>Good news! <strong>%s</strong> has been approved and is now listed.</p>"+
			"<p>Thanks for helping runners find their club.</p>",
		clubName,
	)

	return s.send("approval_notification", submitterEmail, subject, htmlContent)
}

// SendRejectionNotification tells a submitter their listing was not approved
func (s *EmailService) SendRejectionNotification(submitterEmail, clubName, reason string) error {
	if submitterEmail == "" {
		return errors.NewValidationError("submitter email cannot be empty")
	}

	subject := fmt.Sprintf("Your submission for %s", clubName)
	htmlContent := fmt.Sprintf("<p>Unfortunately we couldn't list <strong>%s</strong> this time.</p>", clubName)
	if reason != "" {
		htmlContent += fmt.Sprintf("<p>Reason: %s</p>", reason)
	}

	return s.send("rejection_notification", submitterEmail, subject, htmlContent)
}

// SendClaimVerificationEmail sends the ownership-verification link to the
// club's own contact address, proving the claimant controls that channel.
func (s *EmailService) SendClaimVerificationEmail(contactEmail, clubName, verifyURL string) error {
	if contactEmail == "" {
		return errors.NewValidationError("contact email cannot be empty")
	}
	if verifyURL == "" {
		return errors.NewValidationError("verification URL cannot be empty")
	}

	subject := fmt.Sprintf("Ownership claim for %s", clubName)
	htmlContent := fmt.Sprintf(
		"<p>Someone has asked to manage the listing for <strong>%s</strong>.</p>"+
			"<p>If that's you (or someone you authorise), confirm by clicking below:</p>"+
			"<p><a href=\"%s\">Verify this claim</a></p>"+
			"<p>This link expires in 7 days. If you don't recognise this request, ignore this email.</p>",
		clubName, verifyURL,
	)

	return s.send("claim_verification", contactEmail, subject, htmlContent)
}

// SendClaimAdminNotification asks the admin to decide an instagram claim
func (s *EmailService) SendClaimAdminNotification(params ClaimAdminNotificationParams) error {
	if s.adminEmail == "" {
		return errors.NewValidationError("admin email is not configured")
	}

	subject := fmt.Sprintf("Claim awaiting review: %s", params.ClubName)
	htmlContent := fmt.Sprintf(
		"<p><strong>%s</strong> is being claimed by %s (%s) via %s.</p>",
		params.ClubName, params.ClaimantName, params.ClaimantEmail, params.Method,
	)
	if params.InstagramCode != "" {
		htmlContent += fmt.Sprintf(
			"<p>Verification code to match against the DM: <strong>%s</strong></p>",
			params.InstagramCode,
		)
	}
	htmlContent += fmt.Sprintf(
		"<p><a href=\"%s\">Approve claim</a> | <a href=\"%s\">Reject claim</a></p>",
		params.ApproveURL, params.RejectURL,
	)

	return s.send("claim_admin_notification", s.adminEmail, subject, htmlContent)
}

// SendClaimApprovedEmail welcomes a new club owner
func (s *EmailService) SendClaimApprovedEmail(ownerEmail, clubName string) error {
	if ownerEmail == "" {
		return errors.NewValidationError("owner email cannot be empty")
	}

	subject := fmt.Sprintf("You now manage %s", clubName)
	htmlContent := fmt.Sprintf(
		"<p>Your claim for <strong>%s</strong> has been verified.</p>"+
			"<p>You can now sign in with this email address to edit your listing.</p>",
		clubName,
	)

	return s.send("claim_approved", ownerEmail, subject, htmlContent)
}

// SendClaimRejectedEmail tells a claimant their claim was declined
func (s *EmailService) SendClaimRejectedEmail(claimantEmail, clubName, reason string) error {
	if claimantEmail == "" {
		return errors.NewValidationError("claimant email cannot be empty")
	}

	subject := fmt.Sprintf("Your claim for %s", clubName)
	htmlContent := fmt.Sprintf("<p>Your claim for <strong>%s</strong> was not approved.</p>", clubName)
	if reason != "" {
		htmlContent += fmt.Sprintf("<p>Reason: %s</p>", reason)
	}

	return s.send("claim_rejected", claimantEmail, subject, htmlContent)
}

// SendOwnerLoginEmail sends a one-time login link to a club owner
func (s *EmailService) SendOwnerLoginEmail(email, loginURL string) error {
	if email == "" {
		return errors.NewValidationError("email cannot be empty")
	}
	if loginURL == "" {
		return errors.NewValidationError("login URL cannot be empty")
	}

	subject := "Your Find My Run login link"
	htmlContent := fmt.Sprintf(
		"<p>Click below to sign in and manage your clubs:</p>"+
			"<p><a href=\"%s\">Sign in</a></p>"+
			"<p>This link works once and expires in 1 hour.</p>",
		loginURL,
	)

	return s.send("owner_login", email, subject, htmlContent)
}
