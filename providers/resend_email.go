package providers

import (
	"fmt"

	"findmyrun.app/config"
	"findmyrun.app/errors"
	"github.com/resend/resend-go/v2"
)

// ResendEmailProvider implements EmailProvider using the Resend API
type ResendEmailProvider struct {
	client      *resend.Client
	fromName    string
	fromAddress string
}

// NewResendEmailProvider creates a new Resend email provider
func NewResendEmailProvider(config *config.EmailConfig) *ResendEmailProvider {
	return &ResendEmailProvider{
		client:      resend.NewClient(config.ResendAPIKey),
		fromName:    config.FromName,
		fromAddress: config.FromAddress,
	}
}

// SendEmail sends an email through Resend
func (p *ResendEmailProvider) SendEmail(to, subject, body string, isHTML bool) error {
	if to == "" {
		return errors.NewValidationError("recipient email cannot be empty")
	}
	if subject == "" {
		return errors.NewValidationError("email subject cannot be empty")
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", p.fromName, p.fromAddress),
		To:      []string{to},
		Subject: subject,
	}
	if isHTML {
		params.Html = body
	} else {
		params.Text = body
	}

	if _, err := p.client.Emails.Send(params); err != nil {
		return errors.NewEmailError("failed to send email via resend", err)
	}

	return nil
}
