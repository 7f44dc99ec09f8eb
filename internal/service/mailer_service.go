package service

import (
	"context"
	"fmt"

	"folio/internal/logging"

	"github.com/resend/resend-go/v2"
)

// ContactMessage is one validated contact form submission, fields trimmed
// but not yet escaped.
type ContactMessage struct {
	Name    string
	Email   string
	Company string
	Message string
}

// Mailer delivers a contact message to the site owner.
type Mailer interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}

// ResendMailer sends contact messages through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
	to     string
}

// NewResendMailer creates a mailer sending from the configured sender
// address to the configured recipient. Both always come from server
// configuration, never from client input.
func NewResendMailer(apiKey, from, to string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

// BuildContactEmail renders the subject and HTML body for a contact
// message. All user-controlled text is entity-escaped before it is
// interpolated; message newlines become line breaks after escaping.
func BuildContactEmail(msg ContactMessage) (subject, html string) {
	safeName := EscapeHTML(msg.Name)
	safeEmail := EscapeHTML(msg.Email)
	safeCompany := EscapeHTML(msg.Company)
	safeMessage := EscapeMessageHTML(msg.Message)

	subject = fmt.Sprintf("Recruiter inquiry from %s (%s)", safeName, safeCompany)
	html = fmt.Sprintf(`<div style="font-family:Arial, sans-serif; line-height:1.5;">
  <h2>New recruiter message</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Company:</strong> %s</p>
  <p><strong>Message:</strong></p>
  <p>%s</p>
</div>`, safeName, safeEmail, safeCompany, safeMessage)
	return subject, html
}

// SendContactMessage sends the message as an HTML email. The reply-to is
// the submitter's raw address: it is a protocol field, not rendered, and
// has already been validated to contain no CR/LF.
func (m *ResendMailer) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	subject, html := BuildContactEmail(msg)

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		ReplyTo: msg.Email,
		Subject: subject,
		Html:    html,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	logging.GetGlobalLogger().Info("Contact email sent (id=%s)", sent.Id)
	return nil
}
