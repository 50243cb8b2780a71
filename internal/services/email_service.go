package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

// EmailKind discriminates the outbound notification payloads.
type EmailKind string

const (
	EmailAppointmentConfirmation EmailKind = "appointment_confirmation"
	EmailAppointmentNotification EmailKind = "appointment_notification"
	EmailContactNotification     EmailKind = "contact_notification"
	EmailPropertyRejection       EmailKind = "property_rejection"
	EmailPropertyApproval        EmailKind = "property_approval"
	EmailNewPropertyAdmin        EmailKind = "new_property_admin"
	EmailAppointmentStatusUpdate EmailKind = "appointment_status_update"
)

// EmailData carries the per-kind template fields.
type EmailData map[string]string

type EmailService interface {
	// Send delivers synchronously and returns the delivery error.
	Send(ctx context.Context, kind EmailKind, to string, data EmailData) error
	// SendAsync is the best-effort wrapper: delivery runs in its own
	// goroutine, failures are logged and never reach the caller.
	SendAsync(kind EmailKind, to string, data EmailData)
}

// sendgridSender is the slice of *sendgrid.Client we use; tests substitute
// a recorder.
type sendgridSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

type emailService struct {
	orgName   string
	fromEmail string
	client    sendgridSender
}

func NewEmailService(apiKey, orgName, fromEmail string) EmailService {
	return &emailService{
		orgName:   orgName,
		fromEmail: fromEmail,
		client:    sendgrid.NewSendClient(apiKey),
	}
}

func (s *emailService) Send(_ context.Context, kind EmailKind, to string, data EmailData) error {
	subject, plain, html := buildEmail(kind, s.orgName, data)

	from := mail.NewEmail(s.orgName, s.fromEmail)
	msg := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), plain, html)

	resp, err := s.client.Send(msg)
	if err != nil {
		return err
	}
	if resp != nil && resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected %s email: status %d – %s", kind, resp.StatusCode, resp.Body)
	}
	return nil
}

func (s *emailService) SendAsync(kind EmailKind, to string, data EmailData) {
	go func() {
		if err := s.Send(context.Background(), kind, to, data); err != nil {
			utils.Logger.WithError(err).Warnf("Best-effort %s email to %s failed", kind, to)
		}
	}()
}

// ------------------------------------------------------------------
// templates
// ------------------------------------------------------------------

const notificationEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f8f9fa; margin: 0; padding: 20px; }
  .container { max-width: 520px; margin: auto; background: #ffffff; border: 1px solid #e9ecef; border-radius: 8px; overflow: hidden; }
  .header { background-color: #1a6b54; color: white; padding: 20px; text-align: center; }
  .header h1 { margin: 0; font-size: 22px; }
  .content { padding: 28px; text-align: left; }
  .footer { background-color: #f8f9fa; padding: 18px; text-align: center; font-size: 12px; color: #6c757d; }
  p { margin-bottom: 1em; }
</style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>%s</h1></div>
    <div class="content">%s</div>
    <div class="footer">© %d %s. All rights reserved.</div>
  </div>
</body>
</html>`

// buildEmail renders the subject, plain-text and HTML bodies for a kind.
// Unknown data keys are simply absent from the body; templates degrade to
// empty strings rather than failing — the email channel never blocks the
// primary operation.
func buildEmail(kind EmailKind, orgName string, data EmailData) (subject, plain, html string) {
	var heading, body string

	switch kind {
	case EmailAppointmentConfirmation:
		subject = fmt.Sprintf("Your site visit for %s is confirmed", data["property_title"])
		heading = "Visit Confirmed"
		body = fmt.Sprintf(
			"<p>Hello %s,</p><p>Your visit to <strong>%s</strong> on %s at %s is confirmed. Our team will meet you at the property.</p>",
			data["visitor_name"], data["property_title"], data["preferred_date"], data["preferred_time"],
		)
	case EmailAppointmentNotification:
		subject = fmt.Sprintf("[Appointment] %s – %s %s", data["property_title"], data["preferred_date"], data["preferred_time"])
		heading = "New Appointment Request"
		body = fmt.Sprintf(
			"<p><strong>%s</strong> (%s, %s) requested a visit to <strong>%s</strong> on %s at %s.</p><p>%s</p>",
			data["visitor_name"], data["visitor_email"], data["visitor_phone"],
			data["property_title"], data["preferred_date"], data["preferred_time"], data["message"],
		)
	case EmailContactNotification:
		subject = fmt.Sprintf("[Inquiry] %s", data["subject"])
		heading = "New Inquiry"
		body = fmt.Sprintf(
			"<p><strong>%s</strong> (%s, %s) wrote:</p><p>%s</p>",
			data["name"], data["email"], data["phone"], data["message"],
		)
	case EmailPropertyRejection:
		subject = fmt.Sprintf("Your listing %q was not approved", data["property_title"])
		heading = "Listing Not Approved"
		body = fmt.Sprintf(
			"<p>Hello %s,</p><p>Unfortunately your listing <strong>%s</strong> did not pass moderation. You can edit and resubmit it at any time.</p>",
			data["poster_name"], data["property_title"],
		)
	case EmailPropertyApproval:
		subject = fmt.Sprintf("Your listing %q is live", data["property_title"])
		heading = "Listing Approved"
		body = fmt.Sprintf(
			"<p>Hello %s,</p><p>Your listing <strong>%s</strong> was approved and is now visible to buyers.</p>",
			data["poster_name"], data["property_title"],
		)
	case EmailNewPropertyAdmin:
		subject = fmt.Sprintf("[Moderation] New listing: %s", data["property_title"])
		heading = "New Listing Pending Review"
		body = fmt.Sprintf(
			"<p><strong>%s</strong> in %s, posted by %s (%s), is awaiting moderation.</p>",
			data["property_title"], data["property_location"], data["poster_name"], data["poster_email"],
		)
	case EmailAppointmentStatusUpdate:
		subject = fmt.Sprintf("Update on your site visit for %s", data["property_title"])
		heading = "Appointment Update"
		body = fmt.Sprintf(
			"<p>Hello %s,</p><p>Your visit request for <strong>%s</strong> is now <strong>%s</strong>.</p>",
			data["visitor_name"], data["property_title"], data["status"],
		)
	default:
		subject = fmt.Sprintf("[%s] notification", orgName)
		heading = "Notification"
	}

	plain = stripTags(body)
	html = fmt.Sprintf(notificationEmailHTML, heading, body, time.Now().Year(), orgName)
	return subject, plain, html
}

// stripTags is a minimal tag remover for the plain-text fallback body.
func stripTags(s string) string {
	out := make([]rune, 0, len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			out = append(out, ' ')
		case !inTag:
			out = append(out, r)
		}
	}
	return string(out)
}
