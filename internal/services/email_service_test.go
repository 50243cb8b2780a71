package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent   []*mail.SGMailV3
	status int
	err    error
}

func (f *fakeSender) Send(email *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, email)
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status}, nil
}

func newTestEmailService(sender *fakeSender) *emailService {
	return &emailService{
		orgName:   "UrbanNest Properties",
		fromEmail: "noreply@example.com",
		client:    sender,
	}
}

func TestSendBuildsMessage(t *testing.T) {
	sender := &fakeSender{status: 202}
	svc := newTestEmailService(sender)

	err := svc.Send(context.Background(), EmailPropertyApproval, "ravi@example.com", EmailData{
		"property_title": "3BHK in Gachibowli",
		"poster_name":    "Ravi",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, `Your listing "3BHK in Gachibowli" is live`, msg.Subject)
	assert.Equal(t, "noreply@example.com", msg.From.Address)
	require.NotEmpty(t, msg.Personalizations)
	require.NotEmpty(t, msg.Personalizations[0].To)
	assert.Equal(t, "ravi@example.com", msg.Personalizations[0].To[0].Address)
}

func TestSendSurfacesRejection(t *testing.T) {
	svc := newTestEmailService(&fakeSender{status: 401})
	err := svc.Send(context.Background(), EmailContactNotification, "admin@example.com", EmailData{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")

	svc = newTestEmailService(&fakeSender{err: errors.New("dial tcp: timeout")})
	err = svc.Send(context.Background(), EmailContactNotification, "admin@example.com", EmailData{})
	require.Error(t, err)
}

func TestBuildEmailSubjects(t *testing.T) {
	data := EmailData{
		"property_title": "2BHK in Kondapur",
		"preferred_date": "2026-09-15",
		"preferred_time": "10:30",
		"subject":        "Site visit",
		"visitor_name":   "Vikram",
		"status":         "cancelled",
	}

	cases := []struct {
		kind EmailKind
		want string
	}{
		{EmailAppointmentConfirmation, "Your site visit for 2BHK in Kondapur is confirmed"},
		{EmailAppointmentNotification, "[Appointment] 2BHK in Kondapur – 2026-09-15 10:30"},
		{EmailContactNotification, "[Inquiry] Site visit"},
		{EmailNewPropertyAdmin, "[Moderation] New listing: 2BHK in Kondapur"},
		{EmailAppointmentStatusUpdate, "Update on your site visit for 2BHK in Kondapur"},
	}
	for _, c := range cases {
		subject, plain, html := buildEmail(c.kind, "UrbanNest Properties", data)
		assert.Equal(t, c.want, subject, "kind %s", c.kind)
		assert.NotEmpty(t, html)
		assert.NotContains(t, plain, "<strong>")
	}
}

func TestBuildEmailUnknownKindFallsBack(t *testing.T) {
	subject, _, html := buildEmail(EmailKind("mystery"), "UrbanNest Properties", EmailData{})
	assert.Equal(t, "[UrbanNest Properties] notification", subject)
	assert.Contains(t, html, "Notification")
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "Hello  world ", stripTags("Hello <strong>world</strong>"))
}
