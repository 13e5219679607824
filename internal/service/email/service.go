package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"stockadmin/internal/config"
)

// Service sends the email copy of a directed notification. Delivery is
// best-effort; callers treat failures the same way as any other degraded
// delivery channel.
type Service interface {
	SendNotificationEmail(ctx context.Context, toEmail, fullName, title, message string, severity string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

var notificationTmpl = template.Must(template.New("notification").Parse(`
<div style="font-family: sans-serif; max-width: 560px;">
  <h2>{{.Title}}</h2>
  <p>Hi {{.Name}},</p>
  <p>{{.Message}}</p>
  <p style="color: #888; font-size: 12px;">Severity: {{.Severity}}</p>
</div>`))

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

func (s *service) SendNotificationEmail(ctx context.Context, toEmail, fullName, title, message, severity string) error {
	data := struct {
		Title    string
		Name     string
		Message  string
		Severity string
	}{
		Title:    title,
		Name:     fullName,
		Message:  message,
		Severity: severity,
	}

	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render notification email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Stock Admin <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: title,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
