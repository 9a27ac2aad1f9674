package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"insights-server/internal/clients/mail"
	"insights-server/internal/observability"
)

var (
	ErrSendingEmail  = errors.New("error sending email")
	ErrEmptyTemplate = errors.New("email template is empty")
)

// EmailService handles sending emails
type EmailService struct {
	mailClient    *mail.ResendClient
	logger        *observability.Logger
	defaultSender string
	templates     map[string]string
}

// DigestData is the data rendered into the weekly digest template.
type DigestData struct {
	RecipientName  string
	WeekOf         string
	TotalLeads     int
	HotLeads       int
	ConversionRate float64
	MessagesSent   int
	Responses      int
	AvgResponse    string
	DashboardLink  string
}

// New creates a new EmailService
func New(mailClient *mail.ResendClient, defaultSender string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		templates: map[string]string{
			"weekly_digest": `
			<html>
				<body>
					<h1>Your Weekly Pipeline Digest</h1>
					<p>Hi {{.RecipientName}},</p>
					<p>Here's how your pipeline performed for the week of {{.WeekOf}}:</p>
					<ul>
						<li>New leads: <strong>{{.TotalLeads}}</strong></li>
						<li>Hot leads: <strong>{{.HotLeads}}</strong> ({{.ConversionRate}}% conversion)</li>
						<li>Messages sent: <strong>{{.MessagesSent}}</strong></li>
						<li>Responses received: <strong>{{.Responses}}</strong></li>
						<li>Average response time: <strong>{{.AvgResponse}}</strong></li>
					</ul>
					<p><a href="{{.DashboardLink}}" style="background-color: #2563EB; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Full Dashboard</a></p>
					<p>You're receiving this because you subscribed to weekly reports. Manage your subscription from the dashboard settings.</p>
				</body>
			</html>
			`,
		},
	}
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data DigestData) (string, error) {
	tmplStr, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	tmpl, err := template.New(templateName).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// SendWeeklyDigest sends the weekly metrics digest to a subscriber
func (s *EmailService) SendWeeklyDigest(ctx context.Context, to string, data DigestData) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "weekly_digest"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := fmt.Sprintf("Weekly pipeline digest for week of %s", data.WeekOf)

	htmlContent, err := s.renderTemplate("weekly_digest", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render weekly digest template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send weekly digest", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}
