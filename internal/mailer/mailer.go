package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"teamquest-backend/internal/config"
	apperrors "teamquest-backend/internal/errors"
	"teamquest-backend/internal/logger"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var log = logger.WithComponent("mailer")

// EmailSender is the notification contract consumed by the auth and team
// services. Callers treat delivery as best-effort: failures are logged by
// the caller, never surfaced to API clients.
type EmailSender interface {
	SendInvitation(email, token, teamName, inviterName string) error
	SendPasswordReset(email, token string) error
	SendVerification(email, token string) error
}

// Mailer sends templated HTML emails over SMTP.
type Mailer struct {
	host      string
	port      int
	username  string
	password  string
	enableSSL bool
	from      string
	baseURL   string
}

// New creates a mailer from the SMTP configuration.
func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		enableSSL: cfg.SMTPEnableSSL,
		from:      cfg.SMTPFrom,
		baseURL:   cfg.FrontendBaseURL,
	}
}

// SendInvitation emails a team invitation link carrying the single-use
// token, the team name and the inviter's display name.
func (m *Mailer) SendInvitation(email, token, teamName, inviterName string) error {
	body, err := render(invitationTemplate, map[string]string{
		"InviterName": inviterName,
		"TeamName":    teamName,
		"Link":        fmt.Sprintf("%s/welcome/?token=%s", m.baseURL, token),
	})
	if err != nil {
		return err
	}
	return m.send(email, "You're invited to join a team on TeamQuest!", body)
}

// SendPasswordReset emails a 24-hour password reset link.
func (m *Mailer) SendPasswordReset(email, token string) error {
	body, err := render(passwordResetTemplate, map[string]string{
		"Link": fmt.Sprintf("%s/reset-password?token=%s", m.baseURL, token),
	})
	if err != nil {
		return err
	}
	return m.send(email, "Reset Your Password - TeamQuest", body)
}

// SendVerification emails a 24-hour email verification link.
func (m *Mailer) SendVerification(email, token string) error {
	body, err := render(verificationTemplate, map[string]string{
		"Link": fmt.Sprintf("%s/verify-email?token=%s", m.baseURL, token),
	})
	if err != nil {
		return err
	}
	return m.send(email, "Verify Your Email - TeamQuest", body)
}

func (m *Mailer) send(to, subject, body string) error {
	if m.host == "" {
		return apperrors.NewConfigurationError("SMTP server is not configured")
	}
	if m.username == "" || m.password == "" {
		return apperrors.NewConfigurationError("SMTP credentials are not configured")
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "TeamQuest")
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	dialer.SSL = m.enableSSL

	log.WithFields(logrus.Fields{
		"to":   to,
		"host": m.host,
		"port": m.port,
	}).Debug("Sending email")

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	log.WithField("to", to).Info("Email sent")
	return nil
}

func render(tmpl *template.Template, data map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}
