package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// Service is the outbound email capability. Callers treat delivery as
// best-effort; a failed send must never fail the request it accompanies.
type Service interface {
	SendMagicLinkEmail(to, link string, expiresInMinutes int) error
	SendLoginAlertEmail(to, loginEmail, userAgent, ip string, at time.Time) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendMagicLinkEmail(to, link string, expiresInMinutes int) error {
	subject := "Your sign-in link"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Click the link below to sign in:</p>
			<p><a href="%s">Sign in</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link expires in %d minutes.</p>
			<p>If you didn't request this link, you can ignore this email.</p>
		</body>
		</html>
	`, link, link, expiresInMinutes)

	plainBody := fmt.Sprintf(`
Sign in by visiting:
%s

This link expires in %d minutes.

If you didn't request this link, you can ignore this email.
	`, link, expiresInMinutes)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendLoginAlertEmail(to, loginEmail, userAgent, ip string, at time.Time) error {
	subject := fmt.Sprintf("New login: %s", loginEmail)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p><strong>New login</strong></p>
			<ul>
				<li><strong>Email:</strong> %s</li>
				<li><strong>Device:</strong> %s</li>
				<li><strong>IP:</strong> %s</li>
				<li><strong>Time:</strong> %s</li>
			</ul>
		</body>
		</html>
	`, loginEmail, userAgent, ip, at.Format(time.RFC3339))

	plainBody := fmt.Sprintf(`
New login

Email: %s
Device: %s
IP: %s
Time: %s
	`, loginEmail, userAgent, ip, at.Format(time.RFC3339))

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
