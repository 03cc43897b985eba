package mail

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/slangstash/slang-service/internal/mail Mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer delivers the account-lifecycle messages. Both methods block until the
// message is accepted by the SMTP server, so callers can order side effects
// around a successful send.
type Mailer interface {
	SendVerificationEmail(email, token string) error
	SendResetPasswordEmail(email, token string) error
}

type SMTPMailer struct {
	dialer          *gomail.Dialer
	from            string
	appBaseURL      string
	frontendBaseURL string
}

func NewSMTPMailer(host string, port int, account, password, appBaseURL, frontendBaseURL string) *SMTPMailer {
	return &SMTPMailer{
		dialer:          gomail.NewDialer(host, port, account, password),
		from:            account,
		appBaseURL:      appBaseURL,
		frontendBaseURL: frontendBaseURL,
	}
}

func (m *SMTPMailer) SendVerificationEmail(email, token string) error {
	verificationURL := fmt.Sprintf("%s/verify-email?token=%s", m.appBaseURL, token)
	body := fmt.Sprintf("Please verify your email by clicking on the following link: %s", verificationURL)

	return m.send(email, "Email Verification", body)
}

func (m *SMTPMailer) SendResetPasswordEmail(email, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", m.frontendBaseURL, token)
	body := fmt.Sprintf("Please reset your password by clicking on the following link: %s", resetURL)

	return m.send(email, "Password Reset", body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send %q mail to %s: %w", subject, to, err)
	}

	return nil
}
