package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/serviceconnect/booking-backend/config"
)

// Mailer sends transactional mail over SMTP.
type Mailer struct {
	from   string
	dialer *gomail.Dialer
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		from: cfg.EmailUser,
		dialer: gomail.NewDialer(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.EmailUser,
			cfg.EmailPass,
		),
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}

// SendOTP mails a verification code to the user.
func (m *Mailer) SendOTP(to, code string) error {
	subject := "Your OTP Verification Code"
	body := fmt.Sprintf("<p>Your OTP code is: <strong>%s</strong>. It will expire in 5 minutes.</p>", code)
	return m.Send(to, subject, body)
}
