package mailer

import (
	"fmt"

	"studio-site/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Sender delivers one-time codes. Delivery failure must never abort the
// caller; callers treat an error as "not delivered" and proceed.
type Sender interface {
	SendOTPEmail(email, code string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) Sender {
	return &smtpMailer{
		dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:   config.From,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) SendOTPEmail(email, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Your login verification code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your one-time verification code is: %s\n\n"+
			"The code expires shortly and can be used once. "+
			"If you did not try to log in, you can ignore this email.\n", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Warn("Failed to send OTP email", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("send OTP email to %s: %w", email, err)
	}

	return nil
}
