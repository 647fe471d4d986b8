package services

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/mhrakib/aircnc-api/internal/config"
	"github.com/mhrakib/aircnc-api/internal/logger"
)

// Mailer sends a templated message to one recipient. Sends are
// fire-and-forget: the caller never learns whether delivery worked.
type Mailer interface {
	Send(subject, message, to string)
}

type SMTPMailer struct {
	host string
	port string
	user string
	pass string
}

func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	return &SMTPMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
	}
}

// Send delivers in a goroutine so it doesn't block the API response.
func (m *SMTPMailer) Send(subject, message, to string) {
	go m.send(subject, message, to)
}

func (m *SMTPMailer) send(subject, message, to string) {
	if to == "" {
		logger.Get().Warn("Mail not sent: no recipient address")
		return
	}

	msg := buildMessage(m.user, to, subject, message)
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.user, []string{to}, msg); err != nil {
		logger.Get().Error("Failed to send mail", zap.String("to", to), zap.Error(err))
		return
	}
	logger.Get().Info("Mail sent", zap.String("to", to), zap.String("subject", subject))
}

func buildMessage(from, to, subject, body string) []byte {
	return []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n<p>%s</p>",
		from, to, subject, body,
	))
}
