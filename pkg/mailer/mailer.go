package mailer

import (
	"fmt"
	"net/smtp"
	"os"
)

// Notifier delivers a plain-text message to one recipient. Implementations
// are best-effort collaborators; callers decide whether a delivery failure
// fails their operation.
type Notifier interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

// NewFromEnv builds an SMTP notifier from MAIL_* environment variables.
// It returns nil when no mail credentials are configured, which callers
// treat as notifications disabled.
func NewFromEnv() *SMTPMailer {
	user := os.Getenv("MAIL_USER")
	pass := os.Getenv("MAIL_PASS")
	if user == "" || pass == "" {
		return nil
	}

	host := os.Getenv("MAIL_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("MAIL_PORT")
	if port == "" {
		port = "587"
	}
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = user
	}

	return &SMTPMailer{host: host, port: port, user: user, pass: pass, from: from}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, []byte(msg))
}
