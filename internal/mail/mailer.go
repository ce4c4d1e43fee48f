// Package mail sends transactional email over SMTP.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Message is a plain-text email ready to send.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Sender delivers a message to its recipient.
type Sender interface {
	Send(msg Message) error
}

// SMTPSender sends mail through a single SMTP host. With an empty username
// it connects without authentication, which is what local catch-all servers
// like MailHog expect.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPSender creates an SMTPSender.
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers one message.
func (s *SMTPSender) Send(msg Message) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	return smtp.SendMail(addr, auth, s.from, []string{msg.To}, []byte(b.String()))
}

// WelcomeMessage composes the email sent to a freshly signed-up user.
func WelcomeMessage(to, name string) Message {
	return Message{
		To:      to,
		Subject: "Welcome to the Tourbook family!",
		Body: fmt.Sprintf("Hi %s,\n\n"+
			"Welcome to Tourbook, we're glad to have you!\n"+
			"Upload a profile photo and start exploring our tours.\n\n"+
			"The Tourbook Team", name),
	}
}

// ResetMessage composes the password-reset email. resetURL carries the raw
// token; it is valid for ten minutes.
func ResetMessage(to, name, resetURL string) Message {
	return Message{
		To:      to,
		Subject: "Your password reset token (valid for 10 minutes)",
		Body: fmt.Sprintf("Hi %s,\n\n"+
			"Forgot your password? Submit a PATCH request with your new password "+
			"and passwordConfirm to:\n%s\n\n"+
			"If you didn't forget your password, please ignore this email.\n\n"+
			"The Tourbook Team", name, resetURL),
	}
}
