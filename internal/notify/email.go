// Package notify sends outbound email, falling back to a log line when no
// mail server is configured so the calling workflow never fails on it.
package notify

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/ezbooks/ezbooks/internal/common"
)

type Mailer struct {
	cfg    common.SMTPConfig
	logger *slog.Logger

	// swapped in tests
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(cfg common.SMTPConfig, logger *slog.Logger) *Mailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mailer{cfg: cfg, logger: logger, send: smtp.SendMail}
}

// Send delivers a plain-text message. A missing SMTP configuration is not an
// error: the message is logged and dropped.
func (m *Mailer) Send(to, subject, body string) error {
	if m.cfg.Host == "" || m.cfg.From == "" {
		m.logger.Info("notify.email.skipped", "to", to, "subject", subject)
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	if err := m.send(addr, auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		m.logger.Error("notify.email.failed", "to", to, "subject", subject, "error", err)
		return err
	}
	m.logger.Info("notify.email.ok", "to", to, "subject", subject)
	return nil
}
