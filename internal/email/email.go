// Package email sends score-report notifications over SMTP. Without SMTP
// configuration the service is a silent no-op so the scheduler can always
// call it.
package email

import (
	"bytes"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"

	"seoscope/internal/config"
)

// Service sends multipart plain+HTML mail through the configured relay.
type Service struct {
	cfg     *config.Config
	enabled bool
}

// NewService creates the mail service; it is enabled only when SMTP host
// and sender are configured.
func NewService(cfg *config.Config) *Service {
	s := &Service{cfg: cfg, enabled: cfg.IsEmailEnabled()}
	if s.enabled {
		slog.Info("report emails enabled", "smtp", fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort))
	} else {
		slog.Info("report emails disabled, SMTP not configured")
	}
	return s
}

// IsEnabled reports whether sends will actually go out.
func (s *Service) IsEnabled() bool {
	return s.enabled
}

// Send delivers a multipart/alternative message. A disabled service or an
// empty recipient list drops the message without error.
func (s *Service) Send(to []string, subject, htmlBody, textBody string) error {
	if !s.enabled || len(to) == 0 {
		return nil
	}

	msg, err := s.buildMessage(to, subject, htmlBody, textBody)
	if err != nil {
		return fmt.Errorf("build message: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" && s.cfg.SMTPPassword != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	return smtp.SendMail(addr, auth, s.cfg.SMTPFrom, to, msg)
}

// buildMessage assembles headers plus a multipart/alternative body, plain
// text part first so clients prefer the HTML one.
func (s *Service) buildMessage(to []string, subject, htmlBody, textBody string) ([]byte, error) {
	from := s.cfg.SMTPFrom
	if s.cfg.SMTPFromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.SMTPFromName, s.cfg.SMTPFrom)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	var headers bytes.Buffer
	fmt.Fprintf(&headers, "From: %s\r\n", from)
	fmt.Fprintf(&headers, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&headers, "Subject: %s\r\n", subject)
	headers.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&headers, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", mw.Boundary())

	parts := []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=\"UTF-8\"", textBody},
		{"text/html; charset=\"UTF-8\"", htmlBody},
	}
	for _, part := range parts {
		if part.content == "" {
			continue
		}
		w, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {part.contentType}})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	return append(headers.Bytes(), body.Bytes()...), nil
}
