package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const subject = "Meeting Summary"

// Receipt is the opaque delivery confirmation handed back to the caller.
// The pipeline logs it but never interprets it.
type Receipt struct {
	MessageID string    `json:"message_id"`
	Accepted  []string  `json:"accepted"`
	SentAt    time.Time `json:"sent_at"`
}

// Service delivers rendered summaries as a single HTML email over SMTP.
type Service struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewService(host string, port int, username, password, from string) *Service {
	return &Service{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send wraps the summary fragment in the delivery template and sends one
// message addressed to all recipients together. Protocol-level acceptance is
// overall success; per-recipient rejection is not inspected. One attempt, no
// retry.
func (s *Service) Send(_ context.Context, summaryHTML string, recipients []string) (*Receipt, error) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), s.host)
	body := buildHTMLBody(summaryHTML)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMessage-ID: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.from,
		strings.Join(recipients, ", "),
		subject,
		messageID,
		body,
	)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	if err := smtp.SendMail(addr, auth, s.from, recipients, []byte(msg)); err != nil {
		return nil, fmt.Errorf("mailer: failed to send: %w", err)
	}

	return &Receipt{
		MessageID: messageID,
		Accepted:  recipients,
		SentAt:    time.Now(),
	}, nil
}

func buildHTMLBody(summaryHTML string) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html><html><head><style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 700px; margin: 0 auto; padding: 20px; color: #333; }
h1 { color: #1a1a2e; border-bottom: 2px solid #2563eb; padding-bottom: 10px; }
.summary { background: #f9fafb; border: 1px solid #e5e7eb; border-radius: 8px; padding: 15px; margin: 20px 0; }
.footer { color: #666; font-size: 0.9em; margin-top: 20px; }
</style></head><body>`)

	sb.WriteString("<h1>Meeting Summary</h1>")
	sb.WriteString("<p>Hello,</p>")
	sb.WriteString("<p>Please find the meeting summary below:</p>")
	sb.WriteString(`<div class="summary">`)
	sb.WriteString(summaryHTML)
	sb.WriteString("</div>")
	sb.WriteString(`<p class="footer">This summary was shared with you via AI Meeting Notes Summarizer.</p>`)
	sb.WriteString("</body></html>")

	return sb.String()
}
