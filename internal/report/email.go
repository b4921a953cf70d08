package report

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"fleetkeeper/internal/config"
	"fleetkeeper/internal/fleet"
)

// ComposeDigest renders the current alert list as a plain-text weekly
// report. Alerts arrive already ordered by the aggregator, so the digest
// preserves that ordering.
func ComposeDigest(alerts []fleet.Notification, now time.Time) (subject, body string) {
	subject = fmt.Sprintf("Fleet weekly report — %s", now.Format("Jan 2, 2006"))

	var b strings.Builder
	fmt.Fprintf(&b, "Fleet status as of %s\n\n", now.Format(time.RFC1123))

	if len(alerts) == 0 {
		b.WriteString("No outstanding alerts. All vehicles are within their service intervals and check-in cadence.\n")
		return subject, b.String()
	}

	fmt.Fprintf(&b, "%d outstanding alert(s):\n\n", len(alerts))
	for _, a := range alerts {
		fmt.Fprintf(&b, "  [%s] %s — %s\n", strings.ToUpper(string(a.Priority)), a.Title, a.Description)
	}
	return subject, b.String()
}

// SendDigest delivers the report over SMTP. Multiple recipients are
// comma-separated in cfg.To.
func SendDigest(cfg config.SMTPConfig, subject, body string) error {
	if cfg.Host == "" || cfg.From == "" || cfg.To == "" {
		return fmt.Errorf("smtp is not configured")
	}

	recipients := strings.Split(cfg.To, ",")
	for i := range recipients {
		recipients[i] = strings.TrimSpace(recipients[i])
	}

	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	return smtp.SendMail(addr, auth, cfg.From, recipients, formatMessage(cfg.From, recipients, subject, body))
}

// formatMessage assembles the RFC 5322 message. Headers are written in a
// fixed order so identical digests produce identical bytes.
func formatMessage(from string, recipients []string, subject, body string) []byte {
	headers := []struct{ key, value string }{
		{"From", from},
		{"To", strings.Join(recipients, ", ")},
		{"Subject", subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/plain; charset=UTF-8"},
	}

	var msg strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&msg, "%s: %s\r\n", h.key, h.value)
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)
	return []byte(msg.String())
}
