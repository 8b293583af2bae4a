package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pankajneema/curiousdevs0.1/internal/config"
	"github.com/pankajneema/curiousdevs0.1/internal/models"
)

// Mailer sends operational mail to the agency inbox. With no credentials
// configured it logs what it would have sent and reports success, so local
// environments never need a mail account.
type Mailer struct {
	cfg config.SMTPConfig
	log zerolog.Logger
}

func NewMailer(cfg config.SMTPConfig, log zerolog.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

func (m *Mailer) send(to string, subject string, htmlBody string) error {
	if m.cfg.Email == "" || m.cfg.Password == "" {
		m.log.Info().
			Str("to", to).
			Str("subject", subject).
			Msg("smtp not configured, mail skipped")
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.Email)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Email, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.Email, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// LeadNotification alerts the agency inbox about a fresh inquiry.
func (m *Mailer) LeadNotification(lead models.Lead) error {
	subject := fmt.Sprintf("New Lead: %s", lead.Name)

	var body strings.Builder
	body.WriteString("<html><body><h2>New Lead Received</h2>")
	fmt.Fprintf(&body, "<p><strong>Name:</strong> %s</p>", lead.Name)
	fmt.Fprintf(&body, "<p><strong>Email:</strong> %s</p>", lead.Email)
	fmt.Fprintf(&body, "<p><strong>Mobile:</strong> %s</p>", lead.Mobile)
	fmt.Fprintf(&body, "<p><strong>Project:</strong> %s</p>", lead.Project)
	fmt.Fprintf(&body, "<p><strong>Project Type:</strong> %s</p>", lead.ProjectType)
	fmt.Fprintf(&body, "<p><strong>Project Details:</strong> %s</p>", lead.ProjectDetails)
	body.WriteString("<hr><p><em>Please contact this lead as soon as possible.</em></p></body></html>")

	return m.send(m.cfg.AdminEmail, subject, body.String())
}

// AdminDigest summarizes overdue bills and fresh leads for the agency inbox.
func (m *Mailer) AdminDigest(overdue []models.Bill, leads []models.Lead) error {
	if len(overdue) == 0 && len(leads) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Portal digest: %d overdue bills, %d new leads", len(overdue), len(leads))

	var body strings.Builder
	body.WriteString("<html><body><h2>Daily Portal Digest</h2>")

	if len(overdue) > 0 {
		body.WriteString("<h3>Overdue bills</h3><ul>")
		for _, bill := range overdue {
			fmt.Fprintf(&body, "<li>Bill %s — project %s — %.2f due %s</li>",
				bill.ID, bill.ProjectID, bill.Amount, bill.DueDate.Format("2006-01-02"))
		}
		body.WriteString("</ul>")
	}

	if len(leads) > 0 {
		body.WriteString("<h3>New leads (last 24h)</h3><ul>")
		for _, lead := range leads {
			fmt.Fprintf(&body, "<li>%s — %s — %s (%s)</li>",
				lead.Name, lead.Email, lead.Project, lead.ProjectType)
		}
		body.WriteString("</ul>")
	}

	body.WriteString("</body></html>")

	return m.send(m.cfg.AdminEmail, subject, body.String())
}
