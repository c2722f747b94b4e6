// Package notification emails the team inbox when a new lead arrives.
// Delivery failures are logged and never surfaced to the submitter.
package notification

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// LeadNotification carries the fields included in the team email.
type LeadNotification struct {
	FullName    string
	Email       string
	Company     string
	BudgetRange string
	Intent      string
}

// Sender delivers one lead notification. Satisfied by *SMTPSender.
type Sender interface {
	SendLeadNotification(ctx context.Context, to string, lead LeadNotification) error
}

// SMTPSender delivers notifications over a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendLeadNotification emails one new-lead summary to the team inbox.
func (s *SMTPSender) SendLeadNotification(ctx context.Context, to string, lead LeadNotification) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(fmt.Sprintf("New lead: %s (%s)", lead.FullName, lead.Company))
	msg.SetBodyString(gomail.TypeTextPlain, renderLeadBody(lead))

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func renderLeadBody(lead LeadNotification) string {
	return fmt.Sprintf(
		"A new lead just came in.\n\nName: %s\nEmail: %s\nCompany: %s\nBudget: %s\nIntent: %s\n",
		lead.FullName, lead.Email, lead.Company, lead.BudgetRange, lead.Intent,
	)
}

var _ Sender = (*SMTPSender)(nil)
