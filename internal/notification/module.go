package notification

import (
	"context"

	"clarity_backend/internal/leads"
	"clarity_backend/platform/config"
	"clarity_backend/platform/events"
	"clarity_backend/platform/logger"
)

// Module subscribes to domain events and sends team notifications.
// It is not HTTP-facing.
type Module struct {
	sender  Sender
	inbox   string
	enabled bool
	log     *logger.Logger
}

// New creates the notification module from the email configuration.
// When email is not configured the module stays registered but inert.
func New(cfg config.EmailConfig, log *logger.Logger) *Module {
	m := &Module{
		inbox:   cfg.GetLeadInboxAddress(),
		enabled: cfg.GetEmailEnabled(),
		log:     log,
	}
	if m.enabled {
		m.sender = NewSMTPSender(
			cfg.GetSMTPHost(), cfg.GetSMTPPort(),
			cfg.GetSMTPUsername(), cfg.GetSMTPPassword(),
			cfg.GetEmailFromAddress(), cfg.GetEmailFromName(),
		)
	} else {
		log.Warn("email not configured; lead notifications disabled")
	}
	return m
}

// RegisterHandlers subscribes the module to the event bus.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(leads.EventLeadCreated, events.HandlerFunc(m.handleLeadCreated))
}

func (m *Module) handleLeadCreated(ctx context.Context, event events.Event) error {
	if !m.enabled {
		return nil
	}
	created, ok := event.(leads.LeadCreated)
	if !ok {
		return nil
	}

	err := m.sender.SendLeadNotification(ctx, m.inbox, LeadNotification{
		FullName:    created.FullName,
		Email:       created.Email,
		Company:     created.Company,
		BudgetRange: created.BudgetRange,
		Intent:      created.Intent,
	})
	if err != nil {
		m.log.Error("failed to send lead notification", "leadId", created.LeadID, "error", err)
	}
	return err
}
