package notification

import (
	"context"
	"testing"

	"clarity_backend/internal/leads"
	"clarity_backend/platform/events"
	"clarity_backend/platform/logger"

	"github.com/google/uuid"
)

type testSender struct {
	calls  int
	lastTo string
	last   LeadNotification
}

func (s *testSender) SendLeadNotification(_ context.Context, to string, lead LeadNotification) error {
	s.calls++
	s.lastTo = to
	s.last = lead
	return nil
}

type otherEvent struct{ events.BaseEvent }

func (otherEvent) EventName() string { return "other.event" }

func leadCreatedEvent() leads.LeadCreated {
	return leads.LeadCreated{
		BaseEvent:   events.NewBaseEvent(),
		LeadID:      uuid.New(),
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		Company:     "Analytical Engines",
		BudgetRange: leads.BudgetSerious,
		Intent:      leads.IntentBook,
	}
}

func TestHandleLeadCreated_SendsToInbox(t *testing.T) {
	sender := &testSender{}
	module := &Module{
		sender:  sender,
		inbox:   "team@example.com",
		enabled: true,
		log:     logger.New("development"),
	}

	if err := module.handleLeadCreated(context.Background(), leadCreatedEvent()); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if sender.calls != 1 {
		t.Fatalf("expected one notification, got %d", sender.calls)
	}
	if sender.lastTo != "team@example.com" {
		t.Fatalf("expected the team inbox, got %q", sender.lastTo)
	}
	if sender.last.FullName != "Ada Lovelace" || sender.last.Intent != leads.IntentBook {
		t.Fatalf("unexpected notification payload: %+v", sender.last)
	}
}

func TestHandleLeadCreated_DisabledModuleIsInert(t *testing.T) {
	sender := &testSender{}
	module := &Module{
		sender:  sender,
		inbox:   "team@example.com",
		enabled: false,
		log:     logger.New("development"),
	}

	if err := module.handleLeadCreated(context.Background(), leadCreatedEvent()); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if sender.calls != 0 {
		t.Fatalf("expected no notification when disabled, got %d", sender.calls)
	}
}

func TestHandleLeadCreated_IgnoresOtherEvents(t *testing.T) {
	sender := &testSender{}
	module := &Module{
		sender:  sender,
		inbox:   "team@example.com",
		enabled: true,
		log:     logger.New("development"),
	}

	if err := module.handleLeadCreated(context.Background(), otherEvent{BaseEvent: events.NewBaseEvent()}); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if sender.calls != 0 {
		t.Fatalf("expected no notification for a foreign event, got %d", sender.calls)
	}
}
