package leads

import (
	"clarity_backend/platform/events"

	"github.com/google/uuid"
)

// EventLeadCreated is published after an intake submission is persisted.
const EventLeadCreated = "leads.created"

// LeadCreated notifies subscribers (e.g. the notification module) of a new lead.
type LeadCreated struct {
	events.BaseEvent
	LeadID      uuid.UUID
	FullName    string
	Email       string
	Company     string
	BudgetRange string
	Intent      string
}

// EventName returns the event identifier.
func (e LeadCreated) EventName() string { return EventLeadCreated }
