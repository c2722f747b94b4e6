// Package booking provides the scheduling-webhook bounded context: it
// reconciles the provider's invitee events against stored leads by email
// and applies a flat booking-status overwrite.
package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"clarity_backend/internal/leads"
	"clarity_backend/platform/apperr"
	"clarity_backend/platform/logger"

	"github.com/google/uuid"
)

// Acknowledgement notes for the no-op outcomes. These are part of the
// external contract and must not be reworded.
const (
	noteNoInviteeEmail = "No invitee email; ignored"
	noteNoMatchingLead = "No matching lead found"
	noteEventIgnored   = "Event ignored"

	msgMissingEventType = "Missing event type"
)

// eventStatus maps the three recognized provider event types to booking
// statuses. Everything else is acknowledged and ignored.
var eventStatus = map[string]leads.BookingStatus{
	"invitee.created":     leads.BookingScheduled,
	"invitee.canceled":    leads.BookingCanceled,
	"invitee.rescheduled": leads.BookingRescheduled,
}

// LeadStore is the lead access the reconciler needs. Satisfied by *leads.Repository.
type LeadStore interface {
	FindLatestByEmail(ctx context.Context, email string) (leads.Lead, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, update leads.BookingUpdate) error
}

// Result is the acknowledgement for one processed event.
type Result struct {
	Note      string
	EventType string
	Applied   *leads.BookingStatus // non-nil when a transition was written
}

// Service reconciles webhook events against the lead store.
type Service struct {
	store LeadStore
	now   func() time.Time
	log   *logger.Logger
}

// NewService creates a new reconciliation service.
func NewService(store LeadStore, log *logger.Logger) *Service {
	return &Service{store: store, now: time.Now, log: log}
}

// Process applies at most one booking-status transition for the event.
// The target is the newest lead whose email matches the invitee email,
// case-insensitively and trimmed; no target or an unrecognized event type is
// an acknowledged no-op, never an error.
func (s *Service) Process(ctx context.Context, envelope WebhookEnvelope) (Result, error) {
	eventType := strings.TrimSpace(envelope.Event)
	if eventType == "" {
		return Result{}, apperr.Validation(msgMissingEventType)
	}

	email := strings.ToLower(strings.TrimSpace(envelope.Payload.Invitee.Email))
	if email == "" {
		s.log.WebhookEvent(eventType, "", "no_invitee_email")
		return Result{Note: noteNoInviteeEmail}, nil
	}

	status, recognized := eventStatus[eventType]
	if !recognized {
		s.log.WebhookEvent(eventType, email, "ignored")
		return Result{Note: noteEventIgnored, EventType: eventType}, nil
	}

	lead, err := s.store.FindLatestByEmail(ctx, email)
	if errors.Is(err, leads.ErrLeadNotFound) {
		s.log.WebhookEvent(eventType, email, "no_matching_lead")
		return Result{Note: noteNoMatchingLead}, nil
	}
	if err != nil {
		s.log.DatabaseError("booking.FindLatestByEmail", err)
		return Result{}, apperr.Wrap(apperr.KindInternal, err.Error(), err)
	}

	update := leads.BookingUpdate{
		Status:     status,
		EventURI:   strings.TrimSpace(envelope.Payload.Event.URI),
		InviteeURI: strings.TrimSpace(envelope.Payload.Invitee.URI),
	}
	if status == leads.BookingScheduled {
		bookedAt := s.now().UTC()
		update.BookedAt = &bookedAt
		update.SetEventStart = true
		update.EventStart = normalizeStartTime(envelope.Payload.Event.StartTime)
	}
	// A canceled event leaves booked_at and the stored start time untouched:
	// cancellation does not erase booking history.

	if err := s.store.UpdateBooking(ctx, lead.ID, update); err != nil {
		if errors.Is(err, leads.ErrLeadNotFound) {
			return Result{Note: noteNoMatchingLead}, nil
		}
		s.log.DatabaseError("booking.UpdateBooking", err)
		return Result{}, apperr.Wrap(apperr.KindInternal, err.Error(), err)
	}

	s.log.WebhookEvent(eventType, email, string(status))
	return Result{Applied: &status}, nil
}

// normalizeStartTime parses the provider's event start into a canonical UTC
// timestamp, or nil when absent or unparseable.
func normalizeStartTime(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	utc := parsed.UTC()
	return &utc
}
