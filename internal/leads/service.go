package leads

import (
	"context"

	"clarity_backend/internal/turnstile"
	"clarity_backend/platform/apperr"
	"clarity_backend/platform/config"
	"clarity_backend/platform/events"
	"clarity_backend/platform/logger"
	"clarity_backend/platform/validator"

	"github.com/google/uuid"
)

// Client-facing messages, kept identical to the site copy.
const (
	msgMissingFields     = "Missing required fields"
	msgVerifyRequired    = "Please verify you are human."
	msgVerifyFailed      = "Failed human verification"
	msgVerifyUnavailable = "Verification service unavailable"
)

// Store is the subset of the repository the intake service needs.
type Store interface {
	Insert(ctx context.Context, lead NewLead) (uuid.UUID, error)
	ListRecent(ctx context.Context, limit int) ([]Lead, error)
}

// Service implements the lead intake contract: re-validate required fields,
// gate on bot verification per policy, append one immutable row.
type Service struct {
	store    Store
	verifier turnstile.Verifier
	bus      events.Bus
	val      *validator.Validator
	policy   string
	log      *logger.Logger
}

// NewService creates a new intake service.
func NewService(store Store, verifier turnstile.Verifier, bus events.Bus, val *validator.Validator, cfg config.TurnstileConfig, log *logger.Logger) *Service {
	return &Service{
		store:    store,
		verifier: verifier,
		bus:      bus,
		val:      val,
		policy:   cfg.GetVerifyPolicy(),
		log:      log,
	}
}

// Submit processes one intake submission. Every failure mode is a typed
// apperr; nothing is retried here.
func (s *Service) Submit(ctx context.Context, req CreateLeadRequest, remoteIP string) error {
	req.Normalize()

	if err := s.val.Struct(requiredFields{
		FullName:    req.FullName,
		Email:       req.Email,
		Company:     req.Company,
		BudgetRange: req.BudgetRange,
		Message:     req.Message,
	}); err != nil {
		return apperr.Validation(msgMissingFields)
	}

	intent := req.IntentOrDefault()
	token := req.Token()

	if s.verificationRequired(intent) {
		if token == "" {
			return apperr.Validation(msgVerifyRequired)
		}
		verdict, err := s.verifier.Verify(ctx, token, remoteIP)
		if err != nil {
			return apperr.Wrap(apperr.KindInternal, msgVerifyUnavailable, err).WithOp("leads.Submit")
		}
		if !verdict.Success {
			s.log.VerificationFailed(remoteIP, verdict.ErrorCodes)
			return apperr.Forbidden(msgVerifyFailed).WithDetails(verdict.ErrorCodes)
		}
	}

	id, err := s.store.Insert(ctx, NewLead{
		FullName:    req.FullName,
		Email:       req.Email,
		Company:     req.Company,
		BudgetRange: req.BudgetRange,
		Message:     req.Message,
		Intent:      intent,
		Page:        req.Page,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
	})
	if err != nil {
		s.log.DatabaseError("leads.Insert", err)
		// Surface the store's error text, as the site did.
		return apperr.Wrap(apperr.KindInternal, err.Error(), err)
	}

	s.bus.Publish(ctx, LeadCreated{
		BaseEvent:   events.NewBaseEvent(),
		LeadID:      id,
		FullName:    req.FullName,
		Email:       req.Email,
		Company:     req.Company,
		BudgetRange: req.BudgetRange,
		Intent:      intent,
	})

	return nil
}

// ListRecent returns the newest leads for the admin listing.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]LeadResponse, error) {
	rows, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		s.log.DatabaseError("leads.ListRecent", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list leads", err)
	}
	result := make([]LeadResponse, len(rows))
	for i, lead := range rows {
		result[i] = toLeadResponse(lead)
	}
	return result, nil
}

func (s *Service) verificationRequired(intent string) bool {
	if s.policy == config.VerifyPolicyAlways {
		return true
	}
	return intent == IntentBook
}
