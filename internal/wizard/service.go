package wizard

import (
	"context"
	"errors"
	"strings"

	"clarity_backend/internal/leads"
	"clarity_backend/platform/apperr"
	"clarity_backend/platform/logger"

	"github.com/google/uuid"
)

// Client-facing messages for the wizard endpoints.
const (
	msgSessionNotFound   = "Session not found"
	msgNotOnFinalStep    = "Complete the previous steps first."
	msgVerifyOnFinalStep = "Verification is only available on the final step."
	msgSubmitFallback    = "Something went wrong."

	// statusFollowUp is shown after a completed "save details" submission.
	statusFollowUp = "No problem — we’ll follow up by email with next steps."

	defaultPage = "/start"
)

// LeadSubmitter accepts the finished wizard submission. Satisfied by the
// leads intake service, which owns required-field and bot-check enforcement.
type LeadSubmitter interface {
	Submit(ctx context.Context, req leads.CreateLeadRequest, remoteIP string) error
}

// SubmitResult is the outcome of a completed submission.
type SubmitResult struct {
	BookingURL string
	Status     string
}

// Service drives wizard sessions: load, apply one transition, save.
type Service struct {
	store      SessionStore
	submitter  LeadSubmitter
	bookingURL string
	log        *logger.Logger
}

// NewService creates a new wizard service.
func NewService(store SessionStore, submitter LeadSubmitter, bookingURL string, log *logger.Logger) *Service {
	return &Service{
		store:      store,
		submitter:  submitter,
		bookingURL: bookingURL,
		log:        log,
	}
}

// CreateSession starts a new flow at step 1, capturing submission context.
func (s *Service) CreateSession(ctx context.Context, page, utmSource, utmMedium, utmCampaign string) (*Session, error) {
	if strings.TrimSpace(page) == "" {
		page = defaultPage
	}
	session := NewSession(uuid.NewString(), page, utmSource, utmMedium, utmCampaign)
	if err := s.store.Save(ctx, session); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to save session", err)
	}
	return session, nil
}

// GetSession loads a session by id.
func (s *Service) GetSession(ctx context.Context, id string) (*Session, error) {
	return s.load(ctx, id)
}

// SetFields merges field edits and persists the session.
func (s *Service) SetFields(ctx context.Context, id string, values map[string]string) (*Session, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if unknown := session.SetFields(values); len(unknown) > 0 {
		return nil, apperr.Validation("unknown fields").WithDetails(unknown)
	}
	return session, s.save(ctx, session)
}

// Continue runs the current step's guard and advances on success. The
// session is saved either way so failed-field messages survive the request.
func (s *Service) Continue(ctx context.Context, id string) (*Session, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Continue()
	return session, s.save(ctx, session)
}

// Back moves one step back.
func (s *Service) Back(ctx context.Context, id string) (*Session, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Back()
	return session, s.save(ctx, session)
}

// Recommendation evaluates the rule cascade for the session's answers.
func (s *Service) Recommendation(ctx context.Context, id string) (Recommendation, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return Recommendation{}, err
	}
	return session.Recommendation(), nil
}

// Verify stores the challenge token. Only valid on the final step; the token
// never survives leaving it.
func (s *Service) Verify(ctx context.Context, id, token string) (*Session, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != FinalStep {
		return nil, apperr.Validation(msgVerifyOnFinalStep)
	}
	session.VerificationToken = strings.TrimSpace(token)
	return session, s.save(ctx, session)
}

// Submit finishes the flow with the given intent. The intake service owns
// validation and the bot-check gate; on failure the error message is kept as
// the session status and all entered data stays intact for correction.
func (s *Service) Submit(ctx context.Context, id, intent, remoteIP string) (*Session, SubmitResult, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, SubmitResult{}, err
	}
	if session.Step != FinalStep {
		return nil, SubmitResult{}, apperr.Validation(msgNotOnFinalStep)
	}
	if intent != leads.IntentMaybeLater {
		intent = leads.IntentBook
	}

	req := leads.CreateLeadRequest{
		FullName:       session.Data.FullName,
		Email:          session.Data.Email,
		Company:        session.Data.Company,
		BudgetRange:    session.Data.Budget,
		Message:        buildMessage(session.Data, session.Recommendation(), intent),
		Intent:         intent,
		Page:           session.Page,
		UTMSource:      session.UTMSource,
		UTMMedium:      session.UTMMedium,
		UTMCampaign:    session.UTMCampaign,
		TurnstileToken: session.VerificationToken,
	}

	if err := s.submitter.Submit(ctx, req, remoteIP); err != nil {
		session.Status = submitErrorMessage(err)
		if saveErr := s.save(ctx, session); saveErr != nil {
			s.log.Error("failed to save session after submit error", "sessionId", id, "error", saveErr)
		}
		return session, SubmitResult{}, err
	}

	result := SubmitResult{}
	if intent == leads.IntentBook {
		result.BookingURL = s.bookingURL
	} else {
		session.Status = statusFollowUp
		session.resetAfterSubmit()
		result.Status = statusFollowUp
	}
	return session, result, s.save(ctx, session)
}

func (s *Service) load(ctx context.Context, id string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, apperr.NotFound(msgSessionNotFound)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load session", err)
	}
	return session, nil
}

func (s *Service) save(ctx context.Context, session *Session) error {
	if err := s.store.Save(ctx, session); err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to save session", err)
	}
	return nil
}

// buildMessage renders the stored free-text summary the same way the site
// did: qualification answers, the computed recommendation, and the CTA intent.
func buildMessage(data Answers, rec Recommendation, intent string) string {
	lines := []string{
		"Product type: " + orDash(data.ProductType),
		"Stage: " + orDash(data.Stage),
		"Timeline: " + orDash(data.Timeline),
		"Goal: " + orDash(data.Goal),
		"Details: " + orDash(data.Details),
		"Recommendation: " + rec.Title,
		"CTA intent: " + intent,
	}
	return strings.Join(lines, "\n")
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

func submitErrorMessage(err error) string {
	if ae, ok := err.(*apperr.Error); ok {
		return ae.Message
	}
	return msgSubmitFallback
}
