package wizard

import (
	"context"
	"strings"
	"testing"
	"time"

	"clarity_backend/internal/leads"
	"clarity_backend/platform/apperr"
	"clarity_backend/platform/logger"
)

const testBookingURL = "https://calendly.com/example/clarity-call"

type testSubmitter struct {
	err     error
	calls   int
	lastReq leads.CreateLeadRequest
	lastIP  string
}

func (s *testSubmitter) Submit(_ context.Context, req leads.CreateLeadRequest, remoteIP string) error {
	s.calls++
	s.lastReq = req
	s.lastIP = remoteIP
	return s.err
}

func newTestService(t *testing.T, submitter *testSubmitter) *Service {
	t.Helper()
	return NewService(NewMemoryStore(time.Hour), submitter, testBookingURL, logger.New("development"))
}

func sessionOnFinalStep(t *testing.T, svc *Service) *Session {
	t.Helper()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "/start", "newsletter", "email", "launch")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if _, err := svc.SetFields(ctx, session.ID, validAnswers()); err != nil {
		t.Fatalf("set fields: %v", err)
	}
	for i := FirstStep; i < FinalStep; i++ {
		session, err = svc.Continue(ctx, session.ID)
		if err != nil {
			t.Fatalf("continue: %v", err)
		}
	}
	if session.Step != FinalStep {
		t.Fatalf("expected final step, got %d (%v)", session.Step, session.FieldErrors)
	}
	return session
}

func TestCreateSession_DefaultsPage(t *testing.T) {
	svc := newTestService(t, &testSubmitter{})

	session, err := svc.CreateSession(context.Background(), "  ", "", "", "")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if session.Page != defaultPage {
		t.Fatalf("expected page %q, got %q", defaultPage, session.Page)
	}
	if session.Step != FirstStep {
		t.Fatalf("expected step %d, got %d", FirstStep, session.Step)
	}
}

func TestGetSession_Unknown(t *testing.T) {
	svc := newTestService(t, &testSubmitter{})

	_, err := svc.GetSession(context.Background(), "nope")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestVerify_OnlyOnFinalStep(t *testing.T) {
	svc := newTestService(t, &testSubmitter{})
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "/start", "", "", "")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	_, err = svc.Verify(ctx, session.ID, "tok")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error on step 1, got %v", err)
	}
}

func TestSubmit_RequiresFinalStep(t *testing.T) {
	svc := newTestService(t, &testSubmitter{})
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "/start", "", "", "")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	_, _, err = svc.Submit(ctx, session.ID, leads.IntentBook, "1.2.3.4")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmit_BookReturnsBookingURL(t *testing.T) {
	submitter := &testSubmitter{}
	svc := newTestService(t, submitter)
	ctx := context.Background()

	session := sessionOnFinalStep(t, svc)
	if _, err := svc.Verify(ctx, session.ID, "challenge-token"); err != nil {
		t.Fatalf("verify: %v", err)
	}

	_, result, err := svc.Submit(ctx, session.ID, leads.IntentBook, "1.2.3.4")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.BookingURL != testBookingURL {
		t.Fatalf("expected booking url %q, got %q", testBookingURL, result.BookingURL)
	}
	if submitter.calls != 1 {
		t.Fatalf("expected one submission, got %d", submitter.calls)
	}
	if submitter.lastReq.TurnstileToken != "challenge-token" {
		t.Fatalf("expected the verification token to be forwarded, got %q", submitter.lastReq.TurnstileToken)
	}
	if submitter.lastIP != "1.2.3.4" {
		t.Fatalf("expected the client ip to be forwarded, got %q", submitter.lastIP)
	}
	if !strings.Contains(submitter.lastReq.Message, "Recommendation: ") {
		t.Fatalf("expected the message to carry the recommendation, got %q", submitter.lastReq.Message)
	}
	if !strings.Contains(submitter.lastReq.Message, "CTA intent: book") {
		t.Fatalf("expected the message to carry the intent, got %q", submitter.lastReq.Message)
	}
	if submitter.lastReq.UTMCampaign != "launch" {
		t.Fatalf("expected utm campaign forwarded, got %q", submitter.lastReq.UTMCampaign)
	}
}

func TestSubmit_MaybeLaterResetsFlow(t *testing.T) {
	submitter := &testSubmitter{}
	svc := newTestService(t, submitter)
	ctx := context.Background()

	session := sessionOnFinalStep(t, svc)

	updated, result, err := svc.Submit(ctx, session.ID, leads.IntentMaybeLater, "1.2.3.4")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Status != statusFollowUp {
		t.Fatalf("expected status %q, got %q", statusFollowUp, result.Status)
	}
	if result.BookingURL != "" {
		t.Fatalf("expected no booking url, got %q", result.BookingURL)
	}
	if updated.Step != FirstStep {
		t.Fatalf("expected the flow reset to step %d, got %d", FirstStep, updated.Step)
	}
	if updated.Data.Email == "" {
		t.Fatal("expected entered data to survive the reset")
	}
	if submitter.lastReq.Intent != leads.IntentMaybeLater {
		t.Fatalf("expected intent %q, got %q", leads.IntentMaybeLater, submitter.lastReq.Intent)
	}
}

func TestSubmit_FailureKeepsDataAndSetsStatus(t *testing.T) {
	submitter := &testSubmitter{err: apperr.Forbidden("Failed human verification")}
	svc := newTestService(t, submitter)
	ctx := context.Background()

	session := sessionOnFinalStep(t, svc)

	_, _, err := svc.Submit(ctx, session.ID, leads.IntentBook, "1.2.3.4")
	if !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected the submitter error back, got %v", err)
	}

	saved, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if saved.Status != "Failed human verification" {
		t.Fatalf("expected the rejection as status, got %q", saved.Status)
	}
	if saved.Step != FinalStep {
		t.Fatalf("expected the flow to stay on the final step, got %d", saved.Step)
	}
	if saved.Data.FullName == "" {
		t.Fatal("expected entered data kept for correction")
	}
}

func TestSubmit_UnknownIntentCoercedToBook(t *testing.T) {
	submitter := &testSubmitter{}
	svc := newTestService(t, submitter)
	ctx := context.Background()

	session := sessionOnFinalStep(t, svc)

	_, result, err := svc.Submit(ctx, session.ID, "walk_in", "1.2.3.4")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if submitter.lastReq.Intent != leads.IntentBook {
		t.Fatalf("expected intent coerced to %q, got %q", leads.IntentBook, submitter.lastReq.Intent)
	}
	if result.BookingURL != testBookingURL {
		t.Fatalf("expected booking url, got %q", result.BookingURL)
	}
}
