package wizard

import (
	"testing"

	"clarity_backend/internal/leads"
)

func validAnswers() map[string]string {
	return map[string]string{
		FieldFullName:    "Ada Lovelace",
		FieldEmail:       "ada@example.com",
		FieldCompany:     "Analytical Engines",
		FieldProductType: "SaaS Tool",
		FieldStage:       leads.StageIdea,
		FieldTimeline:    leads.TimelineASAP,
		FieldBudget:      leads.BudgetSerious,
		FieldGoal:        "Validate the core workflow with ten design partners",
		FieldDetails:     "We have mockups and a waitlist but no production build yet.",
	}
}

func sessionAtStep(t *testing.T, step int) *Session {
	t.Helper()
	session := NewSession("test-session", "/start", "", "", "")
	if unknown := session.SetFields(validAnswers()); len(unknown) > 0 {
		t.Fatalf("unexpected unknown fields: %v", unknown)
	}
	for session.Step < step {
		if !session.Continue() {
			t.Fatalf("continue failed at step %d: %v", session.Step, session.FieldErrors)
		}
	}
	return session
}

func TestContinue_BlocksOnEmptyFirstStep(t *testing.T) {
	session := NewSession("s", "/start", "", "", "")

	if session.Continue() {
		t.Fatal("expected continue to fail with empty answers")
	}
	if session.Step != FirstStep {
		t.Fatalf("expected step to stay at %d, got %d", FirstStep, session.Step)
	}
	for _, field := range []string{FieldFullName, FieldEmail, FieldCompany} {
		if session.FieldErrors[field] == "" {
			t.Fatalf("expected a field error for %q", field)
		}
	}
}

func TestContinue_AdvancesAndClearsErrors(t *testing.T) {
	session := NewSession("s", "/start", "", "", "")
	session.Continue() // populate step-1 errors

	session.SetFields(validAnswers())
	if !session.Continue() {
		t.Fatalf("expected continue to succeed, errors: %v", session.FieldErrors)
	}
	if session.Step != 2 {
		t.Fatalf("expected step 2, got %d", session.Step)
	}
	if len(session.FieldErrors) != 0 {
		t.Fatalf("expected cleared field errors, got %v", session.FieldErrors)
	}
}

func TestContinue_OnlyValidatesCurrentStep(t *testing.T) {
	session := NewSession("s", "/start", "", "", "")
	session.SetFields(map[string]string{
		FieldFullName: "Ada Lovelace",
		FieldEmail:    "ada@example.com",
		FieldCompany:  "Analytical Engines",
		// step 2+ untouched and invalid
	})

	if !session.Continue() {
		t.Fatalf("expected step 1 to pass regardless of later steps, errors: %v", session.FieldErrors)
	}
	if session.Continue() {
		t.Fatal("expected step 2 to block on missing product type")
	}
	if session.FieldErrors[FieldProductType] == "" {
		t.Fatal("expected a product type error")
	}
}

func TestContinue_EmailRule(t *testing.T) {
	session := NewSession("s", "/start", "", "", "")
	session.SetFields(validAnswers())
	session.SetFields(map[string]string{FieldEmail: "not-an-email"})

	if session.Continue() {
		t.Fatal("expected continue to fail on a malformed email")
	}
	if got := session.FieldErrors[FieldEmail]; got != msgEmail {
		t.Fatalf("expected %q, got %q", msgEmail, got)
	}
}

func TestContinue_ClampsAtFinalStep(t *testing.T) {
	session := sessionAtStep(t, FinalStep)

	if session.Continue() {
		t.Fatal("expected no advance past the final step")
	}
	if session.Step != FinalStep {
		t.Fatalf("expected step %d, got %d", FinalStep, session.Step)
	}
}

func TestBack_ClampsAtFirstStep(t *testing.T) {
	session := NewSession("s", "/start", "", "", "")
	session.Back()
	if session.Step != FirstStep {
		t.Fatalf("expected step %d, got %d", FirstStep, session.Step)
	}
}

func TestEnteringFinalStepClearsVerification(t *testing.T) {
	session := sessionAtStep(t, FinalStep)
	session.VerificationToken = "token-from-last-visit"
	session.Status = "stale status"

	session.Back()
	if !session.Continue() {
		t.Fatalf("expected re-entry into the final step, errors: %v", session.FieldErrors)
	}
	if session.Verified() {
		t.Fatal("expected verification token cleared on final-step entry")
	}
	if session.Status != "" {
		t.Fatalf("expected status cleared, got %q", session.Status)
	}
}

func TestSetFields_ReportsUnknownNames(t *testing.T) {
	session := NewSession("s", "/start", "", "", "")
	unknown := session.SetFields(map[string]string{"favoriteColor": "teal"})
	if len(unknown) != 1 || unknown[0] != "favoriteColor" {
		t.Fatalf("expected one unknown field, got %v", unknown)
	}
}

func TestSetFields_ClearsStatus(t *testing.T) {
	session := NewSession("s", "/start", "", "", "")
	session.Status = "No problem — we’ll follow up by email with next steps."
	session.SetFields(map[string]string{FieldGoal: "Ship a lean v1 this quarter"})
	if session.Status != "" {
		t.Fatalf("expected status cleared by an edit, got %q", session.Status)
	}
}

func TestProgressPct(t *testing.T) {
	cases := []struct {
		step int
		want int
	}{
		{1, 17},
		{2, 33},
		{3, 50},
		{4, 67},
		{5, 83},
		{6, 100},
	}
	session := NewSession("s", "/start", "", "", "")
	for _, tc := range cases {
		session.Step = tc.step
		if got := session.ProgressPct(); got != tc.want {
			t.Fatalf("step %d: expected %d%%, got %d%%", tc.step, tc.want, got)
		}
	}
}

func TestBackAndForthKeepsAnswers(t *testing.T) {
	session := sessionAtStep(t, 4)
	before := session.Data

	session.Back()
	session.Back()
	if !session.Continue() || !session.Continue() {
		t.Fatalf("expected round trip to pass, errors: %v", session.FieldErrors)
	}
	if session.Data != before {
		t.Fatalf("expected answers unchanged, got %+v", session.Data)
	}
}
