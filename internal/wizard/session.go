// Package wizard provides the multi-step intake wizard: a per-session step
// state machine, the field validation rules behind each step, and the
// deterministic service-package recommendation engine.
package wizard

import (
	"time"
)

// Step bounds. Step 6 is terminal for input: only verification and the
// submission actions fire from it.
const (
	FirstStep = 1
	FinalStep = 6
)

// Field names accepted by SetFields, matching the site's form field keys.
const (
	FieldFullName    = "fullName"
	FieldEmail       = "email"
	FieldCompany     = "company"
	FieldProductType = "productType"
	FieldStage       = "stage"
	FieldTimeline    = "timeline"
	FieldBudget      = "budget"
	FieldGoal        = "goal"
	FieldDetails     = "details"
)

// stepFields assigns fields to the step whose Continue guard validates them.
// Fields outside the current step are never (re)validated by the guard.
var stepFields = map[int][]string{
	1: {FieldFullName, FieldEmail, FieldCompany},
	2: {FieldProductType},
	3: {FieldStage, FieldTimeline, FieldBudget},
	4: {FieldGoal},
	5: {FieldDetails},
	6: {}, // gated by verification token presence instead
}

// Answers holds the collected contact and qualification values.
type Answers struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	ProductType string `json:"productType"`
	Stage       string `json:"stage"`
	Timeline    string `json:"timeline"`
	Budget      string `json:"budget"`
	Goal        string `json:"goal"`
	Details     string `json:"details"`
}

// Session is one visitor's wizard state. It is persisted between requests in
// a SessionStore; all transitions are driven by the single interacting user,
// so there is no concurrent mutation of one session.
type Session struct {
	ID   string  `json:"id"`
	Step int     `json:"step"`
	Data Answers `json:"data"`

	// FieldErrors holds the current per-field messages, keyed by field name.
	FieldErrors map[string]string `json:"fieldErrors"`
	// Status is the submission-status line shown near the action buttons.
	Status string `json:"status"`
	// VerificationToken is the bot-check token for the final step. It is
	// cleared on every entry into the final step: fresh verification is
	// required each time, even after going back and forth.
	VerificationToken string `json:"verificationToken"`

	// Submission context captured when the session starts.
	Page        string `json:"page"`
	UTMSource   string `json:"utmSource"`
	UTMMedium   string `json:"utmMedium"`
	UTMCampaign string `json:"utmCampaign"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSession creates a session at the first step.
func NewSession(id, page, utmSource, utmMedium, utmCampaign string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:          id,
		Step:        FirstStep,
		FieldErrors: make(map[string]string),
		Page:        page,
		UTMSource:   utmSource,
		UTMMedium:   utmMedium,
		UTMCampaign: utmCampaign,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SetFields merges field edits into the answers. Unknown field names are
// reported back; any edit clears the last submission-status message.
func (s *Session) SetFields(values map[string]string) []string {
	var unknown []string
	for name, value := range values {
		switch name {
		case FieldFullName:
			s.Data.FullName = value
		case FieldEmail:
			s.Data.Email = value
		case FieldCompany:
			s.Data.Company = value
		case FieldProductType:
			s.Data.ProductType = value
		case FieldStage:
			s.Data.Stage = value
		case FieldTimeline:
			s.Data.Timeline = value
		case FieldBudget:
			s.Data.Budget = value
		case FieldGoal:
			s.Data.Goal = value
		case FieldDetails:
			s.Data.Details = value
		default:
			unknown = append(unknown, name)
			continue
		}
		s.Status = ""
	}
	return unknown
}

// Continue validates the current step's fields and advances on success.
// On any rule failure the step counter does not move and the failing fields'
// messages are set. Reports whether the step advanced.
func (s *Session) Continue() bool {
	s.Status = ""

	ok := true
	for _, field := range stepFields[s.Step] {
		msg := validateField(field, s.Data)
		if msg != "" {
			ok = false
			s.FieldErrors[field] = msg
		} else {
			delete(s.FieldErrors, field)
		}
	}
	if !ok || s.Step >= FinalStep {
		return false
	}

	s.Step++
	if s.Step == FinalStep {
		s.enterFinalStep()
	}
	return true
}

// Back moves one step back, clamped to the first step.
func (s *Session) Back() {
	s.Status = ""
	if s.Step > FirstStep {
		s.Step--
	}
}

// Verified reports whether the session currently holds a challenge token.
func (s *Session) Verified() bool {
	return s.VerificationToken != ""
}

// ProgressPct is the rounded completion percentage shown over the step bar.
func (s *Session) ProgressPct() int {
	return (s.Step*100 + FinalStep/2) / FinalStep
}

// Recommendation evaluates the rule cascade for the current answers.
// Pure function of the answers: navigating back and forth never changes the
// result for unchanged input.
func (s *Session) Recommendation() Recommendation {
	return Recommend(s.Data)
}

// resetAfterSubmit returns the flow to the first step after a completed
// "follow up later" submission, keeping the entered data.
func (s *Session) resetAfterSubmit() {
	s.Step = FirstStep
	s.FieldErrors = make(map[string]string)
	s.VerificationToken = ""
}

func (s *Session) enterFinalStep() {
	s.VerificationToken = ""
	s.Status = ""
}
