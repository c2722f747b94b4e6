package leads

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateLeadRequest is the intake submission payload.
// The challenge token is accepted under several key names because the
// verification widget sends different ones depending on render mode.
type CreateLeadRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	BudgetRange string `json:"budget_range"`
	Message     string `json:"message"`
	Intent      string `json:"intent"`
	Page        string `json:"page"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`

	TurnstileToken      string `json:"turnstileToken"`
	CFTurnstileResponse string `json:"cf-turnstile-response"`
	TurnstileTokenAlt   string `json:"turnstile_token"`
}

// Normalize trims every string field in place.
func (r *CreateLeadRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Company = strings.TrimSpace(r.Company)
	r.BudgetRange = strings.TrimSpace(r.BudgetRange)
	r.Message = strings.TrimSpace(r.Message)
	r.Intent = strings.TrimSpace(r.Intent)
	r.Page = strings.TrimSpace(r.Page)
	r.UTMSource = strings.TrimSpace(r.UTMSource)
	r.UTMMedium = strings.TrimSpace(r.UTMMedium)
	r.UTMCampaign = strings.TrimSpace(r.UTMCampaign)
	r.TurnstileToken = strings.TrimSpace(r.TurnstileToken)
	r.CFTurnstileResponse = strings.TrimSpace(r.CFTurnstileResponse)
	r.TurnstileTokenAlt = strings.TrimSpace(r.TurnstileTokenAlt)
}

// Token returns the first non-empty challenge token variant.
func (r CreateLeadRequest) Token() string {
	for _, token := range []string{r.TurnstileToken, r.CFTurnstileResponse, r.TurnstileTokenAlt} {
		if token != "" {
			return token
		}
	}
	return ""
}

// IntentOrDefault returns the declared intent, defaulting to "book".
func (r CreateLeadRequest) IntentOrDefault() string {
	if r.Intent == IntentMaybeLater {
		return IntentMaybeLater
	}
	return IntentBook
}

// requiredFields mirrors the mandatory subset of the submission for
// tag-driven validation. Any failure maps to one client-facing message.
type requiredFields struct {
	FullName    string `validate:"required"`
	Email       string `validate:"required"`
	Company     string `validate:"required"`
	BudgetRange string `validate:"required"`
	Message     string `validate:"required"`
}

// LeadResponse is the admin listing representation of a stored lead.
type LeadResponse struct {
	ID                 uuid.UUID  `json:"id"`
	FullName           string     `json:"fullName"`
	Email              string     `json:"email"`
	Company            string     `json:"company"`
	BudgetRange        string     `json:"budgetRange"`
	Message            string     `json:"message"`
	Intent             string     `json:"intent"`
	Page               *string    `json:"page,omitempty"`
	UTMSource          *string    `json:"utmSource,omitempty"`
	UTMMedium          *string    `json:"utmMedium,omitempty"`
	UTMCampaign        *string    `json:"utmCampaign,omitempty"`
	BookingStatus      *string    `json:"bookingStatus,omitempty"`
	BookedAt           *time.Time `json:"bookedAt,omitempty"`
	CalendlyEventStart *time.Time `json:"calendlyEventStart,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func toLeadResponse(lead Lead) LeadResponse {
	resp := LeadResponse{
		ID:                 lead.ID,
		FullName:           lead.FullName,
		Email:              lead.Email,
		Company:            lead.Company,
		BudgetRange:        lead.BudgetRange,
		Message:            lead.Message,
		Intent:             lead.Intent,
		Page:               lead.Page,
		UTMSource:          lead.UTMSource,
		UTMMedium:          lead.UTMMedium,
		UTMCampaign:        lead.UTMCampaign,
		BookedAt:           lead.BookedAt,
		CalendlyEventStart: lead.CalendlyEventStart,
		CreatedAt:          lead.CreatedAt,
	}
	if lead.BookingStatus != nil {
		status := string(*lead.BookingStatus)
		resp.BookingStatus = &status
	}
	return resp
}
