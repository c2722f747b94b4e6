package wizard

// CreateSessionRequest starts a new wizard flow with submission context.
type CreateSessionRequest struct {
	Page        string `json:"page"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
}

// FieldsRequest merges field edits into the session.
type FieldsRequest struct {
	Fields map[string]string `json:"fields" validate:"required,min=1"`
}

// VerifyRequest submits the bot-check token from the final step.
type VerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

// SubmitRequest finishes the flow with one of the two submission actions.
type SubmitRequest struct {
	Intent string `json:"intent" validate:"omitempty,oneof=book maybe_later"`
}

// SessionResponse is the wizard state returned after every transition.
type SessionResponse struct {
	ID          string            `json:"id"`
	Step        int               `json:"step"`
	Steps       int               `json:"steps"`
	ProgressPct int               `json:"progressPct"`
	Data        Answers           `json:"data"`
	FieldErrors map[string]string `json:"fieldErrors"`
	Status      string            `json:"status,omitempty"`
	Verified    bool              `json:"verified"`
}

// SubmitResponse acknowledges a completed submission.
type SubmitResponse struct {
	OK         bool   `json:"ok"`
	BookingURL string `json:"bookingUrl,omitempty"`
	Status     string `json:"status,omitempty"`
}

func toSessionResponse(session *Session) SessionResponse {
	return SessionResponse{
		ID:          session.ID,
		Step:        session.Step,
		Steps:       FinalStep,
		ProgressPct: session.ProgressPct(),
		Data:        session.Data,
		FieldErrors: session.FieldErrors,
		Status:      session.Status,
		Verified:    session.Verified(),
	}
}
