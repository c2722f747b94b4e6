package booking

// WebhookEnvelope is the scheduling provider's callback shape:
// {event: string, payload: {invitee: {email, uri}, event: {uri, start_time}}}.
type WebhookEnvelope struct {
	Event   string         `json:"event"`
	Payload WebhookPayload `json:"payload"`
}

// WebhookPayload carries the invitee and event references.
type WebhookPayload struct {
	Invitee InviteeDetails `json:"invitee"`
	Event   EventDetails   `json:"event"`
}

// InviteeDetails identifies who booked. Email is the only correlation key.
type InviteeDetails struct {
	Email string `json:"email"`
	URI   string `json:"uri"`
}

// EventDetails references the scheduled event.
type EventDetails struct {
	URI       string `json:"uri"`
	StartTime string `json:"start_time"`
}
