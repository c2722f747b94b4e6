package leads

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrLeadNotFound is returned when no lead matches a reconciliation lookup.
var ErrLeadNotFound = errors.New("lead not found")

const leadColumns = `
	id, full_name, email, company, budget_range, message, intent,
	page, utm_source, utm_medium, utm_campaign,
	booking_status, booked_at, calendly_event_uri, calendly_invitee_uri, calendly_event_start,
	created_at`

// Repository provides data access for leads.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new leads repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// NewLead carries the fields for one intake insert. Empty optional fields
// are stored as NULL.
type NewLead struct {
	FullName    string
	Email       string
	Company     string
	BudgetRange string
	Message     string
	Intent      string
	Page        string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
}

// Insert appends one immutable lead row. No upsert, no dedup: repeat
// submissions produce new rows and reconciliation picks the newest.
func (r *Repository) Insert(ctx context.Context, lead NewLead) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO leads (full_name, email, company, budget_range, message, intent,
			page, utm_source, utm_medium, utm_campaign)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''))
		RETURNING id
	`, lead.FullName, lead.Email, lead.Company, lead.BudgetRange, lead.Message, lead.Intent,
		lead.Page, lead.UTMSource, lead.UTMMedium, lead.UTMCampaign).Scan(&id)
	return id, err
}

// FindLatestByEmail returns the most recently created lead whose email
// matches case-insensitively. Emails are not unique-constrained, so newest
// by creation time is the tie-break. Returns ErrLeadNotFound on no match.
func (r *Repository) FindLatestByEmail(ctx context.Context, email string) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		WHERE lower(email) = lower($1)
		ORDER BY created_at DESC
		LIMIT 1
	`, email).Scan(
		&lead.ID, &lead.FullName, &lead.Email, &lead.Company, &lead.BudgetRange, &lead.Message, &lead.Intent,
		&lead.Page, &lead.UTMSource, &lead.UTMMedium, &lead.UTMCampaign,
		&lead.BookingStatus, &lead.BookedAt, &lead.CalendlyEventURI, &lead.CalendlyInviteeURI, &lead.CalendlyEventStart,
		&lead.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrLeadNotFound
	}
	return lead, err
}

// BookingUpdate is the field-overwrite applied by one recognized webhook
// event. Nil BookedAt leaves the stored value untouched (cancellation does
// not erase booking history); EventStart is only written when SetEventStart
// is true, so a scheduled transition can explicitly store NULL.
type BookingUpdate struct {
	Status        BookingStatus
	EventURI      string
	InviteeURI    string
	BookedAt      *time.Time
	EventStart    *time.Time
	SetEventStart bool
}

// UpdateBooking applies one booking transition to the lead. Last write wins;
// there is deliberately no optimistic concurrency token here.
func (r *Repository) UpdateBooking(ctx context.Context, id uuid.UUID, update BookingUpdate) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE leads
		SET booking_status = $2,
			calendly_event_uri = NULLIF($3, ''),
			calendly_invitee_uri = NULLIF($4, ''),
			booked_at = COALESCE($5::timestamptz, booked_at),
			calendly_event_start = CASE WHEN $6 THEN $7::timestamptz ELSE calendly_event_start END
		WHERE id = $1
	`, id, string(update.Status), update.EventURI, update.InviteeURI,
		update.BookedAt, update.SetEventStart, update.EventStart)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLeadNotFound
	}
	return nil
}

// ListRecent returns the newest leads for the admin listing.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Lead, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Lead
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(
			&lead.ID, &lead.FullName, &lead.Email, &lead.Company, &lead.BudgetRange, &lead.Message, &lead.Intent,
			&lead.Page, &lead.UTMSource, &lead.UTMMedium, &lead.UTMCampaign,
			&lead.BookingStatus, &lead.BookedAt, &lead.CalendlyEventURI, &lead.CalendlyInviteeURI, &lead.CalendlyEventStart,
			&lead.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, lead)
	}
	return result, rows.Err()
}
