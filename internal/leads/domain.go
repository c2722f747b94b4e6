// Package leads provides the lead intake bounded context: the persistent
// Lead entity, the qualification enums shared with the wizard, the pgx
// repository, and the intake service.
package leads

import (
	"time"

	"github.com/google/uuid"
)

// Submission intents. Anything else in a payload is coerced to IntentBook.
const (
	IntentBook       = "book"
	IntentMaybeLater = "maybe_later"
)

// Booking lifecycle statuses, written only by the webhook reconciler.
type BookingStatus string

const (
	BookingScheduled   BookingStatus = "scheduled"
	BookingCanceled    BookingStatus = "canceled"
	BookingRescheduled BookingStatus = "rescheduled"
)

// Qualification enums. The values are the exact option labels shown on the
// site; they travel verbatim through the wizard, the stored message, and the
// recommendation rules, so they must not be reworded here.
const (
	BudgetExploring = "Exploring ($0–$2k)"
	BudgetStarter   = "Starter ($2k–$7k)"
	BudgetGrowth    = "Growth ($7k–$20k)"
	BudgetSerious   = "Serious ($20k+)"

	TimelineASAP       = "ASAP"
	TimelineOneToThree = "1–3 months"
	TimelineThreeToSix = "3–6 months"
	TimelineSixPlus    = "6+ months"
	TimelineNotSure    = "Not sure"

	StageIdea      = "Idea → need a clear MVP"
	StagePrototype = "Prototype exists → need UX/UI + plan"
	StageBuilding  = "Already building → need design + build alignment"
	StageLive      = "Live product → need improvements + growth"
	StageNotSure   = "Not sure"
)

// ProductTypes are the closed options for what is being built.
var ProductTypes = []string{
	"Mobile App", "Website", "Web Platform", "SaaS Tool", "Marketplace", "AI Product", "Not sure yet",
}

// Stages are the closed options for project stage.
var Stages = []string{StageIdea, StagePrototype, StageBuilding, StageLive, StageNotSure}

// Timelines are the closed options for delivery timeline.
var Timelines = []string{TimelineASAP, TimelineOneToThree, TimelineThreeToSix, TimelineSixPlus, TimelineNotSure}

// Budgets are the closed options for budget range.
var Budgets = []string{BudgetExploring, BudgetStarter, BudgetGrowth, BudgetSerious}

// IsProductType reports whether value is a member of the product type enum.
func IsProductType(value string) bool { return contains(ProductTypes, value) }

// IsStage reports whether value is a member of the stage enum.
func IsStage(value string) bool { return contains(Stages, value) }

// IsTimeline reports whether value is a member of the timeline enum.
func IsTimeline(value string) bool { return contains(Timelines, value) }

// IsBudget reports whether value is a member of the budget enum.
func IsBudget(value string) bool { return contains(Budgets, value) }

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// Lead is the stored record of one prospective client's contact and
// qualification answers plus booking lifecycle status. Rows are append-only
// from the intake side; only the webhook reconciler mutates them.
type Lead struct {
	ID          uuid.UUID
	FullName    string
	Email       string
	Company     string
	BudgetRange string
	Message     string
	Intent      string

	Page        *string
	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string

	BookingStatus      *BookingStatus
	BookedAt           *time.Time
	CalendlyEventURI   *string
	CalendlyInviteeURI *string
	CalendlyEventStart *time.Time

	CreatedAt time.Time
}
