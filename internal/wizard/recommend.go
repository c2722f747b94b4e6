package wizard

import (
	"clarity_backend/internal/leads"
)

// Recommendation titles. Tests and the stored message reference these.
const (
	TitleClaritySprint = "Product Clarity Sprint"
	TitleBlueprint     = "MVP Blueprint (Prep for Build)"
	TitleBlueprintUI   = "MVP Blueprint + UI System"
	TitleBuildSprint   = "Build Sprint (MVP Delivery)"
)

// Recommendation is the suggested service package for one answer set.
type Recommendation struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Why         []string `json:"why"`
	Next        []string `json:"next"`
	ProductNote string   `json:"productNote,omitempty"`
}

// Recommend maps the qualification answers to a service package.
//
// The cascade is deterministic and order-sensitive: a stage rule picks the
// baseline, then two overrides apply unconditionally in fixed order. The
// low-budget override runs last, so it wins whenever both override
// predicates hold. Do not reorder.
func Recommend(data Answers) Recommendation {
	rec := stageBaseline(data.Stage)

	fast := data.Timeline == leads.TimelineASAP || data.Timeline == leads.TimelineOneToThree
	if data.Budget == leads.BudgetSerious && fast {
		rec = buildSprint()
	}
	if data.Budget == leads.BudgetExploring {
		rec = blueprint()
	}

	rec.ProductNote = productNote(data.ProductType)
	return rec
}

func stageBaseline(stage string) Recommendation {
	switch stage {
	case leads.StageIdea, leads.StagePrototype:
		return blueprintUI()
	case leads.StageLive:
		return buildSprint()
	default:
		return claritySprint()
	}
}

func claritySprint() Recommendation {
	return Recommendation{
		Title:    TitleClaritySprint,
		Subtitle: "A short call + a clear plan for the next 30 days.",
		Why: []string{
			"You’ll get a realistic next step based on budget + timeline",
			"We’ll cut scope creep by defining what matters first",
			"You leave with a plan your team can execute",
		},
		Next: []string{"15-min call", "Follow-up summary with next steps", "Optional roadmap + estimate"},
	}
}

func blueprint() Recommendation {
	return Recommendation{
		Title:    TitleBlueprint,
		Subtitle: "Best if you’re exploring or planning ahead and want clarity before spending.",
		Why: []string{
			"You’ll avoid overbuilding by choosing the smallest viable v1",
			"You’ll clarify scope + priorities before hiring/quoting",
			"You’ll know what to do next even if you wait to build",
		},
		Next: []string{"MVP outline", "Feature prioritization", "Next-step checklist"},
	}
}

func blueprintUI() Recommendation {
	return Recommendation{
		Title:    TitleBlueprintUI,
		Subtitle: "Best if you need something buildable—fast, structured, dev-ready.",
		Why: []string{
			"Define MVP scope (no fluff) + edge cases",
			"Map key flows end-to-end so behavior is predictable",
			"Design a clean UI system your devs can implement",
		},
		Next: []string{"MVP flow map + screen list", "UI components/system", "Dev-ready handoff + acceptance criteria"},
	}
}

func buildSprint() Recommendation {
	return Recommendation{
		Title:    TitleBuildSprint,
		Subtitle: "Best if you’re ready to move quickly and ship a real v1.",
		Why: []string{
			"You need momentum and a tight shipping plan",
			"We reduce scope creep by locking priority features",
			"We align design + build so delivery doesn’t stall",
		},
		Next: []string{"Sprint plan + milestones", "Delivery-ready scope", "Weekly check-ins (optional)"},
	}
}

// productNote is independent of the stage/budget/timeline rules: it depends
// solely on the product type.
func productNote(productType string) string {
	switch productType {
	case "Mobile App":
		return "Mobile UX patterns + onboarding matter most."
	case "Marketplace":
		return "Supply + demand flows need extra clarity."
	case "AI Product":
		return "We’ll define the human-in-the-loop + guardrails early."
	default:
		return ""
	}
}
