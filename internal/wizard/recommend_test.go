package wizard

import (
	"testing"

	"clarity_backend/internal/leads"
)

func TestRecommend_StageBaselines(t *testing.T) {
	cases := []struct {
		stage string
		want  string
	}{
		{leads.StageIdea, TitleBlueprintUI},
		{leads.StagePrototype, TitleBlueprintUI},
		{leads.StageBuilding, TitleClaritySprint},
		{leads.StageLive, TitleBuildSprint},
		{leads.StageNotSure, TitleClaritySprint},
		{"", TitleClaritySprint},
	}

	for _, tc := range cases {
		rec := Recommend(Answers{Stage: tc.stage})
		if rec.Title != tc.want {
			t.Fatalf("stage %q: expected %q, got %q", tc.stage, tc.want, rec.Title)
		}
	}
}

func TestRecommend_SeriousBudgetFastTimeline(t *testing.T) {
	for _, timeline := range []string{leads.TimelineASAP, leads.TimelineOneToThree} {
		rec := Recommend(Answers{
			Stage:    leads.StageIdea,
			Timeline: timeline,
			Budget:   leads.BudgetSerious,
		})
		if rec.Title != TitleBuildSprint {
			t.Fatalf("timeline %q: expected %q, got %q", timeline, TitleBuildSprint, rec.Title)
		}
	}
}

func TestRecommend_SeriousBudgetSlowTimelineKeepsBaseline(t *testing.T) {
	rec := Recommend(Answers{
		Stage:    leads.StageIdea,
		Timeline: leads.TimelineSixPlus,
		Budget:   leads.BudgetSerious,
	})
	if rec.Title != TitleBlueprintUI {
		t.Fatalf("expected %q, got %q", TitleBlueprintUI, rec.Title)
	}
}

func TestRecommend_ExploringBudgetWinsOverEverything(t *testing.T) {
	// The low-budget rule runs last in the cascade; no stage or timeline
	// combination may override it.
	for _, stage := range leads.Stages {
		for _, timeline := range leads.Timelines {
			rec := Recommend(Answers{
				Stage:    stage,
				Timeline: timeline,
				Budget:   leads.BudgetExploring,
			})
			if rec.Title != TitleBlueprint {
				t.Fatalf("stage %q timeline %q: expected %q, got %q", stage, timeline, TitleBlueprint, rec.Title)
			}
		}
	}
}

func TestRecommend_ProductNote(t *testing.T) {
	cases := []struct {
		productType string
		wantNote    bool
	}{
		{"Mobile App", true},
		{"Marketplace", true},
		{"AI Product", true},
		{"Website", false},
		{"SaaS Tool", false},
		{"", false},
	}

	for _, tc := range cases {
		rec := Recommend(Answers{Stage: leads.StageIdea, ProductType: tc.productType})
		if (rec.ProductNote != "") != tc.wantNote {
			t.Fatalf("product type %q: unexpected note %q", tc.productType, rec.ProductNote)
		}
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	answers := Answers{
		ProductType: "Marketplace",
		Stage:       leads.StageLive,
		Timeline:    leads.TimelineASAP,
		Budget:      leads.BudgetGrowth,
	}

	first := Recommend(answers)
	for i := 0; i < 10; i++ {
		again := Recommend(answers)
		if again.Title != first.Title || again.ProductNote != first.ProductNote {
			t.Fatalf("recommendation changed between evaluations: %+v vs %+v", first, again)
		}
	}
}
