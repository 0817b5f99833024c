package vision

import (
	"testing"

	"github.com/guhdnews/lacqr-sub000/internal/quote"
)

func TestParseDescriptionStrictJSON(t *testing.T) {
	raw := `{
		"shape": "duck",
		"system": "gel-x",
		"vibe": "flared pink set with chrome",
		"art_notes": "chrome, 3d bows",
		"estimated_length": "xl",
		"estimated_time_minutes": 120,
		"foreign_work": "",
		"reasoning_steps": ["tips fan out", "soft gel apex"],
		"recommended_services": ["Cuticle Oil Treatment"],
		"repairs_needed": 1,
		"growth_weeks": 2.5
	}`

	desc, err := ParseDescription(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.Shape != "duck" {
		t.Fatalf("shape=%q, want duck", desc.Shape)
	}
	if desc.EstimatedTimeMinutes != 120 {
		t.Fatalf("minutes=%.0f, want 120", desc.EstimatedTimeMinutes)
	}
	if len(desc.ReasoningSteps) != 2 {
		t.Fatalf("reasoning steps=%d, want 2", len(desc.ReasoningSteps))
	}
	if desc.RepairsNeeded != 1 || desc.GrowthWeeks != 2.5 {
		t.Fatalf("diagnostics fields not parsed: %+v", desc)
	}
}

func TestParseDescriptionStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"shape\": \"almond\", \"system\": \"acrylic\"}\n```"

	desc, err := ParseDescription(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.Shape != "almond" {
		t.Fatalf("shape=%q, want almond", desc.Shape)
	}
}

func TestParseDescriptionRejectsNonJSON(t *testing.T) {
	if _, err := ParseDescription("The nails look great!"); err == nil {
		t.Fatalf("expected error for non-JSON output")
	}
}

func TestNailPlateBoxPicksLargest(t *testing.T) {
	r := &DetectResult{
		Objects: []quote.Detection{
			{Label: "nail_plate", Box: []float64{0, 0, 10, 10}},
			{Label: "nail_plate", Box: []float64{0, 0, 100, 180}},
			{Label: "gem", Box: []float64{0, 0, 500, 500}},
		},
	}

	box := r.NailPlateBox()
	if box == nil || box[2] != 100 || box[3] != 180 {
		t.Fatalf("box=%v, want the 100x180 nail plate", box)
	}

	adorn := r.AdornmentObjects()
	if len(adorn) != 1 || adorn[0].Label != "gem" {
		t.Fatalf("adornments=%v, want only the gem", adorn)
	}
}

func TestNailPlateBoxNilWhenAbsent(t *testing.T) {
	r := &DetectResult{Objects: []quote.Detection{{Label: "gem", Box: []float64{0, 0, 5, 5}}}}
	if r.NailPlateBox() != nil {
		t.Fatalf("expected nil nail-plate box")
	}
}
