package quote

// Detection is one labeled bounding box from the object detector.
// Box is [x1, y1, x2, y2] in pixels with x2 > x1 and y2 > y1.
type Detection struct {
	Label      string    `json:"label"`
	Box        []float64 `json:"box"`
	Confidence float64   `json:"conf,omitempty"`
}

func (d Detection) area() float64 {
	if len(d.Box) < 4 {
		return 0
	}
	return (d.Box[2] - d.Box[0]) * (d.Box[3] - d.Box[1])
}

// VisionDescription is the structured guess the vision-language describer
// extracts from an inspiration photo. Every field is free text and may be
// empty or noisy; the mapper treats absences as "no signal".
type VisionDescription struct {
	Shape                string   `json:"shape"`
	System               string   `json:"system"`
	Vibe                 string   `json:"vibe"`
	ArtNotes             string   `json:"art_notes"`
	EstimatedLength      string   `json:"estimated_length"`
	EstimatedTimeMinutes float64  `json:"estimated_time_minutes"`
	ForeignWork          string   `json:"foreign_work"`
	ReasoningSteps       []string `json:"reasoning_steps"`

	// Diagnostics variant fields (nail-health analysis).
	Conditions          []string `json:"conditions,omitempty"`
	RecommendedServices []string `json:"recommended_services,omitempty"`
	RepairsNeeded       int      `json:"repairs_needed,omitempty"`
	GrowthWeeks         float64  `json:"growth_weeks,omitempty"`
}

// CaptionHints carries the dense caption emitted by the detector service,
// used only as a fallback when the describer is silent on an attribute.
type CaptionHints struct {
	Dense string `json:"dense"`
}
