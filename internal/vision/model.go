package vision

import (
	"strings"

	"github.com/guhdnews/lacqr-sub000/internal/quote"
)

// DetectResult is what the detector service returns for one image: labeled
// boxes plus a dense caption generated alongside them.
type DetectResult struct {
	Objects []quote.Detection `json:"objects"`
	Caption string            `json:"description"`
}

// nailPlateLabels are the detector classes that localize the nail itself.
var nailPlateLabels = map[string]bool{
	"nail":       true,
	"nail_plate": true,
}

// NailPlateBox picks the largest nail-plate detection, if any. The largest
// box is the most fully visible nail and gives the most reliable aspect
// ratio for length bucketing.
func (r *DetectResult) NailPlateBox() []float64 {
	if r == nil {
		return nil
	}
	var best []float64
	var bestArea float64
	for _, obj := range r.Objects {
		if !nailPlateLabels[strings.ToLower(obj.Label)] || len(obj.Box) != 4 {
			continue
		}
		area := (obj.Box[2] - obj.Box[0]) * (obj.Box[3] - obj.Box[1])
		if area > bestArea {
			bestArea = area
			best = obj.Box
		}
	}
	return best
}

// AdornmentObjects filters out the nail-plate boxes, leaving only the
// decorations the mapper cares about.
func (r *DetectResult) AdornmentObjects() []quote.Detection {
	if r == nil {
		return nil
	}
	var out []quote.Detection
	for _, obj := range r.Objects {
		if nailPlateLabels[strings.ToLower(obj.Label)] {
			continue
		}
		out = append(out, obj)
	}
	return out
}

// CaptionHints wraps the detector caption for the mapper's fallback path.
func (r *DetectResult) CaptionHints() *quote.CaptionHints {
	if r == nil || r.Caption == "" {
		return nil
	}
	return &quote.CaptionHints{Dense: r.Caption}
}
