package quote

import "strings"

// Map reduces whatever signals are available to a fully-populated
// ServiceSelection. It never fails: absent or malformed inputs degrade to
// the defaults attribute by attribute, so an all-empty call still returns
// a usable Selection for manual correction.
//
// Precedence per attribute is fixed: describer text beats the detector's
// geometry, which beats the caption fallback, which beats the default.
func Map(detections []Detection, nailPlateBox []float64, vision *VisionDescription, captions *CaptionHints) ServiceSelection {
	sel := DefaultSelection()

	blob := signalBlob(vision, captions)

	sel.Base.Length = resolveLength(vision, nailPlateBox)
	sel.Base.Shape = resolveShape(vision, captions)
	sel.Base.System = resolveSystem(vision)

	sel.AddOns.Finish = resolveFinish(blob)
	sel.AddOns.SpecialtyEffect = resolveSpecialty(blob)
	sel.AddOns.ClassicDesign = resolveClassicDesign(blob)

	charms := countCharms(detections, blob)
	gems := filterGems(detections)

	sel.Bling.XLCharmsCount = charms
	sel.Bling.Density = resolveBlingDensity(gems, nailPlateBox, blob)

	sel.Art.Level = resolveArtLevel(detections, len(gems)+charms, blob)

	sel.Pedicure.Type = resolvePedicure(blob, sel.Art.Level, sel.Bling.Density)

	if vision != nil {
		fw := strings.ToLower(vision.ForeignWork)
		switch {
		case strings.Contains(fw, "removal"):
			sel.Modifiers.ForeignWork = ForeignRemoval
		case strings.Contains(fw, "fill"):
			sel.Modifiers.ForeignWork = ForeignFill
		}
		if vision.RepairsNeeded > 0 {
			sel.Modifiers.RepairsCount = vision.RepairsNeeded
		}
		if vision.GrowthWeeks >= 2 {
			sel.Base.IsFill = true
		}
		sel.Extras = resolveExtras(vision.RecommendedServices)
		sel.EstimatedDuration = vision.EstimatedTimeMinutes
	}

	if floor, ok := artDurationFloors[sel.Art.Level]; ok && sel.EstimatedDuration < floor {
		sel.EstimatedDuration = floor
	}

	return sel
}

// signalBlob concatenates every free-text source into one lowercase
// haystack for the attribute resolvers that do not care where a keyword
// came from.
func signalBlob(vision *VisionDescription, captions *CaptionHints) string {
	var parts [3]string
	if vision != nil {
		parts[0] = vision.ArtNotes
		parts[2] = vision.Vibe
	}
	if captions != nil {
		parts[1] = captions.Dense
	}
	return strings.ToLower(parts[0] + " " + parts[1] + " " + parts[2])
}

func resolveLength(vision *VisionDescription, nailPlateBox []float64) NailLength {
	if vision != nil && vision.EstimatedLength != "" {
		if l, ok := matchLength(strings.ToLower(vision.EstimatedLength)); ok {
			return l
		}
	}

	if len(nailPlateBox) == 4 {
		width := nailPlateBox[2] - nailPlateBox[0]
		height := nailPlateBox[3] - nailPlateBox[1]
		if width > 0 {
			ratio := height / width
			switch {
			case ratio < 1.1:
				return LengthShort
			case ratio < 1.5:
				return LengthMedium
			case ratio < 2.0:
				return LengthLong
			case ratio < 2.5:
				return LengthXL
			default:
				return LengthXXL
			}
		}
	}

	return LengthShort
}

func resolveShape(vision *VisionDescription, captions *CaptionHints) NailShape {
	if vision != nil {
		shape := ShapeCoffin
		if s, ok := matchShape(strings.ToLower(vision.Shape), shapeRules); ok {
			shape = s
		}
		// Second pass: the reasoning steps often reveal a flared
		// silhouette the shape field mislabeled.
		for _, step := range vision.ReasoningSteps {
			if containsAny(strings.ToLower(step), duckOverrideKeywords) {
				return ShapeDuck
			}
		}
		return shape
	}

	if captions != nil {
		if s, ok := matchShape(strings.ToLower(captions.Dense), captionShapeRules); ok {
			return s
		}
	}

	return ShapeCoffin
}

func resolveSystem(vision *VisionDescription) SystemType {
	if vision == nil {
		return SystemAcrylic
	}
	sys := strings.ToLower(vision.System)
	switch {
	case strings.Contains(sys, "soft") || strings.Contains(sys, "x"):
		return SystemGelX
	case strings.Contains(sys, "gel") && !strings.Contains(sys, "polish"):
		return SystemHardGel
	case strings.Contains(sys, "acrylic"):
		return SystemAcrylic
	}
	return SystemAcrylic
}

func resolveFinish(blob string) Finish {
	if containsAny(blob, matteKeywords) {
		return FinishMatte
	}
	return FinishGlossy
}

func resolveSpecialty(blob string) SpecialtyEffect {
	for _, r := range specialtyRules {
		if containsAny(blob, r.keywords) {
			return r.effect
		}
	}
	return SpecialtyNone
}

func resolveClassicDesign(blob string) ClassicDesign {
	// Ombre before French: "french ombre" sets are priced as ombre.
	if containsAny(blob, []string{"ombre", "gradient", "fading"}) {
		return ClassicOmbre
	}
	if strings.Contains(blob, "french tip") ||
		(strings.Contains(blob, "french") && !strings.Contains(blob, "solid")) {
		return ClassicFrenchTip
	}
	return ClassicNone
}

// countCharms counts charm detections, falling back to text heuristics
// when the detector saw none. The fallback guesses quantity from placement
// phrasing: all-nails coverage means roughly ten pieces, accent placement
// means two.
func countCharms(detections []Detection, blob string) int {
	count := 0
	for _, d := range detections {
		if charmLabels[strings.ToLower(d.Label)] {
			count++
		}
	}
	if count > 0 {
		return count
	}

	if !containsAny(blob, charmTextKeywords) {
		return 0
	}
	if containsAny(blob, allNailsKeywords) {
		return 10
	}
	if containsAny(blob, accentNailKeywords) {
		return 2
	}
	return 2
}

func filterGems(detections []Detection) []Detection {
	var gems []Detection
	for _, d := range detections {
		label := strings.ToLower(d.Label)
		if gemLabels[label] && !charmLabels[label] {
			gems = append(gems, d)
		}
	}
	return gems
}

// fallbackNailArea approximates the nail-plate area when the detector did
// not localize one, so coverage percentages stay finite.
const fallbackNailArea = 100000.0

func resolveBlingDensity(gems []Detection, nailPlateBox []float64, blob string) BlingDensity {
	if len(gems) == 0 {
		if containsAny(blob, blingTextKeywords) {
			if containsAny(blob, blingHeavyKeywords) {
				return BlingHeavy
			}
			return BlingModerate
		}
		return BlingNone
	}

	nailArea := fallbackNailArea
	if len(nailPlateBox) == 4 {
		nailArea = (nailPlateBox[2] - nailPlateBox[0]) * (nailPlateBox[3] - nailPlateBox[1])
	}

	var gemArea float64
	for _, g := range gems {
		gemArea += g.area()
	}

	pct := gemArea / nailArea * 100
	switch {
	case pct < 5:
		return BlingMinimal
	case pct < 20:
		return BlingModerate
	default:
		return BlingHeavy
	}
}

// resolveArtLevel combines two independent reads: a floor implied by what
// the detector physically found, and a candidate implied by the text blob.
// The two combine upgrade-only: detections never downgrade a
// keyword-implied level and vice versa.
func resolveArtLevel(detections []Detection, pieceCount int, blob string) ArtLevel {
	labels := make(map[string]bool, len(detections))
	for _, d := range detections {
		labels[strings.ToLower(d.Label)] = true
	}

	floor := ArtNone
	switch {
	case labels["encapsulated"] || pieceCount > 10:
		floor = ArtLevel4
	case labels["3d_art"] || labels["hand_painted"] || pieceCount > 5:
		floor = ArtLevel3
	case labels["french"] || labels["ombre"] || pieceCount > 2:
		floor = ArtLevel2
	case pieceCount > 0 || labels["sticker"]:
		floor = ArtLevel1
	}

	return maxArtLevel(floor, matchArtKeywords(blob))
}

func resolvePedicure(blob string, level ArtLevel, density BlingDensity) PedicureType {
	if !containsAny(blob, pedicureKeywords) {
		return PedicureNone
	}
	if level != ArtNone || density != BlingNone {
		return PedicureGel
	}
	return PedicureClassic
}

func resolveExtras(recommended []string) []ExtraItem {
	var extras []ExtraItem
	for _, svc := range recommended {
		lower := strings.ToLower(svc)
		for _, r := range extraRules {
			if containsAny(lower, r.keywords) {
				extras = append(extras, r.item)
				break
			}
		}
	}
	return extras
}
