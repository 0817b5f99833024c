package quote

import "strings"

// The keyword ladders below are product decisions. Ordering matters: each
// table is scanned top to bottom and the first matching rule wins, so more
// specific terms must stay above generic ones ("lipstick" before "square",
// "ombre" before "french").

type lengthRule struct {
	keywords []string
	length   NailLength
}

var lengthRules = []lengthRule{
	{[]string{"xxl", "extendo"}, LengthXXL},
	{[]string{"xl", "extra"}, LengthXL},
	{[]string{"long"}, LengthLong},
	{[]string{"medium"}, LengthMedium},
	{[]string{"short", "sport", "active"}, LengthShort},
}

type shapeRule struct {
	keywords []string
	// all lists keywords that must all be present (used for compound
	// matches like "square"+"round" -> Squoval).
	all   []string
	shape NailShape
}

var shapeRules = []shapeRule{
	{keywords: []string{"lipstick"}, shape: ShapeLipstick},
	{keywords: []string{"duck", "flare", "fan", "triangle"}, shape: ShapeDuck},
	{keywords: []string{"coffin", "tapered square"}, shape: ShapeCoffin},
	{keywords: []string{"stiletto", "pointed", "sharp"}, shape: ShapeStiletto},
	{keywords: []string{"ballerina"}, shape: ShapeBallerina},
	{keywords: []string{"almond"}, shape: ShapeAlmond},
	{keywords: []string{"squoval"}, all: []string{"square", "round"}, shape: ShapeSquoval},
	{keywords: []string{"square"}, shape: ShapeSquare},
}

// captionShapeRules is the reduced ladder applied to the dense caption when
// the describer gave nothing; captions are too noisy for the full set.
var captionShapeRules = []shapeRule{
	{keywords: []string{"lipstick"}, shape: ShapeLipstick},
	{keywords: []string{"duck"}, shape: ShapeDuck},
	{keywords: []string{"stiletto"}, shape: ShapeStiletto},
	{keywords: []string{"ballerina"}, shape: ShapeBallerina},
	{keywords: []string{"almond"}, shape: ShapeAlmond},
	{keywords: []string{"square"}, shape: ShapeSquare},
}

// duckOverrideKeywords force Duck when they appear in reasoning steps,
// regardless of what the shape field said. The describer systematically
// calls flared sets "square"; this second pass corrects that bias.
var duckOverrideKeywords = []string{
	"flare",
	"wider than cuticle",
	"wider at the tip",
	"fan out",
	"triangle shape",
}

var matteKeywords = []string{"matte", "velvet", "frosted", "no shine", "dull"}

type effectRule struct {
	keywords []string
	effect   SpecialtyEffect
}

var specialtyRules = []effectRule{
	{[]string{"cat eye", "magnetic", "velvet effect"}, SpecialtyCatEye},
	{[]string{"holo", "holographic", "rainbow"}, SpecialtyHolo},
	{[]string{"chrome", "metallic", "mirror"}, SpecialtyChrome},
}

// charmLabels and gemLabels are disjoint: a bow is a charm, never a gem.
var charmLabels = map[string]bool{
	"charm":     true,
	"bow":       true,
	"flower":    true,
	"butterfly": true,
	"heart":     true,
	"cross":     true,
}

var gemLabels = map[string]bool{
	"gem":   true,
	"stone": true,
	"pearl": true,
}

var blingTextKeywords = []string{"rhinestone", "gem", "crystal", "charm", "bling"}
var blingHeavyKeywords = []string{"heavy", "covered", "large", "cluster"}

var charmTextKeywords = []string{"3d", "charm", "bow", "large gem"}
var allNailsKeywords = []string{"each", "every", "all nails"}
var accentNailKeywords = []string{"ring finger", "accent nail", "two nails"}

type artKeywordRule struct {
	keywords []string
	// all must also be present (Level 4 needs "intricate" plus a
	// supporting term).
	all   []string
	level ArtLevel
}

var artKeywordRules = []artKeywordRule{
	{keywords: []string{"pattern", "detailed", "character", "portrait"}, all: []string{"intricate"}, level: ArtLevel4},
	{keywords: []string{"complex", "3d", "encapsulated", "airbrush", "blooming", "detailed"}, level: ArtLevel3},
	{keywords: []string{"french", "ombre", "chrome", "cat eye", "glitter", "sparkle", "decorated", "design", "swirls", "checkered"}, level: ArtLevel2},
	{keywords: []string{"simple", "sticker", "minimal"}, level: ArtLevel1},
}

var pedicureKeywords = []string{"toe", "feet", "pedicure", "sandal"}

// extraRule maps a recommended-service phrase to an ad-hoc line item.
// Extension point: new treatments get a row here.
type extraRule struct {
	keywords []string
	item     ExtraItem
}

var extraRules = []extraRule{
	{[]string{"oil", "treatment"}, ExtraItem{Name: "Oil Treatment", Price: 5}},
}

// artDurationFloors raises the estimated duration to the minimum time a
// set at that art level realistically takes.
var artDurationFloors = map[ArtLevel]float64{
	ArtLevel4: 150,
	ArtLevel3: 120,
	ArtLevel2: 90,
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func containsAll(s string, keywords []string) bool {
	for _, k := range keywords {
		if !strings.Contains(s, k) {
			return false
		}
	}
	return true
}

func matchShape(text string, rules []shapeRule) (NailShape, bool) {
	for _, r := range rules {
		if containsAny(text, r.keywords) {
			return r.shape, true
		}
		if len(r.all) > 0 && containsAll(text, r.all) {
			return r.shape, true
		}
	}
	return "", false
}

func matchLength(text string) (NailLength, bool) {
	for _, r := range lengthRules {
		if containsAny(text, r.keywords) {
			return r.length, true
		}
	}
	return "", false
}

func matchArtKeywords(text string) ArtLevel {
	for _, r := range artKeywordRules {
		if containsAny(text, r.keywords) && containsAll(text, r.all) {
			return r.level
		}
	}
	return ArtNone
}
