package quote

// SystemType is the enhancement system applied to the natural nail.
type SystemType string

const (
	SystemAcrylic      SystemType = "Acrylic"
	SystemGelX         SystemType = "Gel-X"
	SystemHardGel      SystemType = "Hard Gel"
	SystemStructureGel SystemType = "Structure Gel"
)

type NailShape string

const (
	ShapeSquare    NailShape = "Square"
	ShapeCoffin    NailShape = "Coffin"
	ShapeStiletto  NailShape = "Stiletto"
	ShapeAlmond    NailShape = "Almond"
	ShapeDuck      NailShape = "Duck"
	ShapeSquoval   NailShape = "Squoval"
	ShapeBallerina NailShape = "Ballerina"
	ShapeLipstick  NailShape = "Lipstick"
)

type NailLength string

const (
	LengthShort  NailLength = "Short"
	LengthMedium NailLength = "Medium"
	LengthLong   NailLength = "Long"
	LengthXL     NailLength = "XL"
	LengthXXL    NailLength = "XXL"
)

type Finish string

const (
	FinishGlossy Finish = "Glossy"
	FinishMatte  Finish = "Matte"
)

type SpecialtyEffect string

const (
	SpecialtyNone   SpecialtyEffect = "None"
	SpecialtyChrome SpecialtyEffect = "Chrome"
	SpecialtyHolo   SpecialtyEffect = "Holo"
	SpecialtyCatEye SpecialtyEffect = "Cat Eye"
)

type ClassicDesign string

const (
	ClassicNone      ClassicDesign = "None"
	ClassicFrenchTip ClassicDesign = "French Tip"
	ClassicOmbre     ClassicDesign = "Ombre"
)

// ArtLevel is an ordinal complexity tier. The empty value means no art
// surcharge applies; it is the only "unset" allowed in a Selection.
type ArtLevel string

const (
	ArtNone   ArtLevel = ""
	ArtLevel1 ArtLevel = "Level 1"
	ArtLevel2 ArtLevel = "Level 2"
	ArtLevel3 ArtLevel = "Level 3"
	ArtLevel4 ArtLevel = "Level 4"
)

// artLevelOrder fixes the ordinal scale none < 1 < 2 < 3 < 4.
var artLevelOrder = []ArtLevel{ArtNone, ArtLevel1, ArtLevel2, ArtLevel3, ArtLevel4}

func artLevelRank(l ArtLevel) int {
	for i, v := range artLevelOrder {
		if v == l {
			return i
		}
	}
	return 0
}

// maxArtLevel keeps the upgrade-only contract: neither the detector floor
// nor the keyword candidate may downgrade the other.
func maxArtLevel(a, b ArtLevel) ArtLevel {
	if artLevelRank(b) > artLevelRank(a) {
		return b
	}
	return a
}

type BlingDensity string

const (
	BlingNone     BlingDensity = "None"
	BlingMinimal  BlingDensity = "Minimal"
	BlingModerate BlingDensity = "Moderate"
	BlingHeavy    BlingDensity = "Heavy"
)

type ForeignWork string

const (
	ForeignNone    ForeignWork = "None"
	ForeignFill    ForeignWork = "Foreign Fill"
	ForeignRemoval ForeignWork = "Foreign Removal"
)

type PedicureType string

const (
	PedicureNone       PedicureType = "None"
	PedicureClassic    PedicureType = "Classic"
	PedicureGel        PedicureType = "Gel"
	PedicureAcrylicToe PedicureType = "Acrylic Toe Set"
)

type BaseService struct {
	System SystemType `json:"system"`
	Shape  NailShape  `json:"shape"`
	Length NailLength `json:"length"`
	IsFill bool       `json:"is_fill"`
}

type AddOns struct {
	Finish          Finish          `json:"finish"`
	SpecialtyEffect SpecialtyEffect `json:"specialty_effect"`
	ClassicDesign   ClassicDesign   `json:"classic_design"`
}

type Art struct {
	Level ArtLevel `json:"level,omitempty"`
}

type Bling struct {
	Density        BlingDensity `json:"density"`
	XLCharmsCount  int          `json:"xl_charms_count"`
	PiercingsCount int          `json:"piercings_count"`
}

type Modifiers struct {
	ForeignWork  ForeignWork `json:"foreign_work"`
	RepairsCount int         `json:"repairs_count"`
	SoakOffOnly  bool        `json:"soak_off_only"`
}

type Pedicure struct {
	Type PedicureType `json:"type"`
	// ToeArtMatch is never inferred by the mapper; the configurator UI
	// flips it when the client wants matching toe art.
	ToeArtMatch bool `json:"toe_art_match"`
}

// ExtraItem is an ad-hoc line item (e.g. a recommended treatment).
type ExtraItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ServiceSelection is the canonical, fully-enumerated description of a
// requested nail service. Every enumerated field always holds a value from
// its closed set; only Art.Level may be unset.
type ServiceSelection struct {
	Base      BaseService `json:"base"`
	AddOns    AddOns      `json:"addons"`
	Art       Art         `json:"art"`
	Bling     Bling       `json:"bling"`
	Modifiers Modifiers   `json:"modifiers"`
	Pedicure  Pedicure    `json:"pedicure"`
	Extras    []ExtraItem `json:"extras,omitempty"`

	// EstimatedDuration is advisory, in minutes. It drives the hourly
	// pricing floor.
	EstimatedDuration float64 `json:"estimated_duration"`
}

// DefaultSelection is what the mapper returns when every signal source is
// absent: a safe starting point for manual correction.
func DefaultSelection() ServiceSelection {
	return ServiceSelection{
		Base: BaseService{
			System: SystemAcrylic,
			Shape:  ShapeCoffin,
			Length: LengthShort,
		},
		AddOns: AddOns{
			Finish:          FinishGlossy,
			SpecialtyEffect: SpecialtyNone,
			ClassicDesign:   ClassicNone,
		},
		Art:       Art{Level: ArtNone},
		Bling:     Bling{Density: BlingNone},
		Modifiers: Modifiers{ForeignWork: ForeignNone},
		Pedicure:  Pedicure{Type: PedicureNone},
	}
}
