package menu

import "github.com/guhdnews/lacqr-sub000/internal/quote"

// PriceMenu is the tech-owned price list. Every enumerated service option
// maps to a surcharge or base amount. Lookups never fail: a missing entry
// prices at 0 (Go map zero values give the default-on-missing-key behavior
// uniformly), so an empty or partial menu is always safe.
type PriceMenu struct {
	BasePrices              map[quote.SystemType]float64      `json:"base_prices"`
	FillPrices              map[quote.SystemType]float64      `json:"fill_prices"`
	LengthSurcharges        map[quote.NailLength]float64      `json:"length_surcharges"`
	ShapeSurcharges         map[quote.NailShape]float64       `json:"shape_surcharges"`
	FinishSurcharges        map[quote.Finish]float64          `json:"finish_surcharges"`
	SpecialtySurcharges     map[quote.SpecialtyEffect]float64 `json:"specialty_surcharges"`
	ClassicDesignSurcharges map[quote.ClassicDesign]float64   `json:"classic_design_surcharges"`
	ArtLevelPrices          map[quote.ArtLevel]float64        `json:"art_level_prices"`
	BlingDensityPrices      map[quote.BlingDensity]float64    `json:"bling_density_prices"`
	ModifierSurcharges      map[quote.ForeignWork]float64     `json:"modifier_surcharges"`
	PedicurePrices          map[quote.PedicureType]float64    `json:"pedicure_prices"`

	UnitPrices UnitPrices `json:"unit_prices"`

	// Durations mirrors the pricing keys with per-item minutes; it feeds
	// the duration estimator only, never the price itself.
	Durations DurationMenu `json:"durations"`
}

// UnitPrices are per-piece rates for counted items.
type UnitPrices struct {
	XLCharms  float64 `json:"xl_charms"`
	Piercings float64 `json:"piercings"`
	Repairs   float64 `json:"repairs"`
	SoakOff   float64 `json:"soak_off"`
}

// DurationMenu holds advisory minutes per option, same shape as the price
// tables.
type DurationMenu struct {
	BaseMinutes         map[quote.SystemType]float64      `json:"base_minutes"`
	FillMinutes         map[quote.SystemType]float64      `json:"fill_minutes"`
	LengthMinutes       map[quote.NailLength]float64      `json:"length_minutes"`
	SpecialtyMinutes    map[quote.SpecialtyEffect]float64 `json:"specialty_minutes"`
	ClassicMinutes      map[quote.ClassicDesign]float64   `json:"classic_minutes"`
	ArtLevelMinutes     map[quote.ArtLevel]float64        `json:"art_level_minutes"`
	BlingDensityMinutes map[quote.BlingDensity]float64    `json:"bling_density_minutes"`
	PedicureMinutes     map[quote.PedicureType]float64    `json:"pedicure_minutes"`

	PerCharmMinutes    float64 `json:"per_charm_minutes"`
	PerPiercingMinutes float64 `json:"per_piercing_minutes"`
	PerRepairMinutes   float64 `json:"per_repair_minutes"`
	SoakOffMinutes     float64 `json:"soak_off_minutes"`
}
