package pricing

import (
	"math"

	"github.com/guhdnews/lacqr-sub000/internal/menu"
	"github.com/guhdnews/lacqr-sub000/internal/quote"
)

// HourlyRate is the minimum effective hourly rate enforced through the
// duration floor.
const HourlyRate = 45.0

// Breakdown itemizes the quote. Per-item values stay unrounded for
// display; only the total is rounded.
type Breakdown struct {
	Base                float64 `json:"base"`
	Length              float64 `json:"length"`
	Shape               float64 `json:"shape"`
	AddOns              float64 `json:"addons"`
	Art                 float64 `json:"art"`
	Bling               float64 `json:"bling"`
	Modifiers           float64 `json:"modifiers"`
	Pedicure            float64 `json:"pedicure"`
	Extras              float64 `json:"extras"`
	ComplexitySurcharge float64 `json:"complexity_surcharge"`
}

// PriceResult is the priced quote. Total is rounded up to the whole
// dollar; the breakdown keeps raw values.
type PriceResult struct {
	Total     float64   `json:"total"`
	Breakdown Breakdown `json:"breakdown"`
}

// Calculate prices a selection against a menu.
// PURE business logic (NO vision / NO storage). Total function: every
// lookup defaults to 0, so a partial or empty menu never fails.
func Calculate(sel quote.ServiceSelection, m menu.PriceMenu) PriceResult {
	var b Breakdown

	// 1. Base (full set vs fill)
	if sel.Base.IsFill {
		b.Base = m.FillPrices[sel.Base.System]
	} else {
		b.Base = m.BasePrices[sel.Base.System]
	}

	// 2. Length
	b.Length = m.LengthSurcharges[sel.Base.Length]

	// 3. Shape
	b.Shape = m.ShapeSurcharges[sel.Base.Shape]

	// 4. Global add-ons (single bucket)
	b.AddOns = m.FinishSurcharges[sel.AddOns.Finish] +
		m.SpecialtySurcharges[sel.AddOns.SpecialtyEffect] +
		m.ClassicDesignSurcharges[sel.AddOns.ClassicDesign]

	// 5. Art complexity
	if sel.Art.Level != quote.ArtNone {
		b.Art = m.ArtLevelPrices[sel.Art.Level]
	}

	// 6. Bling & hardware
	b.Bling = m.BlingDensityPrices[sel.Bling.Density] +
		float64(sel.Bling.XLCharmsCount)*m.UnitPrices.XLCharms +
		float64(sel.Bling.PiercingsCount)*m.UnitPrices.Piercings

	// 7. Modifiers
	b.Modifiers = m.ModifierSurcharges[sel.Modifiers.ForeignWork] +
		float64(sel.Modifiers.RepairsCount)*m.UnitPrices.Repairs
	if sel.Modifiers.SoakOffOnly {
		b.Modifiers += m.UnitPrices.SoakOff
	}

	// 8. Pedicure, with art match at half the hand art tier price
	b.Pedicure = m.PedicurePrices[sel.Pedicure.Type]
	if sel.Pedicure.Type != quote.PedicureNone && sel.Pedicure.ToeArtMatch && sel.Art.Level != quote.ArtNone {
		b.Pedicure += m.ArtLevelPrices[sel.Art.Level] * 0.5
	}

	// 9. Extras
	for _, e := range sel.Extras {
		b.Extras += e.Price
	}

	total := b.Base + b.Length + b.Shape + b.AddOns + b.Art +
		b.Bling + b.Modifiers + b.Pedicure + b.Extras

	// Hourly-rate floor. A floor, never a ceiling: the itemized price is
	// never reduced.
	if sel.EstimatedDuration > 0 {
		timeBased := sel.EstimatedDuration / 60 * HourlyRate
		if timeBased > total {
			b.ComplexitySurcharge = timeBased - total
			total = timeBased
		}
	}

	return PriceResult{
		Total:     math.Ceil(total),
		Breakdown: b,
	}
}
