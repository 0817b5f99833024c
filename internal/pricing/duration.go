package pricing

import (
	"github.com/guhdnews/lacqr-sub000/internal/menu"
	"github.com/guhdnews/lacqr-sub000/internal/quote"
)

// EstimateDuration sums advisory minutes for a selection against the
// menu's duration tables, mirroring the pricing itemization. Used to
// pre-fill EstimatedDuration when the describer gave no time estimate.
func EstimateDuration(sel quote.ServiceSelection, m menu.PriceMenu) float64 {
	d := m.Durations

	var total float64
	if sel.Base.IsFill {
		total = d.FillMinutes[sel.Base.System]
	} else {
		total = d.BaseMinutes[sel.Base.System]
	}

	total += d.LengthMinutes[sel.Base.Length]
	total += d.SpecialtyMinutes[sel.AddOns.SpecialtyEffect]
	total += d.ClassicMinutes[sel.AddOns.ClassicDesign]

	if sel.Art.Level != quote.ArtNone {
		total += d.ArtLevelMinutes[sel.Art.Level]
	}

	total += d.BlingDensityMinutes[sel.Bling.Density]
	total += float64(sel.Bling.XLCharmsCount) * d.PerCharmMinutes
	total += float64(sel.Bling.PiercingsCount) * d.PerPiercingMinutes
	total += float64(sel.Modifiers.RepairsCount) * d.PerRepairMinutes
	if sel.Modifiers.SoakOffOnly {
		total += d.SoakOffMinutes
	}

	total += d.PedicureMinutes[sel.Pedicure.Type]

	return total
}
