package menu

import "errors"

// ValidateMenu rejects negative amounts. Zero is fine (the option is free),
// but a negative price or duration is always a client mistake.
func ValidateMenu(m *PriceMenu) error {
	if anyNegative(
		prices(m.BasePrices), prices(m.FillPrices),
		prices(m.LengthSurcharges), prices(m.ShapeSurcharges),
		prices(m.FinishSurcharges), prices(m.SpecialtySurcharges),
		prices(m.ClassicDesignSurcharges), prices(m.ArtLevelPrices),
		prices(m.BlingDensityPrices), prices(m.ModifierSurcharges),
		prices(m.PedicurePrices),
		[]float64{m.UnitPrices.XLCharms, m.UnitPrices.Piercings, m.UnitPrices.Repairs, m.UnitPrices.SoakOff},
	) {
		return errors.New("menu contains a negative price")
	}

	d := m.Durations
	if anyNegative(
		prices(d.BaseMinutes), prices(d.FillMinutes), prices(d.LengthMinutes),
		prices(d.SpecialtyMinutes), prices(d.ClassicMinutes), prices(d.ArtLevelMinutes),
		prices(d.BlingDensityMinutes), prices(d.PedicureMinutes),
		[]float64{d.PerCharmMinutes, d.PerPiercingMinutes, d.PerRepairMinutes, d.SoakOffMinutes},
	) {
		return errors.New("menu contains a negative duration")
	}

	return nil
}

func anyNegative(groups ...[]float64) bool {
	for _, g := range groups {
		for _, v := range g {
			if v < 0 {
				return true
			}
		}
	}
	return false
}

func prices[K comparable](m map[K]float64) []float64 {
	out := make([]float64, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
