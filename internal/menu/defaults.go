package menu

import "github.com/guhdnews/lacqr-sub000/internal/quote"

// DefaultMenu seeds a newly-registered tech's price list. Amounts are the
// product's starter pricing; techs edit everything from the menu editor.
func DefaultMenu() PriceMenu {
	return PriceMenu{
		BasePrices: map[quote.SystemType]float64{
			quote.SystemAcrylic:      55,
			quote.SystemGelX:         65,
			quote.SystemHardGel:      60,
			quote.SystemStructureGel: 50,
		},
		FillPrices: map[quote.SystemType]float64{
			quote.SystemAcrylic:      40,
			quote.SystemGelX:         50,
			quote.SystemHardGel:      45,
			quote.SystemStructureGel: 40,
		},
		LengthSurcharges: map[quote.NailLength]float64{
			quote.LengthShort:  0,
			quote.LengthMedium: 0,
			quote.LengthLong:   10,
			quote.LengthXL:     15,
			quote.LengthXXL:    25,
		},
		ShapeSurcharges: map[quote.NailShape]float64{
			quote.ShapeSquare:    0,
			quote.ShapeCoffin:    0,
			quote.ShapeStiletto:  0,
			quote.ShapeAlmond:    0,
			quote.ShapeSquoval:   0,
			quote.ShapeBallerina: 0,
			quote.ShapeDuck:      5,
			quote.ShapeLipstick:  5,
		},
		FinishSurcharges: map[quote.Finish]float64{
			quote.FinishGlossy: 0,
			quote.FinishMatte:  5,
		},
		SpecialtySurcharges: map[quote.SpecialtyEffect]float64{
			quote.SpecialtyNone:   0,
			quote.SpecialtyChrome: 15,
			quote.SpecialtyHolo:   15,
			quote.SpecialtyCatEye: 15,
		},
		ClassicDesignSurcharges: map[quote.ClassicDesign]float64{
			quote.ClassicNone:      0,
			quote.ClassicFrenchTip: 15,
			quote.ClassicOmbre:     15,
		},
		ArtLevelPrices: map[quote.ArtLevel]float64{
			quote.ArtLevel1: 5,
			quote.ArtLevel2: 15,
			quote.ArtLevel3: 30,
			quote.ArtLevel4: 60,
		},
		BlingDensityPrices: map[quote.BlingDensity]float64{
			quote.BlingNone:     0,
			quote.BlingMinimal:  10,
			quote.BlingModerate: 25,
			quote.BlingHeavy:    50,
		},
		ModifierSurcharges: map[quote.ForeignWork]float64{
			quote.ForeignNone:    0,
			quote.ForeignFill:    10,
			quote.ForeignRemoval: 20,
		},
		PedicurePrices: map[quote.PedicureType]float64{
			quote.PedicureNone:       0,
			quote.PedicureClassic:    35,
			quote.PedicureGel:        50,
			quote.PedicureAcrylicToe: 65,
		},
		UnitPrices: UnitPrices{
			XLCharms:  5,
			Piercings: 5,
			Repairs:   5,
			SoakOff:   10,
		},
		Durations: DurationMenu{
			BaseMinutes: map[quote.SystemType]float64{
				quote.SystemAcrylic:      90,
				quote.SystemGelX:         90,
				quote.SystemHardGel:      75,
				quote.SystemStructureGel: 60,
			},
			FillMinutes: map[quote.SystemType]float64{
				quote.SystemAcrylic:      60,
				quote.SystemGelX:         60,
				quote.SystemHardGel:      50,
				quote.SystemStructureGel: 45,
			},
			LengthMinutes: map[quote.NailLength]float64{
				quote.LengthLong: 10,
				quote.LengthXL:   15,
				quote.LengthXXL:  25,
			},
			SpecialtyMinutes: map[quote.SpecialtyEffect]float64{
				quote.SpecialtyChrome: 10,
				quote.SpecialtyHolo:   10,
				quote.SpecialtyCatEye: 15,
			},
			ClassicMinutes: map[quote.ClassicDesign]float64{
				quote.ClassicFrenchTip: 15,
				quote.ClassicOmbre:     15,
			},
			ArtLevelMinutes: map[quote.ArtLevel]float64{
				quote.ArtLevel1: 15,
				quote.ArtLevel2: 30,
				quote.ArtLevel3: 45,
				quote.ArtLevel4: 75,
			},
			BlingDensityMinutes: map[quote.BlingDensity]float64{
				quote.BlingMinimal:  10,
				quote.BlingModerate: 20,
				quote.BlingHeavy:    35,
			},
			PedicureMinutes: map[quote.PedicureType]float64{
				quote.PedicureClassic:    45,
				quote.PedicureGel:        60,
				quote.PedicureAcrylicToe: 75,
			},
			PerCharmMinutes:    5,
			PerPiercingMinutes: 5,
			PerRepairMinutes:   10,
			SoakOffMinutes:     30,
		},
	}
}
