package synthesizing

import (
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
	"github.com/vfg2006/everflow-reporting-api/pkg/utils"
)

// Distribute divide a linha agregada entre os placements.
// Cada placement recalcula suas razões a partir dos próprios valores distribuídos
// e sorteia um novo multiplicador de clicksAll.
func Distribute(aggregate domain.SyntheticRow, weights []domain.PlacementWeight, rnd RandomSource) []domain.SyntheticRow {
	rows := make([]domain.SyntheticRow, 0, len(weights))

	for _, w := range weights {
		linkClicks := utils.RoundToInt(float64(aggregate.LinkClicks) * w.Percentage)
		amountSpent := utils.RoundWithTwoDecimalPlace(aggregate.AmountSpent * w.Percentage)
		reach := utils.RoundToInt(float64(aggregate.Reach) * w.Percentage)
		impressions := utils.RoundToInt(float64(aggregate.Impressions) * w.Percentage)

		clicksAll := 0
		if aggregate.LinkClicks > 0 {
			clicksAll = utils.RoundToInt(float64(linkClicks) * rnd.UniformFloat(clicksAllMultiplierMin, clicksAllMultiplierMax))
		}

		rows = append(rows, domain.SyntheticRow{
			Date:          aggregate.Date,
			Platform:      aggregate.Platform,
			Placement:     w.Name,
			LinkClicks:    linkClicks,
			CostPerResult: ratio(amountSpent, linkClicks, 1),
			AmountSpent:   amountSpent,
			Reach:         reach,
			Impressions:   impressions,
			CPM:           ratio(amountSpent, impressions, 1000),
			CPC:           ratio(amountSpent, linkClicks, 1),
			CTR:           ratio(float64(linkClicks), impressions, 100),
			ClicksAll:     clicksAll,
			CTRAll:        ratio(float64(clicksAll), impressions, 100),
			CPCAll:        ratio(amountSpent, clicksAll, 1),
		})
	}

	return rows
}

// ratio retorna 0 quando o denominador é zero
func ratio(numerator float64, denominator int, scale float64) float64 {
	if denominator <= 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(numerator / float64(denominator) * scale)
}
