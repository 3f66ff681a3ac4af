package synthesizing

import (
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
	"github.com/vfg2006/everflow-reporting-api/pkg/utils"
)

// Limites dos multiplicadores sorteados
const (
	costPerResultMin         = 0.15
	costPerResultMax         = 0.55
	reachMultiplierMin       = 70
	reachMultiplierMax       = 90
	impressionsMultiplierMin = 2.1
	impressionsMultiplierMax = 4.2
	clicksAllMultiplierMin   = 1.3
	clicksAllMultiplierMax   = 1.9
)

// Synthesize gera a linha agregada ("All") de uma observação.
// Com zero cliques todas as métricas são zero e nenhum valor aleatório é consumido.
func Synthesize(obs domain.RawObservation, static domain.Metadata, rnd RandomSource) domain.SyntheticRow {
	row := domain.SyntheticRow{
		Date:      obs.DateString(),
		Platform:  obs.Platform,
		Placement: domain.PlacementAll,
	}

	if obs.ClickCount <= 0 {
		return Merge(row, static, obs.Fields)
	}

	linkClicks := obs.ClickCount
	clicks := float64(linkClicks)

	costPerResult := utils.RoundWithTwoDecimalPlace(rnd.UniformFloat(costPerResultMin, costPerResultMax))
	amountSpent := utils.RoundWithTwoDecimalPlace(clicks * costPerResult)

	reach := linkClicks * rnd.UniformInt(reachMultiplierMin, reachMultiplierMax)

	// O multiplicador é arredondado antes da multiplicação, assumindo apenas 2, 3 ou 4
	impressionsMultiplier := utils.RoundToInt(rnd.UniformFloat(impressionsMultiplierMin, impressionsMultiplierMax))
	impressions := reach * impressionsMultiplier

	clicksAll := utils.RoundToInt(clicks * rnd.UniformFloat(clicksAllMultiplierMin, clicksAllMultiplierMax))

	// impressions > 0 e clicksAll > 0 sempre que linkClicks > 0
	row.LinkClicks = linkClicks
	row.CostPerResult = costPerResult
	row.AmountSpent = amountSpent
	row.Reach = reach
	row.Impressions = impressions
	row.CPM = utils.RoundWithTwoDecimalPlace(amountSpent / float64(impressions) * 1000)
	row.CPC = utils.RoundWithTwoDecimalPlace(amountSpent / clicks)
	row.CTR = utils.RoundWithTwoDecimalPlace(clicks / float64(impressions) * 100)
	row.ClicksAll = clicksAll
	row.CTRAll = utils.RoundWithTwoDecimalPlace(float64(clicksAll) / float64(impressions) * 100)
	row.CPCAll = utils.RoundWithTwoDecimalPlace(amountSpent / float64(clicksAll))

	return Merge(row, static, obs.Fields)
}
