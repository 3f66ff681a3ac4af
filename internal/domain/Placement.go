package domain

import (
	"fmt"
	"math"
)

const (
	PlacementAll  = "All"
	NotAvailable  = "N/A"
	weightEpsilon = 1e-9
)

type PlacementWeight struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// DefaultPlacementWeights é a distribuição fixa usada na visão de Reporting.
// "Facebook Stories" aparece duas vezes com pesos diferentes e não deve ser agrupado.
var DefaultPlacementWeights = []PlacementWeight{
	{Name: "Feed", Percentage: 0.55},
	{Name: "Facebook Stories", Percentage: 0.07},
	{Name: "Facebook Stories", Percentage: 0.13},
	{Name: "Marketplace", Percentage: 0.19},
	{Name: "Search", Percentage: 0.06},
}

// ValidateWeights verifica se os percentuais somam 1
func ValidateWeights(weights []PlacementWeight) error {
	if len(weights) == 0 {
		return fmt.Errorf("lista de placements vazia")
	}

	sum := 0.0
	for _, w := range weights {
		if w.Percentage < 0 {
			return fmt.Errorf("percentual negativo para o placement %q: %f", w.Name, w.Percentage)
		}
		sum += w.Percentage
	}

	if math.Abs(sum-1) > weightEpsilon {
		return fmt.Errorf("percentuais dos placements somam %f, esperado 1", sum)
	}

	return nil
}
