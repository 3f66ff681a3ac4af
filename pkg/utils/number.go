package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundToInt arredonda para o inteiro mais próximo
func RoundToInt(f float64) int {
	return int(math.Round(f))
}
