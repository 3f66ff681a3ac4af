package synthesizing

import (
	"slices"
	"time"

	"github.com/vfg2006/everflow-reporting-api/internal/domain"
)

// SortByDate ordena as linhas por data de forma estável
func SortByDate(rows []domain.SyntheticRow) []domain.SyntheticRow {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b domain.SyntheticRow) int {
		return compareDates(a.Date, b.Date)
	})
	return sorted
}

// SortGroupsByDate ordena grupos de linhas (agregado + placements) pela data do agregado
func SortGroupsByDate(groups [][]domain.SyntheticRow) [][]domain.SyntheticRow {
	sorted := slices.Clone(groups)
	slices.SortStableFunc(sorted, func(a, b []domain.SyntheticRow) int {
		return compareDates(groupDate(a), groupDate(b))
	})
	return sorted
}

func groupDate(group []domain.SyntheticRow) string {
	if len(group) == 0 {
		return ""
	}
	return group[0].Date
}

// Datas inválidas são tratadas como zero e ficam no início
func compareDates(a, b string) int {
	return parseDate(a).Compare(parseDate(b))
}

func parseDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
