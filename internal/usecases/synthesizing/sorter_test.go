package synthesizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
)

func TestSortByDate_Stable(t *testing.T) {
	rows := []domain.SyntheticRow{
		{Date: "2024-03-12", Platform: "a"},
		{Date: "2024-03-10", Platform: "b"},
		{Date: "2024-03-12", Platform: "c"},
		{Date: "2024-03-10", Platform: "d"},
		{Date: "2024-03-11", Platform: "e"},
	}

	sorted := SortByDate(rows)

	platforms := make([]string, 0, len(sorted))
	for _, row := range sorted {
		platforms = append(platforms, row.Platform)
	}
	assert.Equal(t, []string{"b", "d", "e", "a", "c"}, platforms)

	// A entrada não é alterada
	assert.Equal(t, "a", rows[0].Platform)
}

func TestSortByDate_InvalidDatesFirst(t *testing.T) {
	sorted := SortByDate([]domain.SyntheticRow{
		{Date: "2024-03-12"},
		{Date: "invalid"},
	})

	assert.Equal(t, "invalid", sorted[0].Date)
}

func TestSortGroupsByDate(t *testing.T) {
	groups := [][]domain.SyntheticRow{
		{{Date: "2024-03-11", Placement: "All"}, {Date: "2024-03-11", Placement: "Feed"}},
		{{Date: "2024-03-10", Placement: "All"}},
	}

	sorted := SortGroupsByDate(groups)

	assert.Equal(t, "2024-03-10", sorted[0][0].Date)
	assert.Len(t, sorted[1], 2)
	assert.Equal(t, "Feed", sorted[1][1].Placement)
}
