package synthesizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
)

func aggregateRow() domain.SyntheticRow {
	return domain.SyntheticRow{
		Date:          "2024-03-10",
		Platform:      "Android",
		Placement:     domain.PlacementAll,
		LinkClicks:    100,
		CostPerResult: 0.3,
		AmountSpent:   30,
		Reach:         8000,
		Impressions:   24000,
		CPM:           1.25,
		CPC:           0.3,
		CTR:           0.42,
		ClicksAll:     160,
		CTRAll:        0.67,
		CPCAll:        0.19,
	}
}

func TestDistribute_FeedPlacement(t *testing.T) {
	rnd := &scriptedSource{floats: []float64{1.5, 1.5, 1.5, 1.5, 1.5}}

	rows := Distribute(aggregateRow(), domain.DefaultPlacementWeights, rnd)
	require.Len(t, rows, 5)

	feed := rows[0]
	assert.Equal(t, "Feed", feed.Placement)
	assert.Equal(t, "2024-03-10", feed.Date)
	assert.Equal(t, "Android", feed.Platform)
	assert.Equal(t, 55, feed.LinkClicks)
	assert.Equal(t, 16.5, feed.AmountSpent)
	assert.Equal(t, 4400, feed.Reach)
	assert.Equal(t, 13200, feed.Impressions)
	assert.Equal(t, 1.25, feed.CPM)
	assert.Equal(t, 0.3, feed.CPC)
	assert.Equal(t, 0.42, feed.CTR)
	assert.Equal(t, 83, feed.ClicksAll)
	assert.Equal(t, 0.63, feed.CTRAll)
	assert.Equal(t, 0.2, feed.CPCAll)
	assert.Equal(t, 0.3, feed.CostPerResult)
}

func TestDistribute_KeepsWeightOrderAndDuplicateNames(t *testing.T) {
	rows := Distribute(aggregateRow(), domain.DefaultPlacementWeights, NewRandomSource(1))

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Placement)
	}

	assert.Equal(t, []string{"Feed", "Facebook Stories", "Facebook Stories", "Marketplace", "Search"}, names)
	assert.Equal(t, 7, rows[1].LinkClicks)
	assert.Equal(t, 13, rows[2].LinkClicks)
}

func TestDistribute_SamplesClicksAllPerPlacement(t *testing.T) {
	rnd := &scriptedSource{floats: []float64{1.3, 1.4, 1.5, 1.6, 1.7}}

	rows := Distribute(aggregateRow(), domain.DefaultPlacementWeights, rnd)

	assert.Equal(t, 5, rnd.floatCalls)
	assert.Equal(t, 72, rows[0].ClicksAll) // round(55 * 1.3)
	assert.Equal(t, 10, rows[1].ClicksAll) // round(7 * 1.4)
	assert.Equal(t, 20, rows[2].ClicksAll) // round(13 * 1.5)
	assert.Equal(t, 30, rows[3].ClicksAll) // round(19 * 1.6)
	assert.Equal(t, 10, rows[4].ClicksAll) // round(6 * 1.7)
}

func TestDistribute_ZeroDivisionGuards(t *testing.T) {
	aggregate := domain.SyntheticRow{
		Date:        "2024-03-10",
		Placement:   domain.PlacementAll,
		LinkClicks:  1,
		AmountSpent: 0.2,
		Reach:       70,
		Impressions: 140,
	}
	rnd := &scriptedSource{floats: []float64{1.9, 1.9, 1.9, 1.9, 1.9}}

	rows := Distribute(aggregate, domain.DefaultPlacementWeights, rnd)

	search := rows[4]
	assert.Equal(t, 0, search.LinkClicks)
	assert.Equal(t, 0, search.ClicksAll)
	assert.Zero(t, search.CPC)
	assert.Zero(t, search.CostPerResult)
	assert.Zero(t, search.CPCAll)
	assert.Equal(t, 8, search.Impressions)
	assert.Zero(t, search.CTR)

	for _, row := range rows {
		assertRatios(t, row)
	}
}

func TestDistribute_ZeroAggregate(t *testing.T) {
	rnd := &scriptedSource{}
	aggregate := domain.SyntheticRow{Date: "2024-03-10", Placement: domain.PlacementAll}

	rows := Distribute(aggregate, domain.DefaultPlacementWeights, rnd)

	require.Len(t, rows, 5)
	assert.Zero(t, rnd.floatCalls)
	for _, row := range rows {
		assert.Zero(t, row.LinkClicks)
		assert.Zero(t, row.AmountSpent)
		assert.Zero(t, row.Reach)
		assert.Zero(t, row.Impressions)
		assert.Zero(t, row.CPM)
		assert.Zero(t, row.CPC)
		assert.Zero(t, row.CTR)
		assert.Zero(t, row.ClicksAll)
		assert.Zero(t, row.CTRAll)
		assert.Zero(t, row.CPCAll)
		assert.Zero(t, row.CostPerResult)
	}
}

func TestDistribute_LinkClicksApproximateAggregate(t *testing.T) {
	rnd := NewRandomSource(3)

	for clicks := 1; clicks <= 300; clicks++ {
		aggregate := Synthesize(observation("2024-03-10", clicks), nil, rnd)
		rows := Distribute(aggregate, domain.DefaultPlacementWeights, rnd)

		sum := 0
		for _, row := range rows {
			sum += row.LinkClicks
			assertRatios(t, row)
		}

		// Cada placement arredonda por conta própria: diferença de no máximo meio clique por linha
		assert.InDelta(t, aggregate.LinkClicks, sum, float64(len(rows))/2)
	}
}
