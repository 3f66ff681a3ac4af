package synthesizing

import (
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
)

// fillerRowsPerDate é a quantidade de linhas separadoras antes de cada data
const fillerRowsPerDate = 4

type ReportingOptions struct {
	Weights []domain.PlacementWeight
	Padding bool
}

// CampaignView gera uma linha agregada por observação, ordenada por data
func CampaignView(observations []domain.RawObservation, static domain.Metadata, rnd RandomSource) []domain.SyntheticRow {
	rows := make([]domain.SyntheticRow, 0, len(observations))
	for _, obs := range observations {
		rows = append(rows, Synthesize(obs, static, rnd))
	}

	return SortByDate(rows)
}

// ReportingView gera, por observação, o agregado seguido dos placements.
// A ordenação acontece por grupo antes da inserção das linhas separadoras.
func ReportingView(observations []domain.RawObservation, static domain.Metadata, rnd RandomSource, opts ReportingOptions) []domain.SyntheticRow {
	weights := opts.Weights
	if weights == nil {
		weights = domain.DefaultPlacementWeights
	}

	groups := make([][]domain.SyntheticRow, 0, len(observations))
	for _, obs := range observations {
		aggregate := Synthesize(obs, static, rnd)

		group := make([]domain.SyntheticRow, 0, 1+len(weights))
		group = append(group, aggregate)
		for _, placement := range Distribute(aggregate, weights, rnd) {
			group = append(group, Merge(placement, static, obs.Fields))
		}

		groups = append(groups, group)
	}

	groups = SortGroupsByDate(groups)

	if !opts.Padding {
		return flatten(groups)
	}

	return padDateGroups(groups)
}

func flatten(groups [][]domain.SyntheticRow) []domain.SyntheticRow {
	rows := make([]domain.SyntheticRow, 0)
	for _, group := range groups {
		rows = append(rows, group...)
	}
	return rows
}

// padDateGroups insere as linhas separadoras antes das linhas reais de cada data.
// Os grupos já estão ordenados, então datas iguais são contíguas.
func padDateGroups(groups [][]domain.SyntheticRow) []domain.SyntheticRow {
	rows := make([]domain.SyntheticRow, 0)

	for i := 0; i < len(groups); {
		date := groupDate(groups[i])

		j := i
		for j < len(groups) && groupDate(groups[j]) == date {
			j++
		}

		rows = append(rows, fillerRows(groups[i][0])...)
		for _, group := range groups[i:j] {
			rows = append(rows, group...)
		}

		i = j
	}

	return rows
}

// fillerRows cria as linhas separadoras com os rótulos "All" em cascata
func fillerRows(representative domain.SyntheticRow) []domain.SyntheticRow {
	rows := make([]domain.SyntheticRow, 0, fillerRowsPerDate)

	for i := 0; i < fillerRowsPerDate; i++ {
		metadata := make(domain.Metadata, len(representative.Metadata))
		for _, key := range representative.Metadata.Keys() {
			metadata[key] = firstNonEmpty(representative.Metadata[key], domain.NotAvailable)
		}

		if i == 0 {
			metadata[domain.MetadataAdSetName] = domain.PlacementAll
		}
		if i <= 1 {
			metadata[domain.MetadataAdName] = domain.PlacementAll
		}
		if i <= 2 {
			metadata[domain.MetadataAdCreative] = domain.PlacementAll
		}

		rows = append(rows, domain.SyntheticRow{
			Date:      representative.Date,
			Platform:  domain.PlacementAll,
			Placement: domain.PlacementAll,
			Metadata:  metadata,
			Filler:    true,
		})
	}

	return rows
}
