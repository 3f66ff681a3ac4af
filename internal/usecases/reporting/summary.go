package reporting

import (
	"github.com/montanaflynn/stats"
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
	"github.com/vfg2006/everflow-reporting-api/pkg/utils"
)

// Summarize calcula totais e médias sobre as linhas agregadas da visão
func Summarize(view domain.View, rows []domain.SyntheticRow) *domain.ReportSummary {
	summary := &domain.ReportSummary{View: view}

	var linkClicks, amountSpent, reach, impressions, clicksAll, cpm, cpc, ctr stats.Float64Data
	for _, row := range rows {
		if !row.IsAggregate() {
			continue
		}

		linkClicks = append(linkClicks, float64(row.LinkClicks))
		amountSpent = append(amountSpent, row.AmountSpent)
		reach = append(reach, float64(row.Reach))
		impressions = append(impressions, float64(row.Impressions))
		clicksAll = append(clicksAll, float64(row.ClicksAll))

		// Linhas sem cliques não entram nas médias de razão
		if row.LinkClicks > 0 {
			cpm = append(cpm, row.CPM)
			cpc = append(cpc, row.CPC)
			ctr = append(ctr, row.CTR)
		}
	}

	summary.Rows = linkClicks.Len()
	if summary.Rows == 0 {
		return summary
	}

	summary.LinkClicks = sum(linkClicks)
	summary.AmountSpent = utils.RoundWithTwoDecimalPlace(sum(amountSpent))
	summary.Reach = sum(reach)
	summary.Impressions = sum(impressions)
	summary.ClicksAll = sum(clicksAll)

	if cpm.Len() > 0 {
		summary.MeanCPM = utils.RoundWithTwoDecimalPlace(mean(cpm))
		summary.MeanCPC = utils.RoundWithTwoDecimalPlace(mean(cpc))
		summary.MeanCTR = utils.RoundWithTwoDecimalPlace(mean(ctr))

		median, _ := stats.Median(ctr)
		summary.MedianCTR = utils.RoundWithTwoDecimalPlace(median)

		maxCPC, _ := stats.Max(cpc)
		summary.MaxCPC = maxCPC
	}

	return summary
}

func sum(data stats.Float64Data) float64 {
	total, _ := stats.Sum(data)
	return total
}

func mean(data stats.Float64Data) float64 {
	m, _ := stats.Mean(data)
	return m
}
