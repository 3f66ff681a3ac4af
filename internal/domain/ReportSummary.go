package domain

// ReportSummary resume as linhas agregadas de uma visão
type ReportSummary struct {
	View        View    `json:"view"`
	Rows        int     `json:"rows"`
	LinkClicks  float64 `json:"link_clicks"`
	AmountSpent float64 `json:"amount_spent"`
	Reach       float64 `json:"reach"`
	Impressions float64 `json:"impressions"`
	ClicksAll   float64 `json:"clicks_all"`
	MeanCPM     float64 `json:"mean_cpm"`
	MeanCPC     float64 `json:"mean_cpc"`
	MeanCTR     float64 `json:"mean_ctr"`
	MedianCTR   float64 `json:"median_ctr"`
	MaxCPC      float64 `json:"max_cpc"`
}
