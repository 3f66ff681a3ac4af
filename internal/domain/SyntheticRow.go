package domain

// SyntheticRow é uma linha de métricas sintetizada, agregada ("All") ou de um placement.
// Linhas de preenchimento (Filler) não carregam métricas.
type SyntheticRow struct {
	Date          string   `json:"date"`
	Platform      string   `json:"platform"`
	Placement     string   `json:"placement"`
	LinkClicks    int      `json:"linkClicks"`
	CostPerResult float64  `json:"costPerResult"`
	AmountSpent   float64  `json:"amountSpent"`
	Reach         int      `json:"reach"`
	Impressions   int      `json:"impressions"`
	CPM           float64  `json:"cpm"`
	CPC           float64  `json:"cpc"`
	CTR           float64  `json:"ctr"`
	ClicksAll     int      `json:"clicksAll"`
	CTRAll        float64  `json:"ctrAll"`
	CPCAll        float64  `json:"cpcAll"`
	Metadata      Metadata `json:"metadata"`
	Filler        bool     `json:"filler,omitempty"`
}

// IsAggregate indica se a linha é o agregado real de uma observação
func (r SyntheticRow) IsAggregate() bool {
	return !r.Filler && r.Placement == PlacementAll
}

// Record projeta a linha nos campos exportados, na ordem das colunas do relatório
func (r SyntheticRow) Record(includePlacement bool) Record {
	record := make(Record, 0, 32)
	record = append(record, Field{Name: "date", Value: r.Date})

	for _, key := range r.Metadata.Keys() {
		value, ok := r.Metadata[key]
		if !ok {
			value = NotAvailable
		}
		record = append(record, Field{Name: key, Value: value})
	}

	if includePlacement {
		record = append(record,
			Field{Name: "platform", Value: r.Platform},
			Field{Name: "placement", Value: r.Placement},
		)
	}

	metrics := []Field{
		{Name: "linkClicks", Value: r.LinkClicks},
		{Name: "costPerResult", Value: r.CostPerResult},
		{Name: "amountSpent", Value: r.AmountSpent},
		{Name: "reach", Value: r.Reach},
		{Name: "impressions", Value: r.Impressions},
		{Name: "cpm", Value: r.CPM},
		{Name: "cpc", Value: r.CPC},
		{Name: "ctr", Value: r.CTR},
		{Name: "clicksAll", Value: r.ClicksAll},
		{Name: "ctrAll", Value: r.CTRAll},
		{Name: "cpcAll", Value: r.CPCAll},
	}

	// Linhas de preenchimento exportam as métricas em branco
	if r.Filler {
		for i := range metrics {
			metrics[i].Value = nil
		}
	}

	return append(record, metrics...)
}
