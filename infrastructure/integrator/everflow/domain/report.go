package everflowdomain

import (
	"bytes"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EntityReportRequest é o corpo de POST /v1/networks/reporting/entity
type EntityReportRequest struct {
	TimezoneID int      `json:"timezone_id"`
	CurrencyID string   `json:"currency_id"`
	From       string   `json:"from"`
	To         string   `json:"to"`
	Columns    []Column `json:"columns"`
	UsmColumns []string `json:"usm_columns"`
	Query      Query    `json:"query"`
}

type Column struct {
	Column string `json:"column"`
}

type Query struct {
	Filters       []Filter       `json:"filters"`
	Exclusions    []any          `json:"exclusions"`
	MetricFilters []any          `json:"metric_filters"`
	UserMetrics   []any          `json:"user_metrics"`
	Settings      map[string]any `json:"settings"`
}

type Filter struct {
	ResourceType  string `json:"resource_type"`
	FilterIDValue string `json:"filter_id_value"`
}

type EntityReportResponse struct {
	Table []TableRow `json:"table"`
}

type TableRow struct {
	Columns   []ColumnValue `json:"columns"`
	Reporting Reporting     `json:"reporting"`
}

type ColumnValue struct {
	ColumnType string         `json:"column_type"`
	ID         FlexibleString `json:"id"`
	Label      FlexibleString `json:"label"`
}

type Reporting struct {
	TotalClick int `json:"total_click"`
}

// FlexibleString aceita tanto string quanto número no JSON.
// O Everflow devolve a data como timestamp numérico no label.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleString(s)
		return nil
	}

	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return err
	}
	*f = FlexibleString(data)
	return nil
}

func (f FlexibleString) String() string {
	return string(f)
}

// ErrorResponse representa o corpo de erro da API do Everflow
type ErrorResponse struct {
	Error string `json:"Error"`
}
