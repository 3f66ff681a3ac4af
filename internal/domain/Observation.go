package domain

import (
	"time"
)

// RawObservation representa uma linha da tabela de relatório do Everflow
type RawObservation struct {
	Date       int64             `json:"date"`
	Platform   string            `json:"platform"`
	ClickCount int               `json:"click_count"`
	Fields     map[string]string `json:"fields,omitempty"`
}

// DateString formata a data unix da observação como YYYY-MM-DD (UTC)
func (o RawObservation) DateString() string {
	return time.Unix(o.Date, 0).UTC().Format(time.DateOnly)
}

// EntityReportQuery contém os parâmetros de uma consulta ao relatório de entidades
type EntityReportQuery struct {
	From        *time.Time
	To          *time.Time
	OfferID     int
	AffiliateID int
	TimezoneID  int
	Columns     []string
}
