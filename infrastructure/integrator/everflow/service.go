package everflow

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	everflowdomain "github.com/vfg2006/everflow-reporting-api/infrastructure/integrator/everflow/domain"
	"github.com/vfg2006/everflow-reporting-api/infrastructure/integrator/everflow/everflowclient"
	"github.com/vfg2006/everflow-reporting-api/internal/config"
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
)

const (
	columnPlatform = "platform"
	columnDate     = "date"
	// A tabela do Everflow traz offer, affiliate e date nas três primeiras colunas
	dateColumnFallbackIndex = 2
)

type EverflowIntegrator struct {
	cfg    *config.Config
	Client everflowclient.Client
}

func New(cfg *config.Config, client everflowclient.Client) *EverflowIntegrator {
	return &EverflowIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetObservations consulta o relatório de entidades e converte cada linha da tabela em observação
func (s *EverflowIntegrator) GetObservations(ctx context.Context, query *domain.EntityReportQuery) ([]domain.RawObservation, error) {
	request, err := BuildEntityReportRequest(s.cfg, query)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.GetEntityReport(ctx, request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"offer_id":     query.OfferID,
			"affiliate_id": query.AffiliateID,
			"error":        err.Error(),
		}).Error("everflow: failed to get entity report")
		return nil, err
	}

	observations := make([]domain.RawObservation, 0, len(resp.Table))
	for i, row := range resp.Table {
		observation, err := FactoryObservation(row, s.cfg.Everflow.DefaultPlatform)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"row":   i,
				"error": err.Error(),
			}).Warn("everflow: ignoring row without a valid date")
			continue
		}
		observations = append(observations, observation)
	}

	logrus.WithFields(logrus.Fields{
		"offer_id":     query.OfferID,
		"affiliate_id": query.AffiliateID,
		"rows":         len(observations),
	}).Debug("everflow: successfully retrieved entity report")

	return observations, nil
}

func BuildEntityReportRequest(cfg *config.Config, query *domain.EntityReportQuery) (*everflowdomain.EntityReportRequest, error) {
	if query == nil || query.From == nil || query.To == nil {
		return nil, fmt.Errorf("período da consulta não informado")
	}

	columns := make([]everflowdomain.Column, 0, len(query.Columns))
	for _, c := range query.Columns {
		columns = append(columns, everflowdomain.Column{Column: c})
	}

	return &everflowdomain.EntityReportRequest{
		TimezoneID: query.TimezoneID,
		CurrencyID: cfg.Everflow.CurrencyID,
		From:       query.From.Format(time.DateOnly),
		To:         query.To.Format(time.DateOnly),
		Columns:    columns,
		UsmColumns: []string{},
		Query: everflowdomain.Query{
			Filters: []everflowdomain.Filter{
				{ResourceType: "offer", FilterIDValue: strconv.Itoa(query.OfferID)},
				{ResourceType: "affiliate", FilterIDValue: strconv.Itoa(query.AffiliateID)},
			},
			Exclusions:    []any{},
			MetricFilters: []any{},
			UserMetrics:   []any{},
			Settings:      map[string]any{},
		},
	}, nil
}

// FactoryObservation converte uma linha da tabela do Everflow.
// Colunas que não são platform nem date viram campos da observação.
func FactoryObservation(row everflowdomain.TableRow, defaultPlatform string) (domain.RawObservation, error) {
	observation := domain.RawObservation{
		Platform:   defaultPlatform,
		ClickCount: row.Reporting.TotalClick,
		Fields:     make(map[string]string),
	}

	dateLabel := ""
	hasDate := false
	for _, column := range row.Columns {
		switch column.ColumnType {
		case columnPlatform:
			if column.Label != "" {
				observation.Platform = column.Label.String()
			}
		case columnDate:
			dateLabel = column.Label.String()
			hasDate = true
		default:
			if column.ColumnType != "" {
				observation.Fields[column.ColumnType] = column.Label.String()
			}
		}
	}

	if !hasDate && len(row.Columns) > dateColumnFallbackIndex {
		dateLabel = row.Columns[dateColumnFallbackIndex].Label.String()
	}

	date, err := strconv.ParseInt(dateLabel, 10, 64)
	if err != nil {
		return domain.RawObservation{}, fmt.Errorf("data inválida %q: %w", dateLabel, err)
	}
	observation.Date = date

	return observation, nil
}
