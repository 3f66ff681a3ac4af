package reporting

import (
	"context"

	"github.com/vfg2006/everflow-reporting-api/internal/domain"
)

// EntityReporter obtém as observações de cliques do Everflow
type EntityReporter interface {
	GetObservations(ctx context.Context, query *domain.EntityReportQuery) ([]domain.RawObservation, error)
}

// Reporter é o caso de uso exposto pela API
type Reporter interface {
	// Submit busca as duas visões em paralelo e atualiza os slots
	Submit(ctx context.Context, request *SubmitRequest) (*domain.ReportStatus, error)

	// Refresh executa novamente a última submissão aceita
	Refresh(ctx context.Context) (*domain.ReportStatus, error)

	Status(ctx context.Context) (*domain.ReportStatus, error)
	Records(ctx context.Context, view domain.View) ([]domain.Record, error)
	Export(ctx context.Context, view domain.View) (*ExportFile, error)
	Summary(ctx context.Context, view domain.View) (*domain.ReportSummary, error)
}
