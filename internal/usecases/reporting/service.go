package reporting

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/everflow-reporting-api/infrastructure/repository"
	"github.com/vfg2006/everflow-reporting-api/internal/config"
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
	"github.com/vfg2006/everflow-reporting-api/internal/usecases/synthesizing"
	"github.com/vfg2006/everflow-reporting-api/pkg/apiErrors"
	"github.com/vfg2006/everflow-reporting-api/pkg/log"
	"github.com/vfg2006/everflow-reporting-api/pkg/metrics"
	"github.com/vfg2006/everflow-reporting-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	TriggerAPI     = "api"
	TriggerRefresh = "refresh"
)

var _ Reporter = (*Service)(nil)

type Service struct {
	cfg      *config.Config
	everflow EntityReporter
	slots    repository.ReportSlotRepository
	now      func() time.Time

	mu             sync.Mutex
	lastSubmission *SubmitRequest
}

func NewService(cfg *config.Config, everflow EntityReporter, slots repository.ReportSlotRepository) *Service {
	return &Service{
		cfg:      cfg,
		everflow: everflow,
		slots:    slots,
		now:      time.Now,
	}
}

func (s *Service) Submit(ctx context.Context, request *SubmitRequest) (*domain.ReportStatus, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastSubmission = request.Clone()
	s.mu.Unlock()

	return s.run(ctx, request, TriggerAPI)
}

func (s *Service) Refresh(ctx context.Context) (*domain.ReportStatus, error) {
	s.mu.Lock()
	last := s.lastSubmission
	s.mu.Unlock()

	if last == nil {
		return nil, NewReportError(ErrNoSubmission, apiErrors.ErrNoSubmission, "")
	}

	return s.run(ctx, last.Clone(), TriggerRefresh)
}

// run marca os dois slots como em busca e dispara as consultas em paralelo.
// Cada visão atualiza seu slot de forma independente: a falha de uma não cancela a outra.
func (s *Service) run(ctx context.Context, request *SubmitRequest, trigger string) (*domain.ReportStatus, error) {
	submissionID, err := utils.GenerateID()
	if err != nil {
		return nil, NewReportError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	logger := log.ForSubmission(ctx, submissionID, trigger)
	logger.Info("reporting: submission started")
	metrics.SubmissionsTotal.WithLabelValues(trigger).Inc()

	begun := make([]domain.View, 0, len(domain.Views))
	for _, view := range domain.Views {
		if err := s.updateSlot(ctx, view, func(slot *domain.ReportSlot) {
			slot.Begin(submissionID, s.now())
		}); err != nil {
			logger.WithError(err).WithField(log.ViewField, view).Error("reporting: failed to begin slot")
			s.abort(ctx, logger, submissionID, begun, err)
			return nil, err
		}
		begun = append(begun, view)
	}

	var g errgroup.Group
	for _, view := range domain.Views {
		g.Go(func() error {
			return s.fetchView(ctx, logger.WithField(log.ViewField, view), submissionID, view, request)
		})
	}
	fetchErr := g.Wait()

	status, err := s.Status(ctx)
	if err != nil {
		return nil, err
	}

	if fetchErr != nil {
		logger.WithError(fetchErr).Warn("reporting: submission finished with errors")
		return status, fetchErr
	}

	logger.Info("reporting: submission finished")
	return status, nil
}

// abort marca como falhos os slots já iniciados para que nenhum fique preso em Fetching
func (s *Service) abort(ctx context.Context, logger log.Logger, submissionID string, views []domain.View, cause error) {
	for _, view := range views {
		if err := s.updateSlot(ctx, view, func(slot *domain.ReportSlot) {
			slot.Fail(submissionID, cause, s.now())
		}); err != nil {
			logger.WithError(err).WithField(log.ViewField, view).Error("reporting: failed to roll back slot")
		}
	}
}

func (s *Service) fetchView(ctx context.Context, logger log.Logger, submissionID string, view domain.View, request *SubmitRequest) error {
	query, err := request.Query(view)
	if err != nil {
		return err
	}

	observations, err := s.everflow.GetObservations(ctx, query)
	if err != nil {
		logger.WithError(err).Error("reporting: failed to fetch observations, keeping previous rows")

		if updateErr := s.updateSlot(ctx, view, func(slot *domain.ReportSlot) {
			slot.Fail(submissionID, err, s.now())
		}); updateErr != nil {
			return updateErr
		}

		return NewReportErrorWithView(ErrUpstreamFetch, apiErrors.ErrExternalService, string(view), err.Error())
	}

	rows := s.synthesize(view, observations, request)

	if err := s.updateSlot(ctx, view, func(slot *domain.ReportSlot) {
		slot.Succeed(submissionID, rows, s.now())
	}); err != nil {
		return err
	}

	metrics.SlotRows.WithLabelValues(string(view)).Set(float64(len(rows)))
	logger.WithField("rows", len(rows)).Debug("reporting: view updated")

	return nil
}

func (s *Service) synthesize(view domain.View, observations []domain.RawObservation, request *SubmitRequest) []domain.SyntheticRow {
	static := request.StaticMetadata()
	rnd := synthesizing.NewRandomSource(s.seedFor(view))

	if view == domain.ViewReporting {
		return synthesizing.ReportingView(observations, static, rnd, synthesizing.ReportingOptions{
			Padding: request.Padding || s.cfg.Report.Padding,
		})
	}

	return synthesizing.CampaignView(observations, static, rnd)
}

// seedFor deriva uma semente por visão para que cada uma seja reproduzível isoladamente
func (s *Service) seedFor(view domain.View) int64 {
	seed := s.cfg.Report.RandomSeed
	if seed == 0 {
		return 0
	}
	if view == domain.ViewReporting {
		return seed + 1
	}
	return seed
}

func (s *Service) updateSlot(ctx context.Context, view domain.View, fn func(*domain.ReportSlot)) error {
	slot, err := s.slots.Update(ctx, view, func(slot *domain.ReportSlot) error {
		fn(slot)
		return nil
	})
	if err != nil {
		return NewReportErrorWithView(ErrSlotUpdate, apiErrors.ErrDatabaseOperation, string(view), err.Error())
	}

	metrics.SlotUpdatesTotal.WithLabelValues(string(view), string(slot.State)).Inc()
	return nil
}

func (s *Service) Status(ctx context.Context) (*domain.ReportStatus, error) {
	status := &domain.ReportStatus{
		Slots: make([]domain.SlotStatus, 0, len(domain.Views)),
	}

	for _, view := range domain.Views {
		slot, err := s.getSlot(ctx, view)
		if err != nil {
			return nil, err
		}

		if slot.State == domain.SlotFetching {
			status.Loading = true
		}
		status.Slots = append(status.Slots, slot.Status())
	}

	return status, nil
}

func (s *Service) Records(ctx context.Context, view domain.View) ([]domain.Record, error) {
	slot, err := s.getSlot(ctx, view)
	if err != nil {
		return nil, err
	}

	return slot.Records(), nil
}

// Export serializa a visão em CSV. Sem linhas, nada é gerado.
func (s *Service) Export(ctx context.Context, view domain.View) (*ExportFile, error) {
	slot, err := s.getSlot(ctx, view)
	if err != nil {
		return nil, err
	}

	if len(slot.Rows) == 0 {
		log.ForContext(ctx).WithField(log.ViewField, view).Warn("reporting: nothing to export")
		metrics.ExportsTotal.WithLabelValues(string(view), "empty").Inc()
		return nil, NewReportErrorWithView(ErrEmptyExport, apiErrors.ErrEmptyExport, string(view), "")
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, slot.Records()); err != nil {
		log.ForContext(ctx).WithField(log.ViewField, view).WithError(err).Error("reporting: failed to serialize export")
		metrics.ExportsTotal.WithLabelValues(string(view), "error").Inc()
		return nil, NewReportErrorWithView(ErrExportFailed, apiErrors.ErrExportFailed, string(view), err.Error())
	}

	metrics.ExportsTotal.WithLabelValues(string(view), "ok").Inc()

	return &ExportFile{
		Filename:    view.ExportFilename(),
		ContentType: "text/csv",
		Content:     buf.Bytes(),
	}, nil
}

func (s *Service) Summary(ctx context.Context, view domain.View) (*domain.ReportSummary, error) {
	slot, err := s.getSlot(ctx, view)
	if err != nil {
		return nil, err
	}

	return Summarize(view, slot.Rows), nil
}

func (s *Service) getSlot(ctx context.Context, view domain.View) (*domain.ReportSlot, error) {
	slot, err := s.slots.Get(ctx, view)
	if err != nil {
		return nil, NewReportErrorWithView(ErrSlotUpdate, apiErrors.ErrDatabaseOperation, string(view), fmt.Sprintf("erro ao ler o slot: %v", err))
	}
	return slot, nil
}

// HasSubmission indica se existe uma submissão para atualizar
func (s *Service) HasSubmission() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSubmission != nil
}

// ErrorCode extrai o código de API de um erro do caso de uso
func ErrorCode(err error) string {
	var reportErr *ReportError
	if errors.As(err, &reportErr) && reportErr.Code != "" {
		return reportErr.Code
	}
	return apiErrors.ErrInternalServer
}
