package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/everflow-reporting-api/internal/config"
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
)

var (
	ErrNothingToRefresh = errors.New("nenhuma submissão para atualizar")
	ErrRefreshRunning   = errors.New("atualização já em andamento")
)

// ReportRefresher executa novamente a última submissão aceita
type ReportRefresher interface {
	Refresh(ctx context.Context) (*domain.ReportStatus, error)
	HasSubmission() bool
}

// ReportRefreshConfig representa a configuração do agendador de atualização
type ReportRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReportRefreshService agenda a atualização periódica dos slots de relatório
type ReportRefreshService struct {
	scheduler           *gocron.Scheduler
	config              ReportRefreshConfig
	refresher           ReportRefresher
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewReportRefreshService(refresher ReportRefresher, appConfig *config.Config) *ReportRefreshService {
	refreshConfig := ReportRefreshConfig{
		CronSchedule: appConfig.ReportRefresh.CronSchedule,
		SyncEnabled:  appConfig.ReportRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização de relatórios carregada")

	return &ReportRefreshService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    refreshConfig,
		refresher: refresher,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *ReportRefreshService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Atualização de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// refresh executa a última submissão, ignorando se outra execução estiver em andamento
func (s *ReportRefreshService) refresh() {
	if !s.tryBegin() {
		logrus.Info("Atualização de relatórios já em andamento, ignorando")
		return
	}
	defer s.finish()

	s.run()
}

func (s *ReportRefreshService) run() {
	if !s.refresher.HasSubmission() {
		logrus.Debug("Nenhuma submissão registrada, nada para atualizar")
		return
	}

	startTime := time.Now()
	logrus.Info("Iniciando atualização dos relatórios")

	status, err := s.refresher.Refresh(s.baseCtx)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao atualizar relatórios")
		return
	}

	fields := logrus.Fields{"duration": time.Since(startTime).String()}
	for _, slot := range status.Slots {
		fields[string(slot.View)] = slot.RowCount
	}
	logrus.WithFields(fields).Info("Atualização de relatórios concluída")
}

func (s *ReportRefreshService) tryBegin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *ReportRefreshService) finish() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma atualização em background
func (s *ReportRefreshService) TriggerManualSync() error {
	if !s.refresher.HasSubmission() {
		return ErrNothingToRefresh
	}

	if !s.tryBegin() {
		logrus.Info("Atualização de relatórios já em andamento, ignorando solicitação manual")
		return ErrRefreshRunning
	}

	logrus.Info("Iniciando atualização manual de relatórios")

	go func() {
		defer s.finish()
		s.run()
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *ReportRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"has_submission":         s.refresher.HasSubmission(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
