package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/everflow-reporting-api/infrastructure/database/postgres"
	"github.com/vfg2006/everflow-reporting-api/infrastructure/integrator/everflow"
	"github.com/vfg2006/everflow-reporting-api/infrastructure/integrator/everflow/everflowclient"
	"github.com/vfg2006/everflow-reporting-api/infrastructure/repository"
	"github.com/vfg2006/everflow-reporting-api/internal/api"
	"github.com/vfg2006/everflow-reporting-api/internal/config"
	"github.com/vfg2006/everflow-reporting-api/internal/scheduler"
	"github.com/vfg2006/everflow-reporting-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		slotRepo   repository.ReportSlotRepository
		serverOpts []api.Option
	)
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		slotRepo = repository.NewReportSlotRepository(pgConn)
		serverOpts = append(serverOpts,
			api.WithHealthCheck("database", pgConn.Ping),
			api.OnShutdown("database", func(context.Context) error { return pgConn.Close() }),
		)
	} else {
		logrus.Info("Banco de dados desabilitado, slots de relatório mantidos em memória")
		slotRepo = repository.NewMemoryReportSlotRepository()
	}

	everflowClient := everflowclient.NewClient(cfg)
	everflowIntegrator := everflow.New(cfg, everflowClient)

	reportService := reporting.NewService(cfg, everflowIntegrator, slotRepo)

	refreshService := scheduler.NewReportRefreshService(reportService, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de relatórios")
	} else {
		logrus.Info("Agendador de atualização de relatórios iniciado com sucesso")
	}

	server, err := api.New(cfg, reportService, refreshService, serverOpts...)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn abre o pool do PostgreSQL ou encerra o processo
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
