package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/everflow-reporting-api/internal/api/handler"
	"github.com/vfg2006/everflow-reporting-api/internal/api/handler/router"
	"github.com/vfg2006/everflow-reporting-api/internal/config"
	"github.com/vfg2006/everflow-reporting-api/internal/usecases/reporting"
	"github.com/vfg2006/everflow-reporting-api/pkg/middleware"
)

// Margem sobre o timeout do Everflow para as submissões em andamento terminarem
const shutdownGrace = 5 * time.Second

type shutdownHook struct {
	name string
	fn   func(context.Context) error
}

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	healthChecks    []handler.HealthCheck
	hooks           []shutdownHook
}

type Option func(*Server)

// WithHealthCheck inclui uma dependência no /healthcheck
func WithHealthCheck(name string, check func(context.Context) error) Option {
	return func(s *Server) {
		s.healthChecks = append(s.healthChecks, handler.HealthCheck{Name: name, Check: check})
	}
}

// OnShutdown registra uma limpeza executada depois que o HTTP para, na ordem de registro
func OnShutdown(name string, fn func(context.Context) error) Option {
	return func(s *Server) {
		s.hooks = append(s.hooks, shutdownHook{name: name, fn: fn})
	}
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	refreshJob handler.RefreshJob,
	opts ...Option,
) (*Server, error) {
	srv := &Server{
		shutdownTimeout: config.Everflow.Timeout + shutdownGrace,
	}
	for _, opt := range opts {
		opt(srv)
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(srv.healthChecks...)...),
		router.WithRoutes(handler.Reports(reporter)...),
		router.WithRoutes(handler.CronJobs(refreshJob)...),
	)

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(config.Everflow.Timeout),
		middleware.Cors(config.Cors.AllowedOrigins),
	)

	srv.httpServer = &http.Server{
		Addr:              net.JoinHostPort(config.Server.Host, config.Server.Port),
		Handler:           chain.Then(rt),
		ReadHeaderTimeout: 2 * time.Second,
		// A submissão espera as duas consultas ao Everflow
		WriteTimeout: config.Everflow.Timeout + shutdownGrace,
	}

	return srv, nil
}

// Run atende até SIGINT/SIGTERM ou o cancelamento de ctx e então desliga.
// Uma falha ao abrir a porta é retornada imediatamente.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("erro ao abrir %s: %w", s.httpServer.Addr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", listener.Addr().String()).Info("Servidor iniciando")
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("erro durante a execução do servidor: %w", err)
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Encerramento solicitado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}

// Shutdown para o HTTP e executa os hooks mesmo se o HTTP falhar
func (s *Server) Shutdown(ctx context.Context) error {
	logrus.WithField("timeout", s.shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	errs := make([]error, 0, len(s.hooks)+1)
	if err := s.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http: %w", err))
	}

	for _, hook := range s.hooks {
		if err := hook.fn(ctx); err != nil {
			logrus.WithError(err).WithField("hook", hook.name).Error("Erro na limpeza do desligamento")
			errs = append(errs, fmt.Errorf("%s: %w", hook.name, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
