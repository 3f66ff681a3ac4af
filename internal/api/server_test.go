package api

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/everflow-reporting-api/internal/config"
	"github.com/vfg2006/everflow-reporting-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

type noopRefreshJob struct{}

func (noopRefreshJob) TriggerManualSync() error  { return nil }
func (noopRefreshJob) GetStatus() map[string]any { return map[string]any{} }

func testConfig(port string) *config.Config {
	return &config.Config{
		Server:   config.Server{Host: "127.0.0.1", Port: port},
		Everflow: config.Everflow{Timeout: time.Second},
		Cors:     config.Cors{AllowedOrigins: []string{"*"}},
	}
}

func TestServer_RunRunsShutdownHooksInOrder(t *testing.T) {
	reporter := mocks.NewMockReporter(gomock.NewController(t))

	var calls []string
	srv, err := New(testConfig("0"), reporter, noopRefreshJob{},
		OnShutdown("scheduler", func(context.Context) error {
			calls = append(calls, "scheduler")
			return nil
		}),
		OnShutdown("database", func(context.Context) error {
			calls = append(calls, "database")
			return errors.New("close failed")
		}),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "database: close failed")
	case <-time.After(5 * time.Second):
		t.Fatal("Run não retornou após o cancelamento")
	}
	assert.Equal(t, []string{"scheduler", "database"}, calls)
}

func TestServer_RunFailsWhenPortIsTaken(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	_, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)

	reporter := mocks.NewMockReporter(gomock.NewController(t))
	srv, err := New(testConfig(port), reporter, noopRefreshJob{})
	require.NoError(t, err)

	assert.Error(t, srv.Run(context.Background()))
}
