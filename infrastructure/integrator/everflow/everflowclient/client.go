package everflowclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	everflowdomain "github.com/vfg2006/everflow-reporting-api/infrastructure/integrator/everflow/domain"
	"github.com/vfg2006/everflow-reporting-api/internal/config"
	"github.com/vfg2006/everflow-reporting-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const entityReportPath = "/v1/networks/reporting/entity"

// ErrUnauthorized indica chave de API ausente ou recusada
var ErrUnauthorized = errors.New("everflow: chave de API inválida")

type Client interface {
	GetEntityReport(ctx context.Context, request *everflowdomain.EntityReportRequest) (*everflowdomain.EntityReportResponse, error)
}

type EverflowClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Everflow.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &EverflowClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

func (c *EverflowClient) GetEntityReport(ctx context.Context, request *everflowdomain.EntityReportRequest) (*everflowdomain.EntityReportResponse, error) {
	start := time.Now()
	result := "error"
	defer func() {
		metrics.EverflowRequestDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	}()

	endpoint, err := url.Parse(c.config.Everflow.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, entityReportPath)

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a consulta")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Eflow-API-Key", c.config.Everflow.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode != http.StatusOK {
		var errResp everflowdomain.ErrorResponse
		_ = json.Unmarshal(body, &errResp)

		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"error":  errResp.Error,
		}).Warn("everflow: consulta rejeitada")

		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, errors.Wrapf(ErrUnauthorized, "status %d", resp.StatusCode)
		}
		return nil, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response everflowdomain.EntityReportResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	result = "ok"
	return &response, nil
}
