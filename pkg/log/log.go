package log

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é o subconjunto de logrus usado pela API
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

type contextKey string

const correlationIDKey contextKey = "correlation_id"

const (
	CorrelationIDField = "correlation_id"
	SubmissionIDField  = "submission_id"
	TriggerField       = "trigger"
	ViewField          = "view"
)

type logger struct {
	entry *logrus.Entry
}

// L é o logger base. Os testes podem substituí-lo.
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment considera desenvolvimento quando APP_ENV está vazio
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

// Em desenvolvimento só estes campos chegam ao log
var devFields = map[string]struct{}{
	CorrelationIDField: {},
	SubmissionIDField:  {},
	TriggerField:       {},
	ViewField:          {},
	"method":           {},
	"path":             {},
	"status_code":      {},
	"duration_ms":      {},
	"error":            {},
}

func keep(key string) bool {
	if !IsDevelopment() {
		return true
	}
	_, ok := devFields[key]
	return ok
}

func (l *logger) WithField(key string, value any) Logger {
	if !keep(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keep(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) Debug(args ...any) { l.entry.Debug(args...) }
func (l *logger) Info(args ...any)  { l.entry.Info(args...) }
func (l *logger) Warn(args ...any)  { l.entry.Warn(args...) }
func (l *logger) Error(args ...any) { l.entry.Error(args...) }

// WithCorrelationID guarda o ID no contexto. ID vazio gera um novo UUID.
func WithCorrelationID(ctx context.Context, id string) (context.Context, string) {
	if id == "" {
		id = uuid.New().String()
	}
	return context.WithValue(ctx, correlationIDKey, id), id
}

func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	if ctx == nil {
		return L
	}
	if id := GetCorrelationID(ctx); id != "" {
		return L.WithField(CorrelationIDField, id)
	}
	return L
}

// ForSubmission identifica uma execução de submissão ou atualização
func ForSubmission(ctx context.Context, submissionID, trigger string) Logger {
	return ForContext(ctx).WithFields(Fields{
		SubmissionIDField: submissionID,
		TriggerField:      trigger,
	})
}
