package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de relatórios
var (
	// Erros de validação
	ErrInvalidSubmission = errors.New("invalid submission")
	ErrInvalidDateRange  = errors.New("invalid date range")

	// Erros de serviços externos
	ErrUpstreamFetch = errors.New("error fetching report from Everflow")

	// Erros de exportação
	ErrEmptyExport  = errors.New("no data to export")
	ErrExportFailed = errors.New("error serializing export")

	ErrNoSubmission = errors.New("no submission to refresh")
	ErrGenerateID   = errors.New("error generating submission ID")
	ErrSlotUpdate   = errors.New("error updating report slot")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	View    string // Visão envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewReportErrorWithView cria um novo ReportError com a visão envolvida
func NewReportErrorWithView(err error, code string, view string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		View:    view,
		Details: details,
	}
}
