package domain

import (
	"fmt"
	"time"
)

type View string

const (
	ViewCampaign  View = "campaign"
	ViewReporting View = "reporting"
)

// Views lista as visões produzidas a cada submissão
var Views = []View{ViewCampaign, ViewReporting}

func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewCampaign, ViewReporting:
		return View(s), nil
	default:
		return "", fmt.Errorf("visão desconhecida: %q", s)
	}
}

// ReportColumns retorna as colunas consultadas no Everflow para a visão
func (v View) ReportColumns() []string {
	if v == ViewReporting {
		return []string{"offer", "affiliate", "date", "platform"}
	}
	return []string{"offer", "affiliate", "date"}
}

// IncludesPlacement indica se platform/placement fazem parte dos registros exportados
func (v View) IncludesPlacement() bool {
	return v == ViewReporting
}

func (v View) ExportFilename() string {
	return fmt.Sprintf("%s_data.csv", v)
}

type SlotState string

const (
	SlotIdle      SlotState = "idle"
	SlotFetching  SlotState = "fetching"
	SlotSucceeded SlotState = "succeeded"
	SlotFailed    SlotState = "failed"
)

// ReportSlot guarda o último resultado válido de uma visão.
// Não há controle de sequência: a última busca a terminar sobrescreve o slot.
type ReportSlot struct {
	View         View           `json:"view"`
	State        SlotState      `json:"state"`
	SubmissionID string         `json:"submission_id"`
	Rows         []SyntheticRow `json:"rows"`
	Error        string         `json:"error,omitempty"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func NewReportSlot(view View) *ReportSlot {
	return &ReportSlot{
		View:  view,
		State: SlotIdle,
		Rows:  make([]SyntheticRow, 0),
	}
}

// Begin marca o slot como em busca, mantendo as linhas atuais
func (s *ReportSlot) Begin(submissionID string, now time.Time) {
	s.State = SlotFetching
	s.SubmissionID = submissionID
	s.Error = ""
	s.UpdatedAt = now
}

// Succeed substitui as linhas do slot pelo novo resultado
func (s *ReportSlot) Succeed(submissionID string, rows []SyntheticRow, now time.Time) {
	s.State = SlotSucceeded
	s.SubmissionID = submissionID
	s.Rows = rows
	s.Error = ""
	s.UpdatedAt = now
}

// Fail registra a falha sem tocar nas linhas anteriores
func (s *ReportSlot) Fail(submissionID string, err error, now time.Time) {
	s.State = SlotFailed
	s.SubmissionID = submissionID
	if err != nil {
		s.Error = err.Error()
	}
	s.UpdatedAt = now
}

func (s *ReportSlot) Clone() *ReportSlot {
	clone := *s
	clone.Rows = make([]SyntheticRow, len(s.Rows))
	for i, row := range s.Rows {
		row.Metadata = row.Metadata.Clone()
		clone.Rows[i] = row
	}
	return &clone
}

// Records projeta as linhas do slot para consumo externo
func (s *ReportSlot) Records() []Record {
	records := make([]Record, 0, len(s.Rows))
	for _, row := range s.Rows {
		records = append(records, row.Record(s.View.IncludesPlacement()))
	}
	return records
}

// SlotStatus é o resumo do estado de um slot
type SlotStatus struct {
	View         View      `json:"view"`
	State        SlotState `json:"state"`
	SubmissionID string    `json:"submission_id,omitempty"`
	RowCount     int       `json:"row_count"`
	Error        string    `json:"error,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *ReportSlot) Status() SlotStatus {
	return SlotStatus{
		View:         s.View,
		State:        s.State,
		SubmissionID: s.SubmissionID,
		RowCount:     len(s.Rows),
		Error:        s.Error,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ReportStatus agrega os slots. Loading é apenas informativo, não é uma trava.
type ReportStatus struct {
	Loading bool         `json:"loading"`
	Slots   []SlotStatus `json:"slots"`
}
