package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/everflow-reporting-api/infrastructure/database/postgres"
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const reportSlotsTable = "report_slots"

// ReportSlotRepository guarda o slot atual de cada visão.
// Update aplica fn sobre o estado corrente de forma atômica.
type ReportSlotRepository interface {
	Get(ctx context.Context, view domain.View) (*domain.ReportSlot, error)
	Update(ctx context.Context, view domain.View, fn func(*domain.ReportSlot) error) (*domain.ReportSlot, error)
}

type reportSlotRepository struct {
	conn postgres.Conn
}

func NewReportSlotRepository(conn postgres.Conn) ReportSlotRepository {
	return &reportSlotRepository{
		conn: conn,
	}
}

func (r *reportSlotRepository) Get(ctx context.Context, view domain.View) (*domain.ReportSlot, error) {
	return r.get(ctx, r.conn, view, false)
}

func (r *reportSlotRepository) Update(ctx context.Context, view domain.View, fn func(*domain.ReportSlot) error) (*domain.ReportSlot, error) {
	var updated *domain.ReportSlot

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		slot, err := r.get(ctx, tx, view, true)
		if err != nil {
			return err
		}

		if err := fn(slot); err != nil {
			return err
		}

		if err := r.save(ctx, tx, slot); err != nil {
			return err
		}

		updated = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *reportSlotRepository) get(ctx context.Context, q postgres.Queryer, view domain.View, forUpdate bool) (*domain.ReportSlot, error) {
	query := squirrel.
		Select("view, state, submission_id, rows, error, updated_at").
		From(reportSlotsTable).
		Where(squirrel.Eq{"view": string(view)}).
		PlaceholderFormat(squirrel.Dollar)

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	slot, err := r.deserializeSlot(q.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewReportSlot(view), nil
		}
		return nil, err
	}

	return slot, nil
}

func (r *reportSlotRepository) deserializeSlot(row *sql.Row) (*domain.ReportSlot, error) {
	var (
		view, state  string
		submissionID sql.NullString
		rowsJSON     []byte
		errMessage   sql.NullString
		updatedAt    time.Time
	)

	if err := row.Scan(&view, &state, &submissionID, &rowsJSON, &errMessage, &updatedAt); err != nil {
		return nil, err
	}

	rows := make([]domain.SyntheticRow, 0)
	if len(rowsJSON) > 0 {
		if err := json.Unmarshal(rowsJSON, &rows); err != nil {
			return nil, fmt.Errorf("erro ao desserializar as linhas do slot %s: %w", view, err)
		}
	}

	return &domain.ReportSlot{
		View:         domain.View(view),
		State:        domain.SlotState(state),
		SubmissionID: submissionID.String,
		Rows:         rows,
		Error:        errMessage.String,
		UpdatedAt:    updatedAt,
	}, nil
}

func (r *reportSlotRepository) save(ctx context.Context, q postgres.Queryer, slot *domain.ReportSlot) error {
	rowsJSON, err := json.Marshal(slot.Rows)
	if err != nil {
		return fmt.Errorf("erro ao serializar as linhas para JSON: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert(reportSlotsTable).
		Columns("view", "state", "submission_id", "rows", "error", "updated_at").
		Values(
			string(slot.View),
			string(slot.State),
			slot.SubmissionID,
			rowsJSON,
			slot.Error,
			slot.UpdatedAt,
		).
		Suffix(`
			ON CONFLICT (view) DO UPDATE SET
				state = EXCLUDED.state,
				submission_id = EXCLUDED.submission_id,
				rows = EXCLUDED.rows,
				error = EXCLUDED.error,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = q.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			logrus.WithFields(logrus.Fields{
				"view": slot.View,
				"code": pqErr.Code,
			}).Error("repository: failed to save report slot")
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
