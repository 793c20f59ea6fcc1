package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/dps-scheduler/internal/domain/entity"
	"github.com/jhoicas/dps-scheduler/internal/domain/repository"
)

var _ repository.ScheduleRunRepository = (*ScheduleRunRepo)(nil)

// ScheduleRunRepo implementación sobre PostgreSQL (tabla schedule_runs).
type ScheduleRunRepo struct {
	q Querier
}

// NewScheduleRunRepository construye el adaptador. Pasar pool o tx (Querier).
func NewScheduleRunRepository(q Querier) *ScheduleRunRepo {
	return &ScheduleRunRepo{q: q}
}

// Create persiste el resumen de una corrida.
func (r *ScheduleRunRepo) Create(run *entity.ScheduleRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	query := `
		INSERT INTO schedule_runs (id, base_month, rows_in, records_used, rejected, slots_out, lines, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	createdBy := (*string)(nil)
	if run.CreatedBy != "" {
		createdBy = &run.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		run.ID, run.BaseMonth, run.RowsIn, run.RecordsUsed, run.Rejected,
		run.SlotsOut, run.Lines, createdBy, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert schedule run: %w", err)
	}
	return nil
}

// ListRecent lista los resúmenes de corrida más recientes.
func (r *ScheduleRunRepo) ListRecent(limit int) ([]*entity.ScheduleRun, error) {
	query := `
		SELECT id, base_month, rows_in, records_used, rejected, slots_out, lines, COALESCE(created_by, ''), created_at
		FROM schedule_runs ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list schedule runs: %w", err)
	}
	defer rows.Close()

	var list []*entity.ScheduleRun
	for rows.Next() {
		var run entity.ScheduleRun
		if err := rows.Scan(&run.ID, &run.BaseMonth, &run.RowsIn, &run.RecordsUsed, &run.Rejected,
			&run.SlotsOut, &run.Lines, &run.CreatedBy, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan schedule run: %w", err)
		}
		list = append(list, &run)
	}
	return list, rows.Err()
}
