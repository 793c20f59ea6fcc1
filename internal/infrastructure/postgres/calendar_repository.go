package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dps-scheduler/internal/domain/entity"
	"github.com/jhoicas/dps-scheduler/internal/domain/repository"
)

var _ repository.CalendarRepository = (*CalendarRepo)(nil)

// CalendarRepo implementación del puerto CalendarRepository sobre PostgreSQL
// (tabla calendar_cs, usable con pool o tx).
type CalendarRepo struct {
	q Querier
}

// NewCalendarRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCalendarRepository(q Querier) *CalendarRepo {
	return &CalendarRepo{q: q}
}

// ListAll carga el calendario operativo completo; el caso de uso lo convierte
// en snapshot inmutable antes de la corrida.
func (r *CalendarRepo) ListAll() ([]entity.CalendarDay, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT cal_date, cal_week FROM calendar_cs ORDER BY cal_date`)
	if err != nil {
		return nil, fmt.Errorf("list calendar: %w", err)
	}
	defer rows.Close()

	var list []entity.CalendarDay
	for rows.Next() {
		var d entity.CalendarDay
		if err := rows.Scan(&d.Date, &d.Week); err != nil {
			return nil, fmt.Errorf("scan calendar day: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// ReplaceAll reemplaza el calendario completo. Pensado para ejecutarse dentro
// de una transacción (TxRunner) para que el reemplazo sea atómico.
func (r *CalendarRepo) ReplaceAll(days []entity.CalendarDay) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM calendar_cs`); err != nil {
		return fmt.Errorf("clear calendar: %w", err)
	}
	for _, d := range days {
		_, err := r.q.Exec(ctx,
			`INSERT INTO calendar_cs (cal_date, cal_week) VALUES ($1, $2)`,
			d.Date, d.Week,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("fecha duplicada %s: %w", d.Date.Format("2006-01-02"), err)
			}
			return fmt.Errorf("insert calendar day: %w", err)
		}
	}
	return nil
}
