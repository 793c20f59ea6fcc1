package repository

import "github.com/jhoicas/dps-scheduler/internal/domain/entity"

// CalendarRepository define el puerto de persistencia para el calendario
// operativo (tabla calendar_cs). El motor solo consume ListAll como snapshot.
type CalendarRepository interface {
	ListAll() ([]entity.CalendarDay, error)
	ReplaceAll(days []entity.CalendarDay) error
}
