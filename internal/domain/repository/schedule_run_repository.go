package repository

import "github.com/jhoicas/dps-scheduler/internal/domain/entity"

// ScheduleRunRepository persiste los resúmenes de corridas DPS.
// Los slots no se persisten: son salida terminal de cada corrida.
type ScheduleRunRepository interface {
	Create(run *entity.ScheduleRun) error
	ListRecent(limit int) ([]*entity.ScheduleRun, error)
}
