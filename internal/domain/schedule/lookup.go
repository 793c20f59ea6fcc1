package schedule

import (
	"time"

	"github.com/jhoicas/dps-scheduler/internal/domain/entity"
)

// CalendarLookup mapea fecha -> semana operativa. Es un snapshot inmutable
// construido una vez al inicio de la corrida; el motor no hace I/O.
type CalendarLookup map[time.Time]int

// Week devuelve la semana operativa de una fecha, o (0, false) si no existe.
func (c CalendarLookup) Week(date time.Time) (int, bool) {
	wk, ok := c[DateOnly(date)]
	return wk, ok
}

// SKULookup mapea material -> fila del maestro. Snapshot inmutable por corrida.
type SKULookup map[string]entity.SKUInfo

// Get devuelve la fila del maestro para un material, o (zero, false) si no existe.
func (s SKULookup) Get(material string) (entity.SKUInfo, bool) {
	info, ok := s[material]
	return info, ok
}

// DateOnly normaliza un instante a su fecha (medianoche UTC), la clave canónica
// de agrupación y de lookup de calendario en todo el motor.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
