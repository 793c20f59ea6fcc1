package entity

import "time"

// CalendarDay es una fila del calendario operativo: fecha -> semana operativa
// (tabla calendar_cs).
type CalendarDay struct {
	Date time.Time // sin componente horario
	Week int
}
