package schedule

import (
	"time"

	"github.com/jhoicas/dps-scheduler/internal/domain"
)

// MonthWindow es la ventana rodante de 3 meses del ciclo de planificación:
// el mes base M0 más los dos siguientes, con wrap de diciembre a enero.
// El filtro compara solo mes-del-año, sin componente de año: un slot de otro
// año cuyo mes caiga en la ventana pasa igual.
type MonthWindow struct {
	M0, M1, M2 time.Month
}

// NewMonthWindow deriva la ventana desde el mes base (1-12).
func NewMonthWindow(base int) (MonthWindow, error) {
	if base < 1 || base > 12 {
		return MonthWindow{}, domain.ErrInvalidMonth
	}
	m1 := (base % 12) + 1
	m2 := (m1 % 12) + 1
	return MonthWindow{
		M0: time.Month(base),
		M1: time.Month(m1),
		M2: time.Month(m2),
	}, nil
}

// Contains indica si un mes pertenece a la ventana.
func (w MonthWindow) Contains(m time.Month) bool {
	return m == w.M0 || m == w.M1 || m == w.M2
}

// Months devuelve los tres meses en orden M0, M1, M2.
func (w MonthWindow) Months() [3]time.Month {
	return [3]time.Month{w.M0, w.M1, w.M2}
}
