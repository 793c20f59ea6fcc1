package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dps-scheduler/internal/domain"
	"github.com/jhoicas/dps-scheduler/internal/domain/schedule"
)

// TestNewMonthWindow_Derivacion: M1 y M2 son los dos meses siguientes a M0.
func TestNewMonthWindow_Derivacion(t *testing.T) {
	w, err := schedule.NewMonthWindow(2)
	require.NoError(t, err)
	assert.Equal(t, [3]time.Month{time.February, time.March, time.April}, w.Months())
}

// TestNewMonthWindow_WrapDiciembre: diciembre envuelve a enero y febrero.
func TestNewMonthWindow_WrapDiciembre(t *testing.T) {
	w, err := schedule.NewMonthWindow(12)
	require.NoError(t, err)
	assert.Equal(t, [3]time.Month{time.December, time.January, time.February}, w.Months())
	assert.True(t, w.Contains(time.February))
	assert.False(t, w.Contains(time.March))
}

// TestNewMonthWindow_MesInvalido: fuera de 1-12 es error de entrada.
func TestNewMonthWindow_MesInvalido(t *testing.T) {
	for _, base := range []int{0, 13, -1} {
		_, err := schedule.NewMonthWindow(base)
		assert.ErrorIs(t, err, domain.ErrInvalidMonth, "base %d", base)
	}
}

// TestMonthWindow_SinComponenteDeAnio: el filtro es por mes-del-año; dos fechas
// de años distintos con el mismo mes son indistinguibles para la ventana.
func TestMonthWindow_SinComponenteDeAnio(t *testing.T) {
	w, err := schedule.NewMonthWindow(1)
	require.NoError(t, err)
	assert.True(t, w.Contains(date(2026, time.January, 10).Month()))
	assert.True(t, w.Contains(date(2030, time.January, 10).Month()))
}
