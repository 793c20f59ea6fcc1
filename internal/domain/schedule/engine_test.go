package schedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dps-scheduler/internal/domain/schedule"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor completo: normalizador -> planificador por línea (concurrente)
// -> filtro de ventana y liberación.
// ──────────────────────────────────────────────────────────────────────────────

func engineFixture() []schedule.RawRow {
	return []schedule.RawRow{
		raw("AB", "2026-01-10", "X1", 240),
		raw("AB", "2026-01-10", "X2", 120),
		raw("CD", "2026-01-10", "X1", 60),
		raw("CD", "2026-01-12", "X2", 40),
		raw("GH", "2026-01-11", "X2", 80),
		raw("ZZ", "2026-01-10", "X1", 10), // línea inválida: descartada
		raw("AB", "2026-01-10", "X1", 99), // duplicado: descartado
	}
}

// TestEngine_ParticionaPorLinea: cada línea recibe su propia línea de tiempo
// independiente; las líneas sin slots no aparecen.
func TestEngine_ParticionaPorLinea(t *testing.T) {
	eng := schedule.NewEngine(testLines)
	window, err := schedule.NewMonthWindow(1)
	require.NoError(t, err)

	res, err := eng.Schedule(context.Background(), engineFixture(), window, schedule.CalendarLookup{}, testSKUs())
	require.NoError(t, err)

	assert.Equal(t, []string{"AB", "CD", "GH"}, res.LineCodes())
	assert.Equal(t, 5, res.Report.Accepted)
	assert.Equal(t, 2, res.Report.Rejected())
	assert.Equal(t, 5, res.SlotsOut)

	// Dentro de cada línea los intervalos no se solapan.
	for _, line := range res.LineCodes() {
		slots := res.Lines[line]
		for i := 1; i < len(slots); i++ {
			assert.False(t, slots[i].TimeStart.Before(slots[i-1].TimeFinish),
				"línea %s: slots %d y %d se solapan", line, i-1, i)
		}
	}
}

// TestEngine_Idempotente: dos corridas sobre la misma entrada y los mismos
// snapshots producen resultados idénticos, sin importar el orden de los workers.
func TestEngine_Idempotente(t *testing.T) {
	eng := schedule.NewEngine(testLines)
	window, err := schedule.NewMonthWindow(1)
	require.NoError(t, err)
	cal := schedule.CalendarLookup{date(2026, time.January, 16): 3}

	first, err := eng.Schedule(context.Background(), engineFixture(), window, cal, testSKUs())
	require.NoError(t, err)
	second, err := eng.Schedule(context.Background(), engineFixture(), window, cal, testSKUs())
	require.NoError(t, err)

	assert.Equal(t, first.Lines, second.Lines)
	assert.Equal(t, first.Report, second.Report)
}

// TestEngine_VentanaExcluyeTodo: una corrida cuyo resultado queda vacío tras el
// filtro es un resultado válido, no un error.
func TestEngine_VentanaExcluyeTodo(t *testing.T) {
	eng := schedule.NewEngine(testLines)
	window, err := schedule.NewMonthWindow(6) // {6,7,8}: nada de enero pasa
	require.NoError(t, err)

	res, err := eng.Schedule(context.Background(), engineFixture(), window, schedule.CalendarLookup{}, testSKUs())
	require.NoError(t, err)
	assert.Empty(t, res.Lines)
	assert.Zero(t, res.SlotsOut)
}

// TestEngine_SinFilas: una corrida sin filas es válida.
func TestEngine_SinFilas(t *testing.T) {
	eng := schedule.NewEngine(testLines)
	window, err := schedule.NewMonthWindow(1)
	require.NoError(t, err)

	res, err := eng.Schedule(context.Background(), nil, window, schedule.CalendarLookup{}, testSKUs())
	require.NoError(t, err)
	assert.Empty(t, res.Lines)
	assert.Zero(t, res.Report.RowsIn)
}
