package schedule_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dps-scheduler/internal/domain/entity"
	"github.com/jhoicas/dps-scheduler/internal/domain/schedule"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del planificador secuencial por línea.
//
// La propiedad central es que una línea física es un recurso serial: los
// intervalos [TimeStart, TimeFinish) no pueden solaparse y cada inicio depende
// del fin del lote anterior.
// ──────────────────────────────────────────────────────────────────────────────

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func rec(line string, d time.Time, material string, qty, speed int64) entity.ProductionRecord {
	r := entity.ProductionRecord{
		Line:     line,
		Date:     d,
		Material: material,
		Quantity: decimal.NewFromInt(qty),
		Speed:    decimal.NewFromInt(speed),
	}
	if speed > 0 {
		r.ProdHours = r.Quantity.Div(r.Speed)
	}
	return r
}

// TestScheduleLine_MismoDiaOrdenAlfabetico: dos lotes el mismo día sin material
// previo se ordenan por material ascendente; el segundo arranca exactamente
// donde termina el primero porque el fin anterior supera el piso de las 06:00.
func TestScheduleLine_MismoDiaOrdenAlfabetico(t *testing.T) {
	d := date(2026, time.January, 10)
	slots := schedule.ScheduleLine([]entity.ProductionRecord{
		rec("AB", d, "X2", 120, 10), // 12 h
		rec("AB", d, "X1", 240, 10), // 24 h
	})
	require.Len(t, slots, 2)

	assert.Equal(t, "X1", slots[0].Material, "sin continuidad el orden es alfabético")
	assert.Equal(t, at(2026, time.January, 10, 7, 0), slots[0].TimeStart, "el primer lote de la línea arranca a las 07:00")
	assert.Equal(t, at(2026, time.January, 11, 7, 0), slots[0].TimeFinish)

	assert.Equal(t, "X2", slots[1].Material)
	assert.Equal(t, at(2026, time.January, 11, 7, 0), slots[1].TimeStart, "retoma justo donde terminó el anterior")
	assert.Equal(t, at(2026, time.January, 11, 19, 0), slots[1].TimeFinish)
}

// TestScheduleLine_ContinuidadNoAplica: el material de continuidad es el último
// emitido en orden de entrada del grupo anterior, no el que termina más tarde.
// Tras el 10-01 (X1, X2) el último emitido es X2; X1 el 11-01 no recibe
// prioridad y el grupo se ordena alfabético puro.
func TestScheduleLine_ContinuidadNoAplica(t *testing.T) {
	d1 := date(2026, time.January, 10)
	d2 := date(2026, time.January, 11)
	slots := schedule.ScheduleLine([]entity.ProductionRecord{
		rec("AB", d1, "X1", 240, 10),
		rec("AB", d1, "X2", 120, 10),
		rec("AB", d2, "X1", 60, 10),
		rec("AB", d2, "A9", 60, 10),
	})
	require.Len(t, slots, 4)
	assert.Equal(t, "A9", slots[2].Material, "X1 no es el último emitido del día anterior: orden alfabético")
	assert.Equal(t, "X1", slots[3].Material)
}

// TestScheduleLine_ContinuidadPrioriza: si el último material emitido el día
// anterior vuelve a aparecer, va primero aunque alfabéticamente no lo sea.
func TestScheduleLine_ContinuidadPrioriza(t *testing.T) {
	d1 := date(2026, time.March, 2)
	d2 := date(2026, time.March, 3)
	slots := schedule.ScheduleLine([]entity.ProductionRecord{
		rec("CD", d1, "M1", 10, 10),
		rec("CD", d1, "M2", 10, 10),
		rec("CD", d2, "A1", 10, 10),
		rec("CD", d2, "M2", 10, 10),
	})
	require.Len(t, slots, 4)
	assert.Equal(t, "M2", slots[2].Material, "la línea sigue corriendo el mismo artículo del día anterior")
	assert.Equal(t, "A1", slots[3].Material)
}

// TestScheduleLine_PisoDeLasSeis: si el lote anterior terminó antes de las 06:00
// de la fecha nominal del siguiente, la línea espera al piso de las 06:00.
func TestScheduleLine_PisoDeLasSeis(t *testing.T) {
	d1 := date(2026, time.January, 10)
	d2 := date(2026, time.January, 12)
	slots := schedule.ScheduleLine([]entity.ProductionRecord{
		rec("AB", d1, "X1", 20, 10), // 2 h: termina 10-01 09:00
		rec("AB", d2, "X1", 20, 10),
	})
	require.Len(t, slots, 2)
	assert.Equal(t, at(2026, time.January, 10, 9, 0), slots[0].TimeFinish)
	assert.Equal(t, at(2026, time.January, 12, 6, 0), slots[1].TimeStart, "espera a las 06:00 de su fecha nominal")
}

// TestScheduleLine_SinVelocidadDuracionCero: un lote sin velocidad ocupa cero
// tiempo pero permanece en la línea de tiempo y no bloquea a los siguientes.
func TestScheduleLine_SinVelocidadDuracionCero(t *testing.T) {
	d := date(2026, time.January, 10)
	slots := schedule.ScheduleLine([]entity.ProductionRecord{
		rec("AB", d, "X1", 100, 0),
		rec("AB", d, "X2", 120, 10),
	})
	require.Len(t, slots, 2)
	assert.Equal(t, slots[0].TimeStart, slots[0].TimeFinish, "sin velocidad la duración es cero")
	assert.Equal(t, at(2026, time.January, 10, 7, 0), slots[1].TimeStart)
}

// TestScheduleLine_SinRegistros: una línea vacía produce una línea de tiempo
// vacía, no un error.
func TestScheduleLine_SinRegistros(t *testing.T) {
	assert.Empty(t, schedule.ScheduleLine(nil))
}

// TestScheduleLine_PropiedadesInvariantes recorre un backlog de varios días y
// verifica las tres garantías estructurales: orden cronológico, no solape y
// que ningún inicio retrocede respecto del fin anterior.
func TestScheduleLine_PropiedadesInvariantes(t *testing.T) {
	var records []entity.ProductionRecord
	materials := []string{"X1", "X2", "B7", "Z3"}
	for day := 5; day < 12; day++ {
		for i, m := range materials {
			records = append(records, rec("GH", date(2026, time.February, day), m, int64(200+30*i), 10))
		}
	}
	slots := schedule.ScheduleLine(records)
	require.Len(t, slots, len(records))

	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		assert.False(t, cur.TimeStart.Before(prev.TimeFinish),
			"slot %d arranca antes del fin del anterior: %s < %s", i, cur.TimeStart, prev.TimeFinish)
		assert.False(t, cur.TimeStart.Before(prev.TimeStart), "la salida debe ser cronológica")
	}
	for i, s := range slots {
		floor := s.Date.Add(6 * time.Hour)
		if i == 0 {
			assert.Equal(t, s.Date.Add(7*time.Hour), s.TimeStart, "el primer lote arranca a las 07:00")
			continue
		}
		assert.False(t, s.TimeStart.Before(floor), "slot %d viola el piso de las 06:00", i)
	}
}

// TestScheduleLine_Determinista: dos corridas sobre la misma entrada producen
// exactamente la misma salida.
func TestScheduleLine_Determinista(t *testing.T) {
	records := []entity.ProductionRecord{
		rec("AB", date(2026, time.January, 10), "X2", 120, 10),
		rec("AB", date(2026, time.January, 10), "X1", 240, 10),
		rec("AB", date(2026, time.January, 11), "X1", 60, 10),
	}
	first := schedule.ScheduleLine(records)
	second := schedule.ScheduleLine(records)
	assert.Equal(t, first, second)
}
