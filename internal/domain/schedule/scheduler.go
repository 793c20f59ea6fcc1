package schedule

import (
	"sort"
	"time"

	"github.com/jhoicas/dps-scheduler/internal/domain/entity"
)

// Horarios fijos de la línea: el primer lote de la corrida arranca a las 07:00
// de su fecha nominal; los siguientes nunca antes de las 06:00 de la suya.
const (
	dayFloorHour   = 6
	firstStartHour = 7
)

// lineCursor es el estado que el planificador arrastra lote a lote dentro de
// una línea: el fin del lote anterior y el último material emitido por grupo
// de fecha. Vive solo durante una corrida y nunca se comparte entre líneas.
type lineCursor struct {
	lastFinish   time.Time
	lastMaterial string
	started      bool
}

// ScheduleLine reconstruye la línea de tiempo de una línea física: ordena sus
// registros por fecha y prioridad, y les asigna intervalos [TimeStart, TimeFinish)
// consecutivos y sin solape. El algoritmo es estrictamente secuencial: cada
// inicio depende del fin del lote anterior.
//
// Dentro de cada grupo de fecha, si el último material emitido el grupo anterior
// vuelve a aparecer, va primero (la línea sigue corriendo el mismo artículo y se
// evita un cambio de formato); el resto se ordena por material ascendente. El
// "último material" es el último emitido en orden de entrada del grupo, no el
// que termina más tarde cronológicamente.
func ScheduleLine(records []entity.ProductionRecord) []entity.Slot {
	if len(records) == 0 {
		return nil
	}

	byDate := make(map[time.Time][]entity.ProductionRecord)
	for _, rec := range records {
		key := DateOnly(rec.Date)
		byDate[key] = append(byDate[key], rec)
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	slots := make([]entity.Slot, 0, len(records))
	var cur lineCursor

	for _, date := range dates {
		group := byDate[date]
		orderGroup(group, cur.lastMaterial)

		for _, rec := range group {
			start := rec.Date.Add(firstStartHour * time.Hour)
			if cur.started {
				dayFloor := rec.Date.Add(dayFloorHour * time.Hour)
				start = dayFloor
				if cur.lastFinish.After(dayFloor) {
					start = cur.lastFinish
				}
			}
			finish := start.Add(lotDuration(rec))

			slots = append(slots, entity.Slot{
				Line:        rec.Line,
				Date:        rec.Date,
				Material:    rec.Material,
				Description: rec.Description,
				Quantity:    rec.Quantity,
				KgPerUnit:   rec.KgPerUnit,
				PackSize:    rec.PackSize,
				BulkKg:      rec.BulkKg,
				ProdHours:   rec.ProdHours,
				TimeStart:   start,
				TimeFinish:  finish,
			})

			cur.started = true
			cur.lastFinish = finish
		}

		// La heurística de continuidad se decide por grupo de fecha: el último
		// material en orden de emisión, aunque la duración cruce la medianoche.
		cur.lastMaterial = group[len(group)-1].Material
	}

	return slots
}

// orderGroup ordena in situ un grupo de fecha: primero los registros del material
// de continuidad (si lo hay), luego el resto por material ascendente. El orden es
// estable para entradas que comparten material.
func orderGroup(group []entity.ProductionRecord, lastMaterial string) {
	sort.SliceStable(group, func(i, j int) bool {
		iCont := lastMaterial != "" && group[i].Material == lastMaterial
		jCont := lastMaterial != "" && group[j].Material == lastMaterial
		if iCont != jCont {
			return iCont
		}
		return group[i].Material < group[j].Material
	})
}

// lotDuration convierte las horas de producción del registro a duración de reloj.
// Sin velocidad no hay horas: el lote ocupa cero tiempo pero queda en la línea.
func lotDuration(rec entity.ProductionRecord) time.Duration {
	if rec.ProdHours.IsZero() {
		return 0
	}
	hours := rec.ProdHours.InexactFloat64()
	return time.Duration(hours * float64(time.Hour))
}
