package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/dps-scheduler/internal/domain/entity"
)

// releaseOffsetDays días calendario entre fin de producción y liberación.
const releaseOffsetDays = 5

// PlanRelease restringe los slots de una línea a la ventana M0-M2 y anota la
// metadata de liberación. El filtro compara el mes de TimeFinish contra la
// ventana; los sobrevivientes se reordenan por TimeStart porque el filtro puede
// dejar huecos fuera de orden.
func PlanRelease(slots []entity.Slot, window MonthWindow, calendar CalendarLookup) []entity.Slot {
	kept := make([]entity.Slot, 0, len(slots))
	for _, s := range slots {
		if window.Contains(s.TimeFinish.Month()) {
			kept = append(kept, s)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].TimeStart.Before(kept[j].TimeStart) })

	for i := range kept {
		rt := ReleaseTime(kept[i].TimeFinish)
		kept[i].ReleaseTime = rt
		kept[i].ReleaseIdent = ReleaseIdent(rt)
		if wk, ok := calendar.Week(rt); ok {
			week := wk
			kept[i].ReleaseWeek = &week
		}
	}
	return kept
}

// ReleaseTime calcula el instante de liberación: fin de producción + 5 días
// calendario, corrido a lunes si cae en fin de semana (sábado +2, domingo +1).
// Nunca devuelve sábado ni domingo.
func ReleaseTime(finish time.Time) time.Time {
	rt := finish.AddDate(0, 0, releaseOffsetDays)
	switch rt.Weekday() {
	case time.Saturday:
		rt = rt.AddDate(0, 0, 2)
	case time.Sunday:
		rt = rt.AddDate(0, 0, 1)
	}
	return rt
}

// ReleaseIdent arma el identificador compacto "{día}{mes}{año}" sin ceros a la
// izquierda ni separadores (5 de marzo de 2026 -> "532026"). No es único; es un
// tag de ordenación/join para el reporte aguas abajo.
func ReleaseIdent(rt time.Time) string {
	return fmt.Sprintf("%d%d%d", rt.Day(), int(rt.Month()), rt.Year())
}
