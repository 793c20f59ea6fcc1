package schedule

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/dps-scheduler/internal/domain/entity"
)

// Result es la salida de una corrida del motor: slots por línea más el reporte
// del normalizador y los totales.
type Result struct {
	Lines    map[string][]entity.Slot
	Report   NormalizeReport
	SlotsOut int
}

// LineCodes devuelve los códigos de línea con slots, ordenados, para que la
// salida sea reproducible independiente del orden de los workers.
func (r *Result) LineCodes() []string {
	codes := make([]string, 0, len(r.Lines))
	for code := range r.Lines {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Engine es el motor DPS completo: normalizador -> planificador por línea ->
// filtro de ventana y liberación. Función pura de sus entradas más los dos
// snapshots de lookup; sin estado global.
type Engine struct {
	normalizer *Normalizer
}

// NewEngine construye el motor con el conjunto de líneas válidas.
func NewEngine(validLines []string) *Engine {
	return &Engine{normalizer: NewNormalizer(validLines)}
}

// Schedule ejecuta la corrida completa. Cada línea se programa en su propia
// goroutine: las líneas no comparten estado mutable, solo la recolección del
// resultado necesita sincronización. Dentro de una línea el proceso es
// estrictamente secuencial.
//
// Una línea sin slots tras el filtro no aparece en el resultado; una corrida
// sin slots es un resultado válido, no un error.
func (e *Engine) Schedule(ctx context.Context, rows []RawRow, window MonthWindow, calendar CalendarLookup, skus SKULookup) (*Result, error) {
	byLine, report := e.normalizer.Normalize(rows, skus)

	result := &Result{
		Lines:  make(map[string][]entity.Slot, len(byLine)),
		Report: report,
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for line, records := range byLine {
		line, records := line, records
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slots := PlanRelease(ScheduleLine(records), window, calendar)
			if len(slots) == 0 {
				return nil
			}
			mu.Lock()
			result.Lines[line] = slots
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, slots := range result.Lines {
		result.SlotsOut += len(slots)
	}
	return result, nil
}
