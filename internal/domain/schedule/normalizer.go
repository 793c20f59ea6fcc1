package schedule

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dps-scheduler/internal/domain/entity"
)

// RawRow es una tupla cruda (línea, fecha, material, cantidad) tal como llega
// de la capa de ingesta, antes de validar y enriquecer.
type RawRow struct {
	Line      string
	Date      string // "YYYY-MM-DD"; filas con fecha no parseable se descartan
	Material  string
	Quantity  decimal.Decimal
	KgPerUnit decimal.Decimal // opcional; el maestro tiene prioridad si trae valor
}

// NormalizeReport cuenta lo que el normalizador aceptó y descartó.
// Los descartes son por fila, nunca abortan la corrida.
type NormalizeReport struct {
	RowsIn        int
	Accepted      int
	BadLine       int
	BadDate       int
	EmptyMaterial int
	NonPositive   int
	DuplicateKeys int
}

// Rejected devuelve el total de filas descartadas.
func (r NormalizeReport) Rejected() int {
	return r.BadLine + r.BadDate + r.EmptyMaterial + r.NonPositive + r.DuplicateKeys
}

// Normalizer convierte filas crudas en ProductionRecords listos para programar:
// valida línea y cantidad, enriquece desde el maestro de SKUs, deriva peso bruto
// y horas de producción, y colapsa claves (fecha, material, línea) duplicadas
// conservando la primera aparición.
type Normalizer struct {
	validLines map[string]struct{}
}

// NewNormalizer construye el normalizador con el conjunto de líneas válidas.
func NewNormalizer(validLines []string) *Normalizer {
	set := make(map[string]struct{}, len(validLines))
	for _, l := range validLines {
		set[strings.ToUpper(strings.TrimSpace(l))] = struct{}{}
	}
	return &Normalizer{validLines: set}
}

// Normalize valida y enriquece las filas. Devuelve los registros agrupados por
// línea (el orden dentro de cada línea es irrelevante: el planificador reordena)
// y el reporte de descartes.
func (n *Normalizer) Normalize(rows []RawRow, skus SKULookup) (map[string][]entity.ProductionRecord, NormalizeReport) {
	report := NormalizeReport{RowsIn: len(rows)}
	byLine := make(map[string][]entity.ProductionRecord)

	type dedupKey struct {
		date     time.Time
		material string
		line     string
	}
	seen := make(map[dedupKey]struct{}, len(rows))

	for _, row := range rows {
		line := strings.ToUpper(strings.TrimSpace(row.Line))
		if _, ok := n.validLines[line]; !ok {
			report.BadLine++
			continue
		}
		if !row.Quantity.IsPositive() {
			report.NonPositive++
			continue
		}
		date, err := parseDate(row.Date)
		if err != nil {
			report.BadDate++
			continue
		}
		material := strings.TrimSpace(row.Material)
		if material == "" {
			report.EmptyMaterial++
			continue
		}

		key := dedupKey{date: date, material: material, line: line}
		if _, dup := seen[key]; dup {
			report.DuplicateKeys++
			continue
		}
		seen[key] = struct{}{}

		rec := entity.ProductionRecord{
			Line:      line,
			Date:      date,
			Material:  material,
			Quantity:  row.Quantity,
			KgPerUnit: row.KgPerUnit,
		}
		if info, ok := skus.Get(material); ok {
			rec.Description = info.Description
			rec.PackSize = info.PackSize
			rec.Speed = info.Speed
			// El maestro tiene prioridad sobre el valor de la fila cuando trae dato.
			if !info.KgPerUnit.IsZero() {
				rec.KgPerUnit = info.KgPerUnit
			}
		}

		rec.BulkKg = rec.Quantity.Mul(rec.KgPerUnit)
		if rec.Speed.IsPositive() {
			rec.ProdHours = rec.Quantity.Div(rec.Speed)
		}

		byLine[line] = append(byLine[line], rec)
		report.Accepted++
	}

	return byLine, report
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}
