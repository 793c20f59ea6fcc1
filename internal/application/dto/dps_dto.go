package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleRowRequest una fila cruda del export diario: (línea, fecha, material,
// cantidad) más el peso opcional que traiga la hoja. La capa de ingesta
// (externa) ya convirtió el Excel a estas tuplas.
type ScheduleRowRequest struct {
	Line      string          `json:"line"`
	Date      string          `json:"date"` // YYYY-MM-DD
	Material  string          `json:"material"`
	Quantity  decimal.Decimal `json:"quantity"`
	KgPerUnit decimal.Decimal `json:"kg_per_unit,omitempty"`
}

// ScheduleRequest body para POST /api/dps/schedule.
type ScheduleRequest struct {
	BaseMonth int                  `json:"base_month"` // M0 (1-12)
	Rows      []ScheduleRowRequest `json:"rows"`
}

// SlotResponse un lote programado con sus instantes y metadata de liberación,
// más el enriquecimiento descriptivo del maestro.
type SlotResponse struct {
	Date         string          `json:"date"`
	Material     string          `json:"material"`
	Description  string          `json:"description,omitempty"`
	Quantity     decimal.Decimal `json:"qty_ctn"`
	KgPerUnit    decimal.Decimal `json:"kg_tu"`
	PackSize     decimal.Decimal `json:"pack_size"`
	BulkKg       decimal.Decimal `json:"qty_bulk_kg"`
	ProdHours    decimal.Decimal `json:"prod_hour"`
	TimeStart    time.Time       `json:"time_start"`
	TimeFinish   time.Time       `json:"time_finish"`
	ReleaseTime  string          `json:"release_time"` // fecha YYYY-MM-DD
	ReleaseWeek  *int            `json:"release_wk,omitempty"`
	ReleaseIdent string          `json:"release_ident"`

	Country     string `json:"country,omitempty"`
	Brand       string `json:"brand,omitempty"`
	BigCategory string `json:"big_category,omitempty"`
	House       string `json:"house,omitempty"`
	PackFormat  string `json:"pack_format,omitempty"`
	Machine1    string `json:"machine_1,omitempty"`
}

// LineScheduleResponse la línea de tiempo completa de una línea.
type LineScheduleResponse struct {
	Line  string         `json:"line"`
	Slots []SlotResponse `json:"slots"`
}

// ScheduleReportResponse conteos del normalizador y totales de la corrida.
type ScheduleReportResponse struct {
	RowsIn        int `json:"rows_in"`
	Accepted      int `json:"accepted"`
	BadLine       int `json:"bad_line"`
	BadDate       int `json:"bad_date"`
	EmptyMaterial int `json:"empty_material"`
	NonPositive   int `json:"non_positive"`
	DuplicateKeys int `json:"duplicate_keys"`
	SlotsOut      int `json:"slots_out"`
}

// ScheduleResponse respuesta de POST /api/dps/schedule. Las líneas van en orden
// alfabético para que la salida sea reproducible.
type ScheduleResponse struct {
	RunID     string                 `json:"run_id"`
	BaseMonth int                    `json:"base_month"`
	Window    [3]int                 `json:"window"` // {M0, M1, M2}
	Lines     []LineScheduleResponse `json:"lines"`
	Report    ScheduleReportResponse `json:"report"`
}

// ScheduleRunResponse resumen de una corrida pasada.
type ScheduleRunResponse struct {
	ID          string    `json:"id"`
	BaseMonth   int       `json:"base_month"`
	RowsIn      int       `json:"rows_in"`
	RecordsUsed int       `json:"records_used"`
	Rejected    int       `json:"rejected"`
	SlotsOut    int       `json:"slots_out"`
	Lines       int       `json:"lines"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
