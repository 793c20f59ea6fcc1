package dto

import "github.com/shopspring/decimal"

// CalendarDayDTO una fila del calendario operativo.
type CalendarDayDTO struct {
	Date string `json:"date"` // YYYY-MM-DD
	Week int    `json:"week"`
}

// ReplaceCalendarRequest body para PUT /api/master/calendar.
type ReplaceCalendarRequest struct {
	Days []CalendarDayDTO `json:"days"`
}

// SKUDTO una fila del maestro de materiales.
type SKUDTO struct {
	Material    string          `json:"material"`
	Description string          `json:"description,omitempty"`
	KgPerUnit   decimal.Decimal `json:"kg_per_unit"`
	PackSize    decimal.Decimal `json:"pack_size"`
	Speed       decimal.Decimal `json:"speed"`
	Line        string          `json:"line,omitempty"`
	Country     string          `json:"country,omitempty"`
	Brand       string          `json:"brand,omitempty"`
	BigCategory string          `json:"big_category,omitempty"`
	House       string          `json:"house,omitempty"`
	PackFormat  string          `json:"pack_format,omitempty"`
	Machine1    string          `json:"machine_1,omitempty"`
}

// ReplaceSKUsRequest body para PUT /api/master/skus.
type ReplaceSKUsRequest struct {
	SKUs []SKUDTO `json:"skus"`
}

// CalendarListResponse respuesta de GET /api/master/calendar.
type CalendarListResponse struct {
	Items []CalendarDayDTO `json:"items"`
	Total int              `json:"total"`
}

// SKUListResponse respuesta de GET /api/master/skus.
type SKUListResponse struct {
	Items []SKUDTO `json:"items"`
	Total int      `json:"total"`
}
