package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Slot es un lote programado sobre una línea: el registro de producción más los
// instantes concretos de inicio/fin asignados por el planificador y los metadatos
// de liberación. Los slots son salida terminal: no se persisten ni se mutan
// después de la corrida.
type Slot struct {
	Line        string
	Date        time.Time // fecha nominal del registro origen
	Material    string
	Description string
	Quantity    decimal.Decimal
	KgPerUnit   decimal.Decimal
	PackSize    decimal.Decimal
	BulkKg      decimal.Decimal
	ProdHours   decimal.Decimal

	TimeStart  time.Time
	TimeFinish time.Time

	ReleaseTime  time.Time
	ReleaseWeek  *int   // nil si la fecha no existe en el calendario operativo
	ReleaseIdent string // "{día}{mes}{año}" sin ceros a la izquierda; no único
}
