package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionRecord es una cantidad de producción diaria (línea, fecha, material),
// ya validada y enriquecida por el normalizador. Reemplaza las filas posicionales
// del export original con campos tipados.
type ProductionRecord struct {
	Line        string          // código de línea (AB, CD, ...)
	Date        time.Time       // fecha nominal de producción, sin componente horario (UTC, medianoche)
	Material    string          // código SAP del material
	Description string          // descripción del material (referencia SKU)
	Quantity    decimal.Decimal // cartones; siempre > 0 tras normalizar
	KgPerUnit   decimal.Decimal // peso por cartón; cero si se desconoce
	PackSize    decimal.Decimal // unidades por cartón según el maestro; cero si se desconoce
	Speed       decimal.Decimal // cartones por hora; cero si se desconoce

	BulkKg    decimal.Decimal // Quantity * KgPerUnit
	ProdHours decimal.Decimal // Quantity / Speed; cero si Speed es cero
}

// DurationDays devuelve la duración del lote en días (ProdHours / 24).
// Un registro sin velocidad ocupa cero tiempo pero permanece en la línea de tiempo.
func (r ProductionRecord) DurationDays() decimal.Decimal {
	if r.ProdHours.IsZero() {
		return decimal.Zero
	}
	return r.ProdHours.Div(decimal.NewFromInt(24))
}
