package entity

import "time"

// ScheduleRun es el resumen persistido de una corrida del motor DPS.
// Solo se guarda el resumen: los slots son salida terminal y no se persisten.
type ScheduleRun struct {
	ID          string
	BaseMonth   int // M0 (1-12); la ventana M0-M2 se deriva
	RowsIn      int // filas crudas recibidas
	RecordsUsed int // registros que sobrevivieron al normalizador
	Rejected    int // filas descartadas (línea inválida, cantidad no positiva, duplicados)
	SlotsOut    int // slots emitidos tras el filtro de ventana
	Lines       int // líneas con al menos un slot
	CreatedBy   string
	CreatedAt   time.Time
}
