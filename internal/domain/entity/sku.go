package entity

import "github.com/shopspring/decimal"

// SKUInfo es una fila del maestro de materiales: atributos descriptivos de
// enriquecimiento más los parámetros productivos (peso por cartón y velocidad)
// que consume el motor DPS. Se carga una vez por corrida como snapshot de solo lectura.
type SKUInfo struct {
	Material    string // código SAP, clave de join
	Description string
	KgPerUnit   decimal.Decimal // kg por cartón
	PackSize    decimal.Decimal // unidades por cartón
	Speed       decimal.Decimal // cartones por hora; cero = desconocida
	Line        string          // línea habitual del material según el maestro (informativo)

	Country     string
	Brand       string
	BigCategory string
	House       string
	PackFormat  string
	Machine1    string
}
