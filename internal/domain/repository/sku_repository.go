package repository

import "github.com/jhoicas/dps-scheduler/internal/domain/entity"

// SKURepository define el puerto de persistencia para el maestro de materiales.
// El motor solo consume ListAll como snapshot de solo lectura.
type SKURepository interface {
	ListAll() ([]entity.SKUInfo, error)
	GetByMaterial(material string) (*entity.SKUInfo, error)
	ReplaceAll(skus []entity.SKUInfo) error
}
