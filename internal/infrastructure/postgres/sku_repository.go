package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dps-scheduler/internal/domain/entity"
	"github.com/jhoicas/dps-scheduler/internal/domain/repository"
)

var _ repository.SKURepository = (*SKURepo)(nil)

// SKURepo implementación del puerto SKURepository sobre PostgreSQL
// (tabla sku_master, que unifica zcorin_converter y master_dps del sistema
// de referencia; usable con pool o tx).
type SKURepo struct {
	q Querier
}

// NewSKURepository construye el adaptador. Pasar pool o tx (Querier).
func NewSKURepository(q Querier) *SKURepo {
	return &SKURepo{q: q}
}

const skuColumns = `material, description, kg_per_unit, pack_size, speed, line,
		country, brand, big_category, house, pack_format, machine_1`

// ListAll carga el maestro completo para el snapshot de la corrida.
func (r *SKURepo) ListAll() ([]entity.SKUInfo, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+skuColumns+` FROM sku_master ORDER BY material`)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()

	var list []entity.SKUInfo
	for rows.Next() {
		var s entity.SKUInfo
		if err := rows.Scan(&s.Material, &s.Description, &s.KgPerUnit, &s.PackSize, &s.Speed, &s.Line,
			&s.Country, &s.Brand, &s.BigCategory, &s.House, &s.PackFormat, &s.Machine1); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByMaterial obtiene una fila del maestro por material.
func (r *SKURepo) GetByMaterial(material string) (*entity.SKUInfo, error) {
	var s entity.SKUInfo
	err := r.q.QueryRow(context.Background(),
		`SELECT `+skuColumns+` FROM sku_master WHERE material = $1`, material).
		Scan(&s.Material, &s.Description, &s.KgPerUnit, &s.PackSize, &s.Speed, &s.Line,
			&s.Country, &s.Brand, &s.BigCategory, &s.House, &s.PackFormat, &s.Machine1)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return &s, nil
}

// ReplaceAll reemplaza el maestro completo. Pensado para ejecutarse dentro de
// una transacción (TxRunner) para que el reemplazo sea atómico.
func (r *SKURepo) ReplaceAll(skus []entity.SKUInfo) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM sku_master`); err != nil {
		return fmt.Errorf("clear skus: %w", err)
	}
	for _, s := range skus {
		_, err := r.q.Exec(ctx,
			`INSERT INTO sku_master (`+skuColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			s.Material, s.Description, s.KgPerUnit, s.PackSize, s.Speed, s.Line,
			s.Country, s.Brand, s.BigCategory, s.House, s.PackFormat, s.Machine1,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("material duplicado %s: %w", s.Material, err)
			}
			return fmt.Errorf("insert sku: %w", err)
		}
	}
	return nil
}
