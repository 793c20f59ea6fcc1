package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/dps-scheduler/internal/application/usecase"
	"github.com/jhoicas/dps-scheduler/internal/domain/repository"
)

var _ usecase.MasterTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Se usa para que el reemplazo de datos maestros (calendario, maestro de SKUs)
// sea todo-o-nada: una carga a medias dejaría corridas DPS inconsistentes.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunMaster inicia una transacción, ejecuta fn con repos maestros atados a la tx
// y hace Commit o Rollback.
func (r *TxRunner) RunMaster(ctx context.Context, fn func(
	calRepo repository.CalendarRepository,
	skuRepo repository.SKURepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	calRepo := NewCalendarRepository(tx)
	skuRepo := NewSKURepository(tx)

	if err := fn(calRepo, skuRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
