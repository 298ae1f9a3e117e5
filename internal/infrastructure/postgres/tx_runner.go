package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cretaceous-api/internal/application/usecase"
	"github.com/jhoicas/cretaceous-api/internal/domain/repository"
)

var _ usecase.AnimalTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db TxStarter
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db TxStarter) *TxRunner {
	return &TxRunner{db: db}
}

// RunAnimals inicia una transacción, ejecuta fn con un repo atado a la tx y hace Commit o Rollback.
func (r *TxRunner) RunAnimals(ctx context.Context, fn func(repo repository.AnimalRepository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAnimalRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
