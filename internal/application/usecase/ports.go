package usecase

import (
	"context"

	"github.com/jhoicas/cretaceous-api/internal/domain/repository"
)

// AnimalTxRunner ejecuta fn dentro de una transacción con un repositorio atado a ella.
// Si fn devuelve error se hace Rollback.
type AnimalTxRunner interface {
	RunAnimals(ctx context.Context, fn func(repo repository.AnimalRepository) error) error
}
