package repository

import (
	"context"

	"github.com/jhoicas/cretaceous-api/internal/domain/entity"
)

// AnimalFilter criterios conjuntivos (AND) para Search. Nil significa "sin filtro";
// MinimumAge solo aplica cuando es mayor que cero.
type AnimalFilter struct {
	Species    *string
	Name       *string
	MinimumAge int
}

// AnimalRepository define el puerto de persistencia para Animal (DIP).
type AnimalRepository interface {
	// Count devuelve domain.ErrCollectionUnavailable si la tabla no existe.
	Count(ctx context.Context) (int64, error)
	ListPage(ctx context.Context, limit, offset int) ([]*entity.Animal, error)
	Search(ctx context.Context, filter AnimalFilter) ([]*entity.Animal, error)
	// GetByID devuelve nil, nil si no hay fila.
	GetByID(ctx context.Context, id int64) (*entity.Animal, error)
	// NthByID devuelve la fila en la posición offset ordenando por animal_id, o nil, nil.
	NthByID(ctx context.Context, offset int64) (*entity.Animal, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, animal *entity.Animal) error
	// Update devuelve domain.ErrConflict si la fila no se actualizó.
	Update(ctx context.Context, animal *entity.Animal) error
	// Delete devuelve domain.ErrNotFound si no hay fila.
	Delete(ctx context.Context, id int64) error
}
