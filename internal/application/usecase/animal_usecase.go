package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jhoicas/cretaceous-api/internal/application/dto"
	"github.com/jhoicas/cretaceous-api/internal/domain"
	"github.com/jhoicas/cretaceous-api/internal/domain/entity"
	"github.com/jhoicas/cretaceous-api/internal/domain/repository"
)

// UpdateOutcome resultado de Update cuando no hubo error de infraestructura.
type UpdateOutcome int

const (
	// UpdateApplied el reemplazo se guardó.
	UpdateApplied UpdateOutcome = iota
	// UpdateNotFound la fila ya no existe (borrada antes o durante el update).
	UpdateNotFound
	// UpdateConflict la fila existe pero el store rechazó el update por modificación concurrente.
	// No se reintenta ni se fusiona.
	UpdateConflict
)

func (o UpdateOutcome) String() string {
	switch o {
	case UpdateApplied:
		return "applied"
	case UpdateNotFound:
		return "not_found"
	case UpdateConflict:
		return "conflict"
	default:
		return fmt.Sprintf("UpdateOutcome(%d)", int(o))
	}
}

// AnimalUseCase casos de uso del recurso animals.
type AnimalUseCase struct {
	repo repository.AnimalRepository
	tx   AnimalTxRunner
	// int64N devuelve un entero uniforme en [0, n). Generador de vida del proceso, seguro entre goroutines.
	int64N func(n int64) int64
}

// NewAnimalUseCase construye el caso de uso.
func NewAnimalUseCase(repo repository.AnimalRepository, tx AnimalTxRunner) *AnimalUseCase {
	return &AnimalUseCase{repo: repo, tx: tx, int64N: rand.Int64N}
}

// WithRandom reemplaza la fuente aleatoria de RandomOne (tests).
func (uc *AnimalUseCase) WithRandom(int64N func(n int64) int64) *AnimalUseCase {
	uc.int64N = int64N
	return uc
}

// GetPages devuelve la página page (1-based) de tamaño pageSize. No valida rangos:
// una página fuera de rango devuelve una lista vacía.
func (uc *AnimalUseCase) GetPages(ctx context.Context, page, pageSize int) (*dto.AnimalPageResponse, error) {
	count, err := uc.repo.Count(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrCollectionUnavailable) {
			return nil, fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		}
		return nil, err
	}
	list, err := uc.repo.ListPage(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return &dto.AnimalPageResponse{
		Animals:     toAnimalResponses(list),
		Pages:       count,
		CurrentPage: page,
		PageSize:    pageSize,
	}, nil
}

// List devuelve todos los animales que cumplen los filtros presentes (AND), sin paginar.
func (uc *AnimalUseCase) List(ctx context.Context, in dto.AnimalListQuery) ([]dto.AnimalResponse, error) {
	filter := repository.AnimalFilter{MinimumAge: in.MinimumAge}
	if in.Species != "" {
		filter.Species = &in.Species
	}
	if in.Name != "" {
		filter.Name = &in.Name
	}
	list, err := uc.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toAnimalResponses(list), nil
}

// GetOne obtiene un animal por ID.
func (uc *AnimalUseCase) GetOne(ctx context.Context, id int64) (*dto.AnimalResponse, error) {
	animal, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, domain.ErrNotFound
	}
	return toAnimalResponse(animal), nil
}

// Create inserta un animal. El AnimalID recibido se ignora: lo asigna la base de datos.
func (uc *AnimalUseCase) Create(ctx context.Context, in dto.AnimalRequest) (*dto.AnimalResponse, error) {
	animal := &entity.Animal{
		Species: in.Species,
		Name:    in.Name,
		Age:     in.Age,
	}
	if err := uc.repo.Create(ctx, animal); err != nil {
		return nil, err
	}
	return toAnimalResponse(animal), nil
}

// Update reemplaza el animal id con in. Devuelve domain.ErrIDMismatch sin tocar el store
// si in.AnimalID no coincide con id.
//
// Si el store señala un conflicto de concurrencia se vuelve a comprobar la existencia fuera
// de la transacción fallida: si la fila ya no está el resultado es UpdateNotFound, si sigue
// ahí es UpdateConflict.
func (uc *AnimalUseCase) Update(ctx context.Context, id int64, in dto.AnimalRequest) (UpdateOutcome, error) {
	if in.AnimalID != id {
		return 0, domain.ErrIDMismatch
	}
	animal := &entity.Animal{
		AnimalID: id,
		Species:  in.Species,
		Name:     in.Name,
		Age:      in.Age,
	}
	err := uc.tx.RunAnimals(ctx, func(repo repository.AnimalRepository) error {
		return repo.Update(ctx, animal)
	})
	if err == nil {
		return UpdateApplied, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return 0, err
	}

	exists, existsErr := uc.repo.Exists(ctx, id)
	if existsErr != nil {
		return 0, existsErr
	}
	if !exists {
		return UpdateNotFound, nil
	}
	return UpdateConflict, nil
}

// Delete elimina un animal por ID.
func (uc *AnimalUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// RandomOne devuelve un animal elegido uniformemente: cuenta las filas, sortea una posición
// en [0, count) y recorre la tabla ordenada por animal_id hasta esa posición.
func (uc *AnimalUseCase) RandomOne(ctx context.Context) (*dto.AnimalResponse, error) {
	count, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.ErrNotFound
	}
	animal, err := uc.repo.NthByID(ctx, uc.int64N(count))
	if err != nil {
		return nil, err
	}
	// la tabla pudo encogerse entre el conteo y la lectura
	if animal == nil {
		return nil, domain.ErrNotFound
	}
	return toAnimalResponse(animal), nil
}

func toAnimalResponse(a *entity.Animal) *dto.AnimalResponse {
	if a == nil {
		return nil
	}
	return &dto.AnimalResponse{
		AnimalID: a.AnimalID,
		Species:  a.Species,
		Name:     a.Name,
		Age:      a.Age,
	}
}

func toAnimalResponses(list []*entity.Animal) []dto.AnimalResponse {
	items := make([]dto.AnimalResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAnimalResponse(a))
	}
	return items
}
