package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cretaceous-api/internal/domain"
	"github.com/jhoicas/cretaceous-api/internal/domain/entity"
	"github.com/jhoicas/cretaceous-api/internal/domain/repository"
)

var _ repository.AnimalRepository = (*AnimalRepo)(nil)

const animalColumns = `animal_id, species, name, age`

// AnimalRepo implementación del puerto AnimalRepository sobre PostgreSQL (usable con pool o tx).
type AnimalRepo struct {
	q Querier
}

// NewAnimalRepository construye el adaptador de persistencia para animales. Pasar pool o tx (Querier).
func NewAnimalRepository(q Querier) *AnimalRepo {
	return &AnimalRepo{q: q}
}

// Count cuenta todas las filas de animals.
func (r *AnimalRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM animals`).Scan(&n); err != nil {
		if isUndefinedTable(err) {
			return 0, fmt.Errorf("count animals: %w: %w", domain.ErrCollectionUnavailable, err)
		}
		return 0, fmt.Errorf("count animals: %w", err)
	}
	return n, nil
}

// ListPage devuelve hasta limit filas saltando offset. Sin ORDER BY: el orden lo decide PostgreSQL.
// limit/offset negativos los rechaza la base de datos.
func (r *AnimalRepo) ListPage(ctx context.Context, limit, offset int) ([]*entity.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list animals page: %w", err)
	}
	return scanAnimals(rows)
}

// Search aplica los filtros presentes unidos con AND.
func (r *AnimalRepo) Search(ctx context.Context, filter repository.AnimalFilter) ([]*entity.Animal, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Species != nil {
		args = append(args, *filter.Species)
		conds = append(conds, fmt.Sprintf("species = $%d", len(args)))
	}
	if filter.Name != nil {
		args = append(args, *filter.Name)
		conds = append(conds, fmt.Sprintf("name = $%d", len(args)))
	}
	if filter.MinimumAge > 0 {
		args = append(args, filter.MinimumAge)
		conds = append(conds, fmt.Sprintf("age >= $%d", len(args)))
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + animalColumns + ` FROM animals`)
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("search animals: %w", err)
	}
	return scanAnimals(rows)
}

// GetByID obtiene un animal por ID.
func (r *AnimalRepo) GetByID(ctx context.Context, id int64) (*entity.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE animal_id = $1`
	a, err := scanAnimal(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get animal: %w", err)
	}
	return a, nil
}

// NthByID obtiene la fila en la posición offset (0-based) ordenando por animal_id.
func (r *AnimalRepo) NthByID(ctx context.Context, offset int64) (*entity.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals ORDER BY animal_id OFFSET $1 LIMIT 1`
	a, err := scanAnimal(r.q.QueryRow(ctx, query, offset))
	if err != nil {
		return nil, fmt.Errorf("get animal by position: %w", err)
	}
	return a, nil
}

// Exists indica si hay una fila con ese ID.
func (r *AnimalRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM animals WHERE animal_id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("animal exists: %w", err)
	}
	return ok, nil
}

// Create persiste un nuevo animal y asigna animal.AnimalID con el valor generado.
func (r *AnimalRepo) Create(ctx context.Context, animal *entity.Animal) error {
	query := `
		INSERT INTO animals (species, name, age)
		VALUES ($1, $2, $3)
		RETURNING animal_id`
	err := r.q.QueryRow(ctx, query, animal.Species, animal.Name, animal.Age).Scan(&animal.AnimalID)
	if err != nil {
		return fmt.Errorf("insert animal: %w", err)
	}
	return nil
}

// Update reemplaza todos los campos del animal. Cero filas afectadas o un fallo de
// serialización se reportan como domain.ErrConflict.
func (r *AnimalRepo) Update(ctx context.Context, animal *entity.Animal) error {
	query := `
		UPDATE animals SET species = $2, name = $3, age = $4
		WHERE animal_id = $1`
	cmd, err := r.q.Exec(ctx, query, animal.AnimalID, animal.Species, animal.Name, animal.Age)
	if err != nil {
		if isConcurrencyFailure(err) {
			return fmt.Errorf("update animal: %w: %w", domain.ErrConflict, err)
		}
		return fmt.Errorf("update animal: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update animal %d: %w", animal.AnimalID, domain.ErrConflict)
	}
	return nil
}

// Delete elimina un animal por ID.
func (r *AnimalRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM animals WHERE animal_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAnimal(row pgx.Row) (*entity.Animal, error) {
	var a entity.Animal
	if err := row.Scan(&a.AnimalID, &a.Species, &a.Name, &a.Age); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func scanAnimals(rows pgx.Rows) ([]*entity.Animal, error) {
	defer rows.Close()
	var list []*entity.Animal
	for rows.Next() {
		var a entity.Animal
		if err := rows.Scan(&a.AnimalID, &a.Species, &a.Name, &a.Age); err != nil {
			return nil, fmt.Errorf("scan animal: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
