package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cretaceous-api/internal/application/dto"
	"github.com/jhoicas/cretaceous-api/internal/application/usecase"
	"github.com/jhoicas/cretaceous-api/internal/domain"
	"github.com/jhoicas/cretaceous-api/internal/domain/entity"
	"github.com/jhoicas/cretaceous-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

type mockAnimalRepo struct {
	mock.Mock
}

func (m *mockAnimalRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnimalRepo) ListPage(ctx context.Context, limit, offset int) ([]*entity.Animal, error) {
	args := m.Called(ctx, limit, offset)
	list, _ := args.Get(0).([]*entity.Animal)
	return list, args.Error(1)
}

func (m *mockAnimalRepo) Search(ctx context.Context, filter repository.AnimalFilter) ([]*entity.Animal, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*entity.Animal)
	return list, args.Error(1)
}

func (m *mockAnimalRepo) GetByID(ctx context.Context, id int64) (*entity.Animal, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*entity.Animal)
	return a, args.Error(1)
}

func (m *mockAnimalRepo) NthByID(ctx context.Context, offset int64) (*entity.Animal, error) {
	args := m.Called(ctx, offset)
	a, _ := args.Get(0).(*entity.Animal)
	return a, args.Error(1)
}

func (m *mockAnimalRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAnimalRepo) Create(ctx context.Context, animal *entity.Animal) error {
	return m.Called(ctx, animal).Error(0)
}

func (m *mockAnimalRepo) Update(ctx context.Context, animal *entity.Animal) error {
	return m.Called(ctx, animal).Error(0)
}

func (m *mockAnimalRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// inlineTx ejecuta fn directamente sobre el repo mock.
type inlineTx struct {
	repo repository.AnimalRepository
}

func (t inlineTx) RunAnimals(_ context.Context, fn func(repo repository.AnimalRepository) error) error {
	return fn(t.repo)
}

func newUseCase(repo *mockAnimalRepo) *usecase.AnimalUseCase {
	return usecase.NewAnimalUseCase(repo, inlineTx{repo: repo})
}

func dino(id int64, name string, age int) *entity.Animal {
	return &entity.Animal{AnimalID: id, Species: "Dinosaur", Name: name, Age: age}
}

var ctx = context.Background()

// ──────────────────────────────────────────────────────────────────────────────
// GetPages
// ──────────────────────────────────────────────────────────────────────────────

func TestGetPages_PagesEsConteoDeFilas(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Count", mock.Anything).Return(int64(9), nil)
	repo.On("ListPage", mock.Anything, 4, 4).Return([]*entity.Animal{
		dino(5, "a", 1), dino(6, "b", 2), dino(7, "c", 3), dino(8, "d", 4),
	}, nil)

	out, err := newUseCase(repo).GetPages(ctx, 2, 4)
	require.NoError(t, err)

	assert.Equal(t, int64(9), out.Pages, "pages debe ser el total de filas, no el número de páginas")
	assert.Equal(t, 2, out.CurrentPage)
	assert.Equal(t, 4, out.PageSize)
	assert.Len(t, out.Animals, 4)
	assert.Equal(t, int64(5), out.Animals[0].AnimalID)
	repo.AssertExpectations(t)
}

func TestGetPages_FueraDeRangoDevuelveListaVacia(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Count", mock.Anything).Return(int64(3), nil)
	repo.On("ListPage", mock.Anything, 4, 36).Return(nil, nil)

	out, err := newUseCase(repo).GetPages(ctx, 10, 4)
	require.NoError(t, err)
	assert.NotNil(t, out.Animals)
	assert.Empty(t, out.Animals)
}

func TestGetPages_NoValidaParametros(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Count", mock.Anything).Return(int64(3), nil)
	repo.On("ListPage", mock.Anything, 4, -4).Return(nil, errors.New("OFFSET must not be negative"))

	_, err := newUseCase(repo).GetPages(ctx, 0, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OFFSET")
}

func TestGetPages_ColeccionNoDisponible(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Count", mock.Anything).Return(int64(0), fmt.Errorf("count animals: %w", domain.ErrCollectionUnavailable))

	_, err := newUseCase(repo).GetPages(ctx, 1, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "ListPage", mock.Anything, mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltrosConjuntivos(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Search", mock.Anything, mock.MatchedBy(func(f repository.AnimalFilter) bool {
		return f.Species != nil && *f.Species == "Dinosaur" &&
			f.Name != nil && *f.Name == "Rexie" &&
			f.MinimumAge == 5
	})).Return([]*entity.Animal{dino(2, "Rexie", 10)}, nil)

	out, err := newUseCase(repo).List(ctx, dto.AnimalListQuery{Species: "Dinosaur", Name: "Rexie", MinimumAge: 5})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Rexie", out[0].Name)
	repo.AssertExpectations(t)
}

func TestList_CadenasVaciasNoFiltran(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Search", mock.Anything, repository.AnimalFilter{}).Return(nil, nil)

	out, err := newUseCase(repo).List(ctx, dto.AnimalListQuery{})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
	repo.AssertExpectations(t)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetOne / Create / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOne(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("GetByID", mock.Anything, int64(3)).Return(dino(3, "Matilda", 2), nil)
	repo.On("GetByID", mock.Anything, int64(4)).Return(nil, nil)
	uc := newUseCase(repo)

	out, err := uc.GetOne(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, dto.AnimalResponse{AnimalID: 3, Species: "Dinosaur", Name: "Matilda", Age: 2}, *out)

	_, err = uc.GetOne(ctx, 4)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_IgnoraIDRecibido(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Animal) bool {
		return a.AnimalID == 0 && a.Species == "Shark" && a.Name == "Pip" && a.Age == 4
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Animal).AnimalID = 42
	}).Return(nil)

	out, err := newUseCase(repo).Create(ctx, dto.AnimalRequest{AnimalID: 999, Species: "Shark", Name: "Pip", Age: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.AnimalID)
	assert.Equal(t, "Pip", out.Name)
	repo.AssertExpectations(t)
}

func TestDelete_PropagaNotFound(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Delete", mock.Anything, int64(8)).Return(domain.ErrNotFound)

	err := newUseCase(repo).Delete(ctx, 8)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_IDDistintoEsBadRequestSinPersistir(t *testing.T) {
	repo := new(mockAnimalRepo)

	_, err := newUseCase(repo).Update(ctx, 1, dto.AnimalRequest{AnimalID: 2, Species: "Shark"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIDMismatch)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_Aplicado(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Update", mock.Anything, dino(1, "Rexie", 11)).Return(nil)

	outcome, err := newUseCase(repo).Update(ctx, 1, dto.AnimalRequest{AnimalID: 1, Species: "Dinosaur", Name: "Rexie", Age: 11})
	require.NoError(t, err)
	assert.Equal(t, usecase.UpdateApplied, outcome)
	repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestUpdate_ConflictoYFilaBorrada(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Update", mock.Anything, mock.Anything).Return(fmt.Errorf("update animal 1: %w", domain.ErrConflict))
	repo.On("Exists", mock.Anything, int64(1)).Return(false, nil)

	outcome, err := newUseCase(repo).Update(ctx, 1, dto.AnimalRequest{AnimalID: 1})
	require.NoError(t, err)
	assert.Equal(t, usecase.UpdateNotFound, outcome)
}

func TestUpdate_ConflictoYFilaPresente(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Update", mock.Anything, mock.Anything).Return(domain.ErrConflict)
	repo.On("Exists", mock.Anything, int64(1)).Return(true, nil)

	outcome, err := newUseCase(repo).Update(ctx, 1, dto.AnimalRequest{AnimalID: 1})
	require.NoError(t, err)
	assert.Equal(t, usecase.UpdateConflict, outcome)
	repo.AssertNumberOfCalls(t, "Update", 1)
}

func TestUpdate_OtrosErroresSePropagan(t *testing.T) {
	repo := new(mockAnimalRepo)
	boom := errors.New("connection reset")
	repo.On("Update", mock.Anything, mock.Anything).Return(boom)

	_, err := newUseCase(repo).Update(ctx, 1, dto.AnimalRequest{AnimalID: 1})
	assert.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestUpdateOutcome_String(t *testing.T) {
	assert.Equal(t, "applied", usecase.UpdateApplied.String())
	assert.Equal(t, "not_found", usecase.UpdateNotFound.String())
	assert.Equal(t, "conflict", usecase.UpdateConflict.String())
	assert.Equal(t, "UpdateOutcome(9)", usecase.UpdateOutcome(9).String())
}

// ──────────────────────────────────────────────────────────────────────────────
// RandomOne
// ──────────────────────────────────────────────────────────────────────────────

func TestRandomOne_TablaVacia(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Count", mock.Anything).Return(int64(0), nil)

	_, err := newUseCase(repo).RandomOne(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "NthByID", mock.Anything, mock.Anything)
}

func TestRandomOne_UnSoloRegistro(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Count", mock.Anything).Return(int64(1), nil)
	repo.On("NthByID", mock.Anything, int64(0)).Return(dino(7, "Solo", 3), nil)

	out, err := newUseCase(repo).RandomOne(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.AnimalID)
}

func TestRandomOne_UsaPosicionSorteada(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Count", mock.Anything).Return(int64(5), nil)
	repo.On("NthByID", mock.Anything, int64(3)).Return(dino(11, "Cuarto", 3), nil)

	var bound int64
	uc := newUseCase(repo).WithRandom(func(n int64) int64 {
		bound = n
		return 3
	})
	out, err := uc.RandomOne(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), bound, "el sorteo debe ser en [0, count)")
	assert.Equal(t, int64(11), out.AnimalID)
}

func TestRandomOne_FuentePorDefectoEnRango(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Count", mock.Anything).Return(int64(3), nil)
	repo.On("NthByID", mock.Anything, mock.MatchedBy(func(k int64) bool {
		return k >= 0 && k < 3
	})).Return(dino(1, "x", 1), nil)

	uc := newUseCase(repo)
	for i := 0; i < 50; i++ {
		_, err := uc.RandomOne(ctx)
		require.NoError(t, err)
	}
	repo.AssertNumberOfCalls(t, "NthByID", 50)
}

func TestRandomOne_FilaDesaparecida(t *testing.T) {
	repo := new(mockAnimalRepo)
	repo.On("Count", mock.Anything).Return(int64(2), nil)
	repo.On("NthByID", mock.Anything, int64(1)).Return(nil, nil)

	_, err := newUseCase(repo).WithRandom(func(int64) int64 { return 1 }).RandomOne(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
