package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cretaceous-api/internal/application/dto"
	"github.com/jhoicas/cretaceous-api/internal/application/usecase"
	"github.com/jhoicas/cretaceous-api/internal/domain"
	"github.com/jhoicas/cretaceous-api/pkg/logger"
)

// AnimalHandler maneja las peticiones HTTP para /api/animals.
type AnimalHandler struct {
	uc  *usecase.AnimalUseCase
	log *logger.Logger
}

// NewAnimalHandler construye el handler.
func NewAnimalHandler(uc *usecase.AnimalUseCase, log *logger.Logger) *AnimalHandler {
	return &AnimalHandler{uc: uc, log: log}
}

// GetPages godoc
// @Summary      Listar animales paginados
// @Description  pages contiene el total de filas, no el número de páginas.
// @Tags         animals
// @Produce      json
// @Param        page      path   int  true   "Página (1-based)"
// @Param        pageSize  query  int  false  "Tamaño de página"  default(4)
// @Success      200  {object}  dto.AnimalPageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/animals/page/{page} [get]
func (h *AnimalHandler) GetPages(c *fiber.Ctx) error {
	page, err := c.ParamsInt("page")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "page debe ser numérico"})
	}
	pageSize := c.QueryInt("pageSize", dto.DefaultAnimalPageSize)
	out, err := h.uc.GetPages(c.UserContext(), page, pageSize)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Buscar animales
// @Description  Filtros exactos y conjuntivos; minimumAge solo aplica si es mayor que cero.
// @Tags         animals
// @Produce      json
// @Param        species     query  string  false  "Especie exacta"
// @Param        name        query  string  false  "Nombre exacto"
// @Param        minimumAge  query  int     false  "Edad mínima (inclusive)"
// @Success      200  {array}   dto.AnimalResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/animals [get]
func (h *AnimalHandler) List(c *fiber.Ctx) error {
	var q dto.AnimalListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "parámetros de búsqueda inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetOne godoc
// @Summary      Obtener animal por ID
// @Tags         animals
// @Produce      json
// @Param        id   path  int  true  "ID del animal"
// @Success      200  {object}  dto.AnimalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/animals/{id} [get]
func (h *AnimalHandler) GetOne(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "id debe ser numérico"})
	}
	out, err := h.uc.GetOne(c.UserContext(), int64(id))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear animal
// @Description  animalId se ignora; lo asigna la base de datos.
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AnimalRequest  true  "Datos del animal"
// @Success      201   {object}  dto.AnimalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/animals [post]
func (h *AnimalHandler) Create(c *fiber.Ctx) error {
	var in dto.AnimalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	c.Location(fmt.Sprintf("/api/animals/%d", out.AnimalID))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar animal
// @Description  animalId del cuerpo debe coincidir con el de la ruta.
// @Tags         animals
// @Accept       json
// @Param        id    path  int                true  "ID del animal"
// @Param        body  body  dto.AnimalRequest  true  "Animal completo"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/animals/{id} [put]
func (h *AnimalHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "id debe ser numérico"})
	}
	var in dto.AnimalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	outcome, err := h.uc.Update(c.UserContext(), int64(id), in)
	if err != nil {
		return h.fail(c, err)
	}
	switch outcome {
	case usecase.UpdateApplied:
		return c.SendStatus(fiber.StatusNoContent)
	case usecase.UpdateNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "animal no encontrado"})
	default:
		h.log.Error().
			Str("request_id", GetRequestID(c)).
			Int("animal_id", id).
			Str("outcome", outcome.String()).
			Msg("conflicto de concurrencia sin resolver")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CONCURRENCY_CONFLICT", Message: "el animal fue modificado concurrentemente"})
	}
}

// Delete godoc
// @Summary      Eliminar animal
// @Tags         animals
// @Param        id   path  int  true  "ID del animal"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/animals/{id} [delete]
func (h *AnimalHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "id debe ser numérico"})
	}
	if err := h.uc.Delete(c.UserContext(), int64(id)); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RandomOne godoc
// @Summary      Animal aleatorio
// @Tags         animals
// @Produce      json
// @Success      200  {object}  dto.AnimalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/animals/random [get]
func (h *AnimalHandler) RandomOne(c *fiber.Ctx) error {
	out, err := h.uc.RandomOne(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// fail traduce errores de dominio a HTTP; el resto se registra y devuelve 500.
func (h *AnimalHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "animal no encontrado"})
	case errors.Is(err, domain.ErrIDMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_MISMATCH", Message: err.Error()})
	}
	h.log.Error().
		Err(err).
		Str("request_id", GetRequestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
