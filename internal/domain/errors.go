package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	// ErrCollectionUnavailable la tabla no existe o no se puede leer.
	ErrCollectionUnavailable = errors.New("colección no disponible")
	ErrIDMismatch            = fmt.Errorf("%w: el id de la ruta no coincide con el del cuerpo", ErrInvalidInput)
)
