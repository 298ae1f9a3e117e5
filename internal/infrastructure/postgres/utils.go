package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE relevantes.
const (
	codeUndefinedTable       = "42P01"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUndefinedTable verifica si la tabla consultada no existe (42P01).
func isUndefinedTable(err error) bool {
	return pgErrorCode(err) == codeUndefinedTable
}

// isConcurrencyFailure verifica si PostgreSQL abortó la sentencia por una modificación concurrente.
func isConcurrencyFailure(err error) bool {
	switch pgErrorCode(err) {
	case codeSerializationFailure, codeDeadlockDetected:
		return true
	}
	return false
}
