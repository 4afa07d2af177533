package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
// Las constraints únicas (username, curp, roles.name, user_roles) son la garantía real
// de idempotencia del sembrado; el chequeo leer-luego-escribir es solo el camino rápido.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}
