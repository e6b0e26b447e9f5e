package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta la violación de constraint único de Postgres
// (23505). En este esquema solo puede dispararla el email único de
// customer_accounts; el repo la traduce a domain.ErrEmailAlreadyExists.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	// Algunos poolers reenvían el error como texto plano.
	return strings.Contains(err.Error(), "23505")
}
