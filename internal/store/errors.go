// Package store carries the shared error taxonomy for the record store
// gateways. Handlers translate these into HTTP status codes: validation
// and store-reported errors become 400, everything else 500.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Error is a problem the record store itself reported (constraint
// violation, unknown column, no matching row). Its message is surfaced
// to the client verbatim.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ValidationError is a missing/invalid request field, detected before
// any store call is made.
type ValidationError string

func (v ValidationError) Error() string {
	return string(v)
}

// FromPg normalizes pgx errors: database-reported errors become *Error,
// a missing single row becomes *Error with the given message, anything
// else (network, scan) passes through and is treated as unexpected.
func FromPg(err error, noRowsMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &Error{Message: noRowsMsg}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &Error{Message: pgErr.Message}
	}
	return err
}
