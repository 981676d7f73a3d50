package dbx

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes that mean the caller sent a row the table refuses.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgInvalidText         = "22P02"
	pgInvalidDatetime     = "22007"
	pgDatetimeOverflow    = "22008"
	pgNumericOverflow     = "22003"
)

// IsUniqueViolation reports whether err is a Postgres unique constraint error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// WriteError classifies a failed INSERT/UPDATE. Constraint and input errors
// become common.ErrWrite with the constraint detail kept in the message;
// everything else is wrapped as a plain db error.
func WriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNotNullViolation, pgForeignKeyViolation, pgUniqueViolation, pgCheckViolation,
			pgInvalidText, pgInvalidDatetime, pgDatetimeOverflow, pgNumericOverflow:
			detail := pgErr.ConstraintName
			if detail == "" {
				detail = pgErr.ColumnName
			}
			if detail == "" {
				detail = pgErr.Message
			}
			return fmt.Errorf("%w: %s", common.ErrWrite, detail)
		}
	}
	return fmt.Errorf("db error: %w", err)
}
