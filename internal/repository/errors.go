// Package repository provides postgres-backed data access via sqlx.
package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrConflict          = errors.New("record already exists")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOutOfStock        = errors.New("insufficient stock")
)

const uniqueViolation = "23505"

// mapError translates driver errors into package sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrConflict
	}
	return err
}
