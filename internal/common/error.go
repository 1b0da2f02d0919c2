// Package common defines shared sentinel errors used across QuestMaster
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage constraint errors. The store is the single place that maps
	// SQLite constraint failures onto these values.
	ErrDuplicateTitle      = errors.New("duplicate quest title")
	ErrConstraintViolation = errors.New("constraint violation")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")
)
