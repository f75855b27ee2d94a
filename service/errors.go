// Package service holds the business rules for clientes, restaurantes,
// produtos and user accounts. Every operation takes the calling principal and
// is authorized through authz before it touches data.
package service

import (
	"errors"
	"fmt"

	"delivery-api/repository"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrRestauranteNotFound is the ErrNotFound for a restaurant referenced by
	// another record, as opposed to the record being addressed.
	ErrRestauranteNotFound = fmt.Errorf("restaurante %w", ErrNotFound)
)

// notFound maps a repository miss onto ErrNotFound and wraps anything else
func notFound(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}

// conflict maps a unique-index violation that slipped past the pre-check onto ErrConflict
func conflict(err error, what string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("%w: %s", ErrConflict, what)
	}
	return err
}
