// Package repository persists the domain models through gorm.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned by every FindBy* lookup that matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a write violates a unique index.
var ErrDuplicate = errors.New("duplicate record")

func translate(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", what, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", what, err)
}
