package models

import (
	"time"
)

// Role is the coarse-grained permission class of a user
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleRestaurante Role = "RESTAURANTE"
	RoleCliente     Role = "CLIENTE"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleRestaurante, RoleCliente:
		return true
	}
	return false
}

type Usuario struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Nome          string    `json:"nome" gorm:"not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"`
	SenhaHash     string    `json:"-" gorm:"not null"`
	Role          Role      `json:"role" gorm:"not null;default:'CLIENTE'"`
	RestauranteID *uint     `json:"restauranteId"` // set only for RESTAURANTE users
	Ativo         bool      `json:"ativo" gorm:"default:true"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
