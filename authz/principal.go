// Package authz decides whether an authenticated principal may perform an
// operation on a Cliente, Restaurante or Produto.
package authz

import (
	"time"

	"delivery-api/models"
)

// Principal is the authenticated identity behind a request. It is built once
// from a verified token and never modified afterwards.
type Principal struct {
	UserID        uint
	Email         string
	Role          models.Role
	RestauranteID *uint
	TokenID       string
	ExpiresAt     time.Time
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// ManagesRestaurante reports whether p is a RESTAURANTE user scoped to id.
func (p Principal) ManagesRestaurante(id uint) bool {
	return p.Role == models.RoleRestaurante && p.RestauranteID != nil && *p.RestauranteID == id
}
