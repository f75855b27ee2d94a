package authz

import "delivery-api/models"

// OwnsResource reports whether p may act on a resource owned by restauranteID.
// CLIENTE owns nothing restaurant-scoped; it only reads Cliente records.
func OwnsResource(p Principal, resource Resource, op Operation, restauranteID uint) bool {
	switch p.Role {
	case models.RoleAdmin:
		return true
	case models.RoleRestaurante:
		return p.ManagesRestaurante(restauranteID)
	case models.RoleCliente:
		return op == OpRead && !resource.RestaurantScoped()
	}
	return false
}
