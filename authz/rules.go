package authz

import (
	"fmt"

	"delivery-api/models"
)

// Resource is the kind of entity an operation targets
type Resource string

const (
	ResourceCliente     Resource = "cliente"
	ResourceRestaurante Resource = "restaurante"
	ResourceProduto     Resource = "produto"
)

// RestaurantScoped reports whether records of r belong to a restaurant
func (r Resource) RestaurantScoped() bool {
	return r == ResourceRestaurante || r == ResourceProduto
}

// Operation is the class of action performed on a resource
type Operation string

const (
	OpCreate       Operation = "create"
	OpRead         Operation = "read"
	OpUpdate       Operation = "update"
	OpToggleStatus Operation = "toggle-status"
)

// Rule grants a role an operation on a resource, optionally only for resources
// owned by the principal's restaurant
type Rule struct {
	Resource  Resource
	Operation Operation
	Role      models.Role
	Ownership bool
}

// rules is the authoritative permission table
var rules = []Rule{
	// Clientes are not restaurant-scoped
	{ResourceCliente, OpCreate, models.RoleAdmin, false},
	{ResourceCliente, OpCreate, models.RoleCliente, false},
	{ResourceCliente, OpRead, models.RoleAdmin, false},
	{ResourceCliente, OpRead, models.RoleRestaurante, false},
	{ResourceCliente, OpRead, models.RoleCliente, false},
	{ResourceCliente, OpUpdate, models.RoleAdmin, false},
	{ResourceCliente, OpUpdate, models.RoleCliente, false},
	{ResourceCliente, OpToggleStatus, models.RoleAdmin, false},
	{ResourceCliente, OpToggleStatus, models.RoleCliente, false},

	// Restaurantes: anyone reads, owners manage
	{ResourceRestaurante, OpCreate, models.RoleAdmin, false},
	{ResourceRestaurante, OpCreate, models.RoleRestaurante, false},
	{ResourceRestaurante, OpRead, models.RoleAdmin, false},
	{ResourceRestaurante, OpRead, models.RoleRestaurante, false},
	{ResourceRestaurante, OpRead, models.RoleCliente, false},
	{ResourceRestaurante, OpUpdate, models.RoleAdmin, false},
	{ResourceRestaurante, OpUpdate, models.RoleRestaurante, true},
	{ResourceRestaurante, OpToggleStatus, models.RoleAdmin, false},
	{ResourceRestaurante, OpToggleStatus, models.RoleRestaurante, true},

	// Produtos: only the owning restaurant (or an admin) touches its menu
	{ResourceProduto, OpCreate, models.RoleAdmin, false},
	{ResourceProduto, OpCreate, models.RoleRestaurante, true},
	{ResourceProduto, OpRead, models.RoleAdmin, false},
	{ResourceProduto, OpRead, models.RoleRestaurante, false},
	{ResourceProduto, OpRead, models.RoleCliente, false},
	{ResourceProduto, OpUpdate, models.RoleAdmin, false},
	{ResourceProduto, OpUpdate, models.RoleRestaurante, true},
	{ResourceProduto, OpToggleStatus, models.RoleAdmin, false},
	{ResourceProduto, OpToggleStatus, models.RoleRestaurante, true},
}

type ruleKey struct {
	Resource  Resource
	Operation Operation
	Role      models.Role
}

// ruleMap indexes rules; the value is the ownership requirement
var ruleMap = func() map[ruleKey]bool {
	m := make(map[ruleKey]bool, len(rules))
	for _, r := range rules {
		m[ruleKey{r.Resource, r.Operation, r.Role}] = r.Ownership
	}
	return m
}()

// Rules returns the permission table, for documentation endpoints and tests
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// DecisionRecorder receives every decision the Evaluator makes
type DecisionRecorder interface {
	RecordDecision(resource Resource, op Operation, allowed bool)
}

// Evaluator combines role membership and ownership into a decision.
type Evaluator struct {
	recorder DecisionRecorder
}

// NewEvaluator returns an Evaluator; recorder may be nil.
func NewEvaluator(recorder DecisionRecorder) *Evaluator {
	return &Evaluator{recorder: recorder}
}

// Permits is the role stage: it fails with ErrForbidden when no rule lets
// p's role perform op on resource at all. It never needs the target, so it
// runs before any lookup.
func (e *Evaluator) Permits(p Principal, resource Resource, op Operation) error {
	if _, ok := ruleMap[ruleKey{resource, op, p.Role}]; !ok {
		e.record(resource, op, false)
		return fmt.Errorf("%w: role %s cannot %s %s", ErrForbidden, p.Role, op, resource)
	}
	return nil
}

// Authorize is the full decision for a target owned by restauranteID: role
// membership first, then ownership where the matching rule asks for it.
func (e *Evaluator) Authorize(p Principal, resource Resource, op Operation, restauranteID uint) error {
	return e.AuthorizeAll(p, resource, op, restauranteID)
}

// AuthorizeAll is Authorize over every listed owner, for operations that touch
// more than one restaurant (moving a produto). It records a single decision.
func (e *Evaluator) AuthorizeAll(p Principal, resource Resource, op Operation, restauranteIDs ...uint) error {
	needsOwnership, ok := ruleMap[ruleKey{resource, op, p.Role}]
	if !ok {
		e.record(resource, op, false)
		return fmt.Errorf("%w: role %s cannot %s %s", ErrForbidden, p.Role, op, resource)
	}
	if needsOwnership {
		for _, id := range restauranteIDs {
			if !OwnsResource(p, resource, op, id) {
				e.record(resource, op, false)
				return fmt.Errorf("%w: %s %d is not managed by this user", ErrForbidden, resource, id)
			}
		}
	}
	e.record(resource, op, true)
	return nil
}

// AuthorizeUnscoped is Authorize for resources without an owning restaurant.
func (e *Evaluator) AuthorizeUnscoped(p Principal, resource Resource, op Operation) error {
	if err := e.Permits(p, resource, op); err != nil {
		return err
	}
	e.record(resource, op, true)
	return nil
}

func (e *Evaluator) record(resource Resource, op Operation, allowed bool) {
	if e == nil || e.recorder == nil {
		return
	}
	e.recorder.RecordDecision(resource, op, allowed)
}
