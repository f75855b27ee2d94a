package authz

import (
	"errors"
	"fmt"
	"testing"

	"delivery-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v uint) *uint { return &v }

var (
	admin       = Principal{UserID: 1, Role: models.RoleAdmin}
	dono5       = Principal{UserID: 2, Role: models.RoleRestaurante, RestauranteID: ptr(5)}
	semVinculo  = Principal{UserID: 3, Role: models.RoleRestaurante}
	cliente     = Principal{UserID: 4, Role: models.RoleCliente}
	allOps      = []Operation{OpCreate, OpRead, OpUpdate, OpToggleStatus}
	allResource = []Resource{ResourceCliente, ResourceRestaurante, ResourceProduto}
)

type recorder struct {
	allowed, denied int
}

func (r *recorder) RecordDecision(_ Resource, _ Operation, allowed bool) {
	if allowed {
		r.allowed++
	} else {
		r.denied++
	}
}

func TestOwnsResource(t *testing.T) {
	tests := []struct {
		name     string
		p        Principal
		resource Resource
		op       Operation
		id       uint
		want     bool
	}{
		{"admin any restaurant", admin, ResourceRestaurante, OpUpdate, 99, true},
		{"admin read", admin, ResourceProduto, OpRead, 1, true},
		{"restaurante own", dono5, ResourceRestaurante, OpUpdate, 5, true},
		{"restaurante other", dono5, ResourceProduto, OpUpdate, 7, false},
		{"restaurante own read", dono5, ResourceProduto, OpRead, 5, true},
		{"restaurante without link", semVinculo, ResourceRestaurante, OpUpdate, 5, false},
		{"cliente reads cliente", cliente, ResourceCliente, OpRead, 0, true},
		{"cliente read restaurante", cliente, ResourceRestaurante, OpRead, 5, false},
		{"cliente read produto", cliente, ResourceProduto, OpRead, 5, false},
		{"cliente update cliente", cliente, ResourceCliente, OpUpdate, 0, false},
		{"cliente update produto", cliente, ResourceProduto, OpUpdate, 5, false},
		{"cliente create restaurante", cliente, ResourceRestaurante, OpCreate, 5, false},
		{"cliente toggle produto", cliente, ResourceProduto, OpToggleStatus, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OwnsResource(tt.p, tt.resource, tt.op, tt.id))
		})
	}
}

func TestOwnsResource_AdminAlwaysAllowed(t *testing.T) {
	for _, res := range allResource {
		for _, op := range allOps {
			for _, id := range []uint{0, 1, 5, 7, 1 << 20} {
				assert.True(t, OwnsResource(admin, res, op, id), "res=%s op=%s id=%d", res, op, id)
			}
		}
	}
}

func TestOwnsResource_RestauranteOnlyOwn(t *testing.T) {
	for own := uint(1); own <= 8; own++ {
		p := Principal{Role: models.RoleRestaurante, RestauranteID: ptr(own)}
		for target := uint(1); target <= 8; target++ {
			for _, op := range allOps {
				assert.Equal(t, own == target, OwnsResource(p, ResourceProduto, op, target), "own=%d target=%d op=%s", own, target, op)
			}
		}
	}
}

func TestAuthorize_Table(t *testing.T) {
	ev := NewEvaluator(nil)
	tests := []struct {
		p        Principal
		resource Resource
		op       Operation
		owner    uint
		allowed  bool
	}{
		{cliente, ResourceCliente, OpCreate, 0, true},
		{dono5, ResourceCliente, OpCreate, 0, false},
		{dono5, ResourceCliente, OpRead, 0, true},
		{dono5, ResourceCliente, OpUpdate, 0, false},
		{cliente, ResourceCliente, OpToggleStatus, 0, true},

		{dono5, ResourceRestaurante, OpCreate, 0, true},
		{cliente, ResourceRestaurante, OpCreate, 0, false},
		{cliente, ResourceRestaurante, OpRead, 5, true},
		{dono5, ResourceRestaurante, OpUpdate, 5, true},
		{dono5, ResourceRestaurante, OpUpdate, 7, false},
		{cliente, ResourceRestaurante, OpUpdate, 5, false},
		{admin, ResourceRestaurante, OpToggleStatus, 7, true},
		{dono5, ResourceRestaurante, OpToggleStatus, 7, false},

		{dono5, ResourceProduto, OpCreate, 5, true},
		{dono5, ResourceProduto, OpCreate, 7, false},
		{semVinculo, ResourceProduto, OpCreate, 5, false},
		{cliente, ResourceProduto, OpCreate, 5, false},
		{cliente, ResourceProduto, OpRead, 7, true},
		{dono5, ResourceProduto, OpRead, 7, true},
		{dono5, ResourceProduto, OpUpdate, 5, true},
		{dono5, ResourceProduto, OpUpdate, 7, false},
		{cliente, ResourceProduto, OpUpdate, 5, false},
		{admin, ResourceProduto, OpUpdate, 7, true},
		{dono5, ResourceProduto, OpToggleStatus, 7, false},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("%s %s %s owner=%d", tt.p.Role, tt.op, tt.resource, tt.owner)
		t.Run(name, func(t *testing.T) {
			err := ev.Authorize(tt.p, tt.resource, tt.op, tt.owner)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrForbidden)
			}
		})
	}
}

func TestAuthorize_AdminEverything(t *testing.T) {
	ev := NewEvaluator(nil)
	for _, res := range allResource {
		for _, op := range allOps {
			assert.NoError(t, ev.Authorize(admin, res, op, 42), "%s %s", op, res)
		}
	}
}

func TestAuthorize_Idempotent(t *testing.T) {
	ev := NewEvaluator(nil)
	for i := 0; i < 3; i++ {
		assert.NoError(t, ev.Authorize(dono5, ResourceProduto, OpUpdate, 5))
		assert.ErrorIs(t, ev.Authorize(dono5, ResourceProduto, OpUpdate, 7), ErrForbidden)
	}
}

func TestPermits_RoleStageIgnoresOwnership(t *testing.T) {
	ev := NewEvaluator(nil)
	require.NoError(t, ev.Permits(semVinculo, ResourceProduto, OpUpdate))
	require.ErrorIs(t, ev.Permits(cliente, ResourceProduto, OpUpdate), ErrForbidden)
	require.NoError(t, ev.Permits(cliente, ResourceCliente, OpUpdate))
}

func TestAuthorizeUnscoped(t *testing.T) {
	ev := NewEvaluator(nil)
	assert.NoError(t, ev.AuthorizeUnscoped(cliente, ResourceCliente, OpCreate))
	err := ev.AuthorizeUnscoped(dono5, ResourceCliente, OpToggleStatus)
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestEvaluator_RecordsDecisions(t *testing.T) {
	rec := &recorder{}
	ev := NewEvaluator(rec)

	_ = ev.Authorize(dono5, ResourceRestaurante, OpUpdate, 5)
	_ = ev.Authorize(dono5, ResourceRestaurante, OpUpdate, 7)
	_ = ev.Permits(cliente, ResourceProduto, OpCreate)
	_ = ev.AuthorizeUnscoped(cliente, ResourceCliente, OpRead)

	assert.Equal(t, 2, rec.allowed)
	assert.Equal(t, 2, rec.denied)
}

func TestAuthorizeAll(t *testing.T) {
	rec := &recorder{}
	ev := NewEvaluator(rec)

	assert.NoError(t, ev.AuthorizeAll(dono5, ResourceProduto, OpUpdate, 5, 5))
	assert.ErrorIs(t, ev.AuthorizeAll(dono5, ResourceProduto, OpUpdate, 5, 7), ErrForbidden)
	assert.NoError(t, ev.AuthorizeAll(admin, ResourceProduto, OpUpdate, 5, 7))

	assert.Equal(t, 2, rec.allowed, "one decision per call")
	assert.Equal(t, 1, rec.denied)
}

func TestEvaluator_NilSafe(t *testing.T) {
	var ev *Evaluator
	assert.NoError(t, ev.Authorize(admin, ResourceCliente, OpRead, 0))
}

func TestRules_EveryRoleReadsEverything(t *testing.T) {
	reads := map[ruleKey]bool{}
	for _, r := range Rules() {
		if r.Operation == OpRead {
			reads[ruleKey{r.Resource, r.Operation, r.Role}] = true
			assert.False(t, r.Ownership, "read of %s by %s must not need ownership", r.Resource, r.Role)
		}
	}
	for _, res := range allResource {
		for _, role := range []models.Role{models.RoleAdmin, models.RoleRestaurante, models.RoleCliente} {
			assert.True(t, reads[ruleKey{res, OpRead, role}], "%s cannot read %s", role, res)
		}
	}
}

func TestRules_ReturnsCopy(t *testing.T) {
	rs := Rules()
	rs[0].Role = models.RoleRestaurante
	assert.Equal(t, models.RoleAdmin, Rules()[0].Role)
}
