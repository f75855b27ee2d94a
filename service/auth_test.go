package service_test

import (
	"context"
	"testing"
	"time"

	"delivery-api/dto"
	"delivery-api/models"
	"delivery-api/repository"
	"delivery-api/service"
	"delivery-api/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T) (*service.AuthService, *token.Manager) {
	t.Helper()
	f := newFixture(t)
	tokens := token.NewManager("secret", time.Hour, "delivery-api", token.NewMemoryDenylist())
	return service.NewAuthService(repository.NewUsuarioRepository(f.db), tokens, bcrypt.MinCost), tokens
}

func TestAuth_RegisterDefaultsToCliente(t *testing.T) {
	svc, _ := newAuth(t)
	u, err := svc.Register(ctx, dto.RegisterRequest{Nome: "Ana", Email: "ana@x.com", Senha: "123456"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCliente, u.Role)
	assert.Nil(t, u.RestauranteID)
	assert.NotEqual(t, "123456", u.SenhaHash)
}

func TestAuth_RegisterRestaurante(t *testing.T) {
	svc, _ := newAuth(t)

	_, err := svc.Register(ctx, dto.RegisterRequest{Nome: "Dono", Email: "dono@x.com", Senha: "123456", Role: models.RoleRestaurante})
	assert.ErrorIs(t, err, service.ErrValidation)

	u, err := svc.Register(ctx, dto.RegisterRequest{Nome: "Dono", Email: "dono@x.com", Senha: "123456", Role: models.RoleRestaurante, RestauranteID: uintPtr(5)})
	require.NoError(t, err)
	require.NotNil(t, u.RestauranteID)
	assert.Equal(t, uint(5), *u.RestauranteID)

	c, err := svc.Register(ctx, dto.RegisterRequest{Nome: "Cli", Email: "cli@x.com", Senha: "123456", RestauranteID: uintPtr(5)})
	require.NoError(t, err)
	assert.Nil(t, c.RestauranteID, "only RESTAURANTE accounts are linked")
}

func TestAuth_RegisterDuplicate(t *testing.T) {
	svc, _ := newAuth(t)
	_, err := svc.Register(ctx, dto.RegisterRequest{Nome: "Ana", Email: "ana@x.com", Senha: "123456"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, dto.RegisterRequest{Nome: "Ana", Email: "ANA@x.com", Senha: "654321"})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestAuth_LoginAndLogout(t *testing.T) {
	svc, tokens := newAuth(t)
	_, err := svc.Register(ctx, dto.RegisterRequest{Nome: "Dono", Email: "dono@x.com", Senha: "123456", Role: models.RoleRestaurante, RestauranteID: uintPtr(5)})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "dono@x.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@x.com", "123456")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	raw, err := svc.Login(ctx, "dono@x.com", "123456")
	require.NoError(t, err)

	p, err := tokens.Verify(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, models.RoleRestaurante, p.Role)
	assert.True(t, p.ManagesRestaurante(5))

	me, err := svc.Me(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "dono@x.com", me.Email)

	require.NoError(t, svc.Logout(ctx, p))
	_, err = tokens.Verify(ctx, raw)
	assert.ErrorIs(t, err, token.ErrRevoked)
}

func TestAuth_EnsureAdmin(t *testing.T) {
	svc, _ := newAuth(t)
	created, err := svc.EnsureAdmin(ctx, "admin@delivery.com", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "admin@delivery.com", "admin123")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = svc.Login(ctx, "admin@delivery.com", "admin123")
	assert.NoError(t, err)
}

type staleUsuarioRepo struct {
	repository.UsuarioRepository
}

func (staleUsuarioRepo) FindByEmail(context.Context, string) (*models.Usuario, error) {
	return nil, repository.ErrNotFound
}

func TestAuth_RegisterDuplicateRace(t *testing.T) {
	f := newFixture(t)
	tokens := token.NewManager("secret", time.Hour, "delivery-api", token.NewMemoryDenylist())
	svc := service.NewAuthService(staleUsuarioRepo{repository.NewUsuarioRepository(f.db)}, tokens, bcrypt.MinCost)

	_, err := svc.Register(ctx, dto.RegisterRequest{Nome: "Ana", Email: "ana@x.com", Senha: "123456"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, dto.RegisterRequest{Nome: "Ana", Email: "ana@x.com", Senha: "123456"})
	assert.ErrorIs(t, err, service.ErrConflict)
}
