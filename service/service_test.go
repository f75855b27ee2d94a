package service_test

import (
	"context"
	"testing"

	"delivery-api/authz"
	"delivery-api/config"
	"delivery-api/dto"
	"delivery-api/models"
	"delivery-api/repository"
	"delivery-api/service"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db           *gorm.DB
	clientes     *service.ClienteService
	restaurantes *service.RestauranteService
	produtos     *service.ProdutoService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, nil)
}

func newFixtureWith(t *testing.T, recorder authz.DecisionRecorder) *fixture {
	t.Helper()
	db, err := config.OpenDB(config.DatabaseConfig{Driver: config.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	ev := authz.NewEvaluator(recorder)
	restRepo := repository.NewRestauranteRepository(db)
	return &fixture{
		db:           db,
		clientes:     service.NewClienteService(repository.NewClienteRepository(db), ev),
		restaurantes: service.NewRestauranteService(restRepo, ev),
		produtos:     service.NewProdutoService(repository.NewProdutoRepository(db), restRepo, ev),
	}
}

func uintPtr(v uint) *uint { return &v }

var (
	ctx     = context.Background()
	admin   = authz.Principal{UserID: 1, Role: models.RoleAdmin}
	cliente = authz.Principal{UserID: 4, Role: models.RoleCliente}
)

func dono(restauranteID uint) authz.Principal {
	return authz.Principal{UserID: 10 + restauranteID, Role: models.RoleRestaurante, RestauranteID: uintPtr(restauranteID)}
}

// seedRestaurante creates a restaurant as admin and returns its id
func (f *fixture) seedRestaurante(t *testing.T, nome string) uint {
	t.Helper()
	r, err := f.restaurantes.Cadastrar(ctx, admin, dto.RestauranteRequest{Nome: nome, Categoria: "Italiana", TaxaEntrega: 5})
	require.NoError(t, err)
	return r.ID
}

func (f *fixture) seedProduto(t *testing.T, restauranteID uint) uint {
	t.Helper()
	p, err := f.produtos.Cadastrar(ctx, admin, dto.ProdutoRequest{Nome: "Pizza", Preco: 30, RestauranteID: restauranteID})
	require.NoError(t, err)
	return p.ID
}

type decisionCounter struct {
	allowed, denied int
}

func (d *decisionCounter) RecordDecision(_ authz.Resource, _ authz.Operation, allowed bool) {
	if allowed {
		d.allowed++
	} else {
		d.denied++
	}
}
