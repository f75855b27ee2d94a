package service_test

import (
	"testing"

	"delivery-api/authz"
	"delivery-api/dto"
	"delivery-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduto_Cadastrar(t *testing.T) {
	f := newFixture(t)
	id5 := f.seedRestaurante(t, "Cinco")
	id7 := f.seedRestaurante(t, "Sete")

	tests := []struct {
		name    string
		p       authz.Principal
		target  uint
		wantErr error
	}{
		{"owner", dono(id5), id5, nil},
		{"admin", admin, id7, nil},
		{"other restaurant", dono(id5), id7, authz.ErrForbidden},
		{"cliente", cliente, id5, authz.ErrForbidden},
		{"admin unknown restaurant", admin, 9999, service.ErrNotFound},
		{"restaurante unknown target", dono(id5), 9999, authz.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prod, err := f.produtos.Cadastrar(ctx, tt.p, dto.ProdutoRequest{Nome: "Pizza", Preco: 40, RestauranteID: tt.target})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, prod.Disponivel)
			assert.Equal(t, tt.target, prod.RestauranteID)
		})
	}
}

func TestProduto_Atualizar(t *testing.T) {
	f := newFixture(t)
	id5 := f.seedRestaurante(t, "Cinco")
	id7 := f.seedRestaurante(t, "Sete")
	prodID := f.seedProduto(t, id5)

	req := dto.ProdutoRequest{Nome: "Pizza Grande", Preco: 55, RestauranteID: id5}
	prod, err := f.produtos.Atualizar(ctx, dono(id5), prodID, req)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Grande", prod.Nome)
	assert.Equal(t, 55.0, prod.Preco)

	_, err = f.produtos.Atualizar(ctx, dono(id7), prodID, req)
	assert.ErrorIs(t, err, authz.ErrForbidden)

	// moving to a restaurant the caller does not manage
	moved := req
	moved.RestauranteID = id7
	_, err = f.produtos.Atualizar(ctx, dono(id5), prodID, moved)
	assert.ErrorIs(t, err, authz.ErrForbidden)

	prod, err = f.produtos.Atualizar(ctx, admin, prodID, moved)
	require.NoError(t, err)
	assert.Equal(t, id7, prod.RestauranteID)

	_, err = f.produtos.Atualizar(ctx, admin, 9999, req)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestProduto_AlterarDisponibilidade(t *testing.T) {
	f := newFixture(t)
	id5 := f.seedRestaurante(t, "Cinco")
	prodID := f.seedProduto(t, id5)

	prod, err := f.produtos.AlterarDisponibilidade(ctx, dono(id5), prodID, false)
	require.NoError(t, err)
	assert.False(t, prod.Disponivel)

	again, err := f.produtos.BuscarPorID(ctx, cliente, prodID)
	require.NoError(t, err)
	assert.False(t, again.Disponivel)

	_, err = f.produtos.AlterarDisponibilidade(ctx, cliente, prodID, true)
	assert.ErrorIs(t, err, authz.ErrForbidden)

	_, err = f.produtos.AlterarDisponibilidade(ctx, dono(id5+1), prodID, true)
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestProduto_BuscarPorRestaurante(t *testing.T) {
	f := newFixture(t)
	id5 := f.seedRestaurante(t, "Cinco")
	id7 := f.seedRestaurante(t, "Sete")
	f.seedProduto(t, id5)
	f.seedProduto(t, id5)
	f.seedProduto(t, id7)

	prods, err := f.produtos.BuscarPorRestaurante(ctx, cliente, id5)
	require.NoError(t, err)
	assert.Len(t, prods, 2)

	prods, err = f.produtos.BuscarPorRestaurante(ctx, dono(id5), id7)
	require.NoError(t, err)
	assert.Len(t, prods, 1, "reads are not ownership-scoped")

	prods, err = f.produtos.BuscarPorRestaurante(ctx, cliente, 9999)
	require.NoError(t, err)
	assert.Empty(t, prods)
}

func TestProduto_MoveToMissingRestaurante(t *testing.T) {
	f := newFixture(t)
	id5 := f.seedRestaurante(t, "Cinco")
	prodID := f.seedProduto(t, id5)

	_, err := f.produtos.Atualizar(ctx, admin, prodID, dto.ProdutoRequest{Nome: "Pizza", Preco: 30, RestauranteID: 9999})
	assert.ErrorIs(t, err, service.ErrRestauranteNotFound)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = f.produtos.Atualizar(ctx, admin, 9999, dto.ProdutoRequest{Nome: "Pizza", Preco: 30, RestauranteID: id5})
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.NotErrorIs(t, err, service.ErrRestauranteNotFound)
}

func TestProduto_MoveRecordsOneDecision(t *testing.T) {
	counter := &decisionCounter{}
	f := newFixtureWith(t, counter)
	id5 := f.seedRestaurante(t, "Cinco")
	id7 := f.seedRestaurante(t, "Sete")
	prodID := f.seedProduto(t, id5)

	*counter = decisionCounter{}
	_, err := f.produtos.Atualizar(ctx, admin, prodID, dto.ProdutoRequest{Nome: "Pizza", Preco: 30, RestauranteID: id7})
	require.NoError(t, err)
	assert.Equal(t, decisionCounter{allowed: 1}, *counter)

	*counter = decisionCounter{}
	_, err = f.produtos.Atualizar(ctx, dono(id7), prodID, dto.ProdutoRequest{Nome: "Pizza", Preco: 30, RestauranteID: id5})
	assert.ErrorIs(t, err, authz.ErrForbidden)
	assert.Equal(t, decisionCounter{denied: 1}, *counter)
}
