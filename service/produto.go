package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"delivery-api/authz"
	"delivery-api/dto"
	"delivery-api/models"
	"delivery-api/repository"
)

type ProdutoService struct {
	repo         repository.ProdutoRepository
	restaurantes repository.RestauranteRepository
	authz        *authz.Evaluator
}

func NewProdutoService(repo repository.ProdutoRepository, restaurantes repository.RestauranteRepository, ev *authz.Evaluator) *ProdutoService {
	return &ProdutoService{repo: repo, restaurantes: restaurantes, authz: ev}
}

// Cadastrar adds a product to req.RestauranteID's menu. The owner is known
// from the request, so ownership is decided before the restaurant lookup.
func (s *ProdutoService) Cadastrar(ctx context.Context, p authz.Principal, req dto.ProdutoRequest) (*models.Produto, error) {
	if err := s.authz.Authorize(p, authz.ResourceProduto, authz.OpCreate, req.RestauranteID); err != nil {
		return nil, err
	}
	if err := s.ensureRestaurante(ctx, req.RestauranteID); err != nil {
		return nil, err
	}
	prod := &models.Produto{Disponivel: true}
	applyProduto(prod, req)
	if err := s.repo.Create(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *ProdutoService) BuscarPorID(ctx context.Context, p authz.Principal, id uint) (*models.Produto, error) {
	if err := s.authz.Permits(p, authz.ResourceProduto, authz.OpRead); err != nil {
		return nil, err
	}
	prod, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "produto")
	}
	if err := s.authz.Authorize(p, authz.ResourceProduto, authz.OpRead, prod.OwnerID()); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *ProdutoService) BuscarPorRestaurante(ctx context.Context, p authz.Principal, restauranteID uint) ([]models.Produto, error) {
	if err := s.authz.Authorize(p, authz.ResourceProduto, authz.OpRead, restauranteID); err != nil {
		return nil, err
	}
	return s.repo.FindByRestauranteID(ctx, restauranteID)
}

// Atualizar replaces a product's fields. Moving it to another restaurant
// requires ownership of both the current and the target restaurant, decided
// as one authorization.
func (s *ProdutoService) Atualizar(ctx context.Context, p authz.Principal, id uint, req dto.ProdutoRequest) (*models.Produto, error) {
	if err := s.authz.Permits(p, authz.ResourceProduto, authz.OpUpdate); err != nil {
		return nil, err
	}
	prod, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "produto")
	}
	owners := []uint{prod.OwnerID()}
	moving := req.RestauranteID != prod.RestauranteID
	if moving {
		owners = append(owners, req.RestauranteID)
	}
	if err := s.authz.AuthorizeAll(p, authz.ResourceProduto, authz.OpUpdate, owners...); err != nil {
		return nil, err
	}
	if moving {
		if err := s.ensureRestaurante(ctx, req.RestauranteID); err != nil {
			return nil, err
		}
	}
	applyProduto(prod, req)
	if err := s.repo.Save(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *ProdutoService) AlterarDisponibilidade(ctx context.Context, p authz.Principal, id uint, disponivel bool) (*models.Produto, error) {
	prod, err := s.loadForMutation(ctx, p, id, authz.OpToggleStatus)
	if err != nil {
		return nil, err
	}
	prod.Disponivel = disponivel
	if err := s.repo.Save(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *ProdutoService) loadForMutation(ctx context.Context, p authz.Principal, id uint, op authz.Operation) (*models.Produto, error) {
	if err := s.authz.Permits(p, authz.ResourceProduto, op); err != nil {
		return nil, err
	}
	prod, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "produto")
	}
	if err := s.authz.Authorize(p, authz.ResourceProduto, op, prod.OwnerID()); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *ProdutoService) ensureRestaurante(ctx context.Context, id uint) error {
	_, err := s.restaurantes.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: id %d", ErrRestauranteNotFound, id)
	}
	return err
}

func applyProduto(prod *models.Produto, req dto.ProdutoRequest) {
	prod.Nome = strings.TrimSpace(req.Nome)
	prod.Categoria = strings.TrimSpace(req.Categoria)
	prod.Descricao = req.Descricao
	prod.Preco = req.Preco
	prod.RestauranteID = req.RestauranteID
}
