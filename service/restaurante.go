package service

import (
	"context"
	"strings"

	"delivery-api/authz"
	"delivery-api/dto"
	"delivery-api/models"
	"delivery-api/repository"
)

type RestauranteService struct {
	repo  repository.RestauranteRepository
	authz *authz.Evaluator
}

func NewRestauranteService(repo repository.RestauranteRepository, ev *authz.Evaluator) *RestauranteService {
	return &RestauranteService{repo: repo, authz: ev}
}

// Cadastrar creates a restaurant. There is no owner yet, so only the role is checked.
func (s *RestauranteService) Cadastrar(ctx context.Context, p authz.Principal, req dto.RestauranteRequest) (*models.Restaurante, error) {
	if err := s.authz.AuthorizeUnscoped(p, authz.ResourceRestaurante, authz.OpCreate); err != nil {
		return nil, err
	}
	r := &models.Restaurante{Ativo: true}
	applyRestaurante(r, req)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RestauranteService) BuscarPorID(ctx context.Context, p authz.Principal, id uint) (*models.Restaurante, error) {
	if err := s.authz.AuthorizeUnscoped(p, authz.ResourceRestaurante, authz.OpRead); err != nil {
		return nil, err
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "restaurante")
	}
	return r, nil
}

func (s *RestauranteService) ListarTodos(ctx context.Context, p authz.Principal) ([]models.Restaurante, error) {
	if err := s.authz.AuthorizeUnscoped(p, authz.ResourceRestaurante, authz.OpRead); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

func (s *RestauranteService) BuscarPorCategoria(ctx context.Context, p authz.Principal, categoria string) ([]models.Restaurante, error) {
	if err := s.authz.AuthorizeUnscoped(p, authz.ResourceRestaurante, authz.OpRead); err != nil {
		return nil, err
	}
	return s.repo.FindByCategoria(ctx, strings.TrimSpace(categoria))
}

func (s *RestauranteService) Atualizar(ctx context.Context, p authz.Principal, id uint, req dto.RestauranteRequest) (*models.Restaurante, error) {
	r, err := s.loadForMutation(ctx, p, id, authz.OpUpdate)
	if err != nil {
		return nil, err
	}
	applyRestaurante(r, req)
	if err := s.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// AlternarStatus flips the restaurant's ativo flag
func (s *RestauranteService) AlternarStatus(ctx context.Context, p authz.Principal, id uint) (*models.Restaurante, error) {
	r, err := s.loadForMutation(ctx, p, id, authz.OpToggleStatus)
	if err != nil {
		return nil, err
	}
	r.Ativo = !r.Ativo
	if err := s.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// loadForMutation runs the role stage, the lookup, then the ownership stage.
// A role without rights gets ErrForbidden even for an unknown id.
func (s *RestauranteService) loadForMutation(ctx context.Context, p authz.Principal, id uint, op authz.Operation) (*models.Restaurante, error) {
	if err := s.authz.Permits(p, authz.ResourceRestaurante, op); err != nil {
		return nil, err
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "restaurante")
	}
	if err := s.authz.Authorize(p, authz.ResourceRestaurante, op, r.OwnerID()); err != nil {
		return nil, err
	}
	return r, nil
}

func applyRestaurante(r *models.Restaurante, req dto.RestauranteRequest) {
	r.Nome = strings.TrimSpace(req.Nome)
	r.Categoria = strings.TrimSpace(req.Categoria)
	r.Telefone = req.Telefone
	r.Endereco = req.Endereco
	r.TaxaEntrega = req.TaxaEntrega
	r.TempoEntregaMinutos = req.TempoEntregaMinutos
}
