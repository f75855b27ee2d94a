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

type ClienteService struct {
	repo  repository.ClienteRepository
	authz *authz.Evaluator
}

func NewClienteService(repo repository.ClienteRepository, ev *authz.Evaluator) *ClienteService {
	return &ClienteService{repo: repo, authz: ev}
}

func (s *ClienteService) Cadastrar(ctx context.Context, p authz.Principal, req dto.ClienteRequest) (*models.Cliente, error) {
	if err := s.authz.AuthorizeUnscoped(p, authz.ResourceCliente, authz.OpCreate); err != nil {
		return nil, err
	}
	email := normalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, email, 0); err != nil {
		return nil, err
	}
	c := &models.Cliente{
		Nome:     strings.TrimSpace(req.Nome),
		Email:    email,
		Telefone: req.Telefone,
		Endereco: req.Endereco,
		Ativo:    true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, conflict(err, "email "+email+" already registered")
	}
	return c, nil
}

func (s *ClienteService) BuscarPorID(ctx context.Context, p authz.Principal, id uint) (*models.Cliente, error) {
	if err := s.authz.AuthorizeUnscoped(p, authz.ResourceCliente, authz.OpRead); err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "cliente")
	}
	return c, nil
}

// ListarAtivos returns only clientes whose ativo flag is set
func (s *ClienteService) ListarAtivos(ctx context.Context, p authz.Principal) ([]models.Cliente, error) {
	if err := s.authz.AuthorizeUnscoped(p, authz.ResourceCliente, authz.OpRead); err != nil {
		return nil, err
	}
	return s.repo.FindAtivos(ctx)
}

func (s *ClienteService) Atualizar(ctx context.Context, p authz.Principal, id uint, req dto.ClienteRequest) (*models.Cliente, error) {
	if err := s.authz.AuthorizeUnscoped(p, authz.ResourceCliente, authz.OpUpdate); err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "cliente")
	}
	email := normalizeEmail(req.Email)
	if email != c.Email {
		if err := s.ensureEmailFree(ctx, email, c.ID); err != nil {
			return nil, err
		}
	}
	c.Nome = strings.TrimSpace(req.Nome)
	c.Email = email
	c.Telefone = req.Telefone
	c.Endereco = req.Endereco
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, conflict(err, "email "+email+" already registered")
	}
	return c, nil
}

// AtivarDesativar flips the cliente's ativo flag
func (s *ClienteService) AtivarDesativar(ctx context.Context, p authz.Principal, id uint) (*models.Cliente, error) {
	if err := s.authz.AuthorizeUnscoped(p, authz.ResourceCliente, authz.OpToggleStatus); err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "cliente")
	}
	c.Ativo = !c.Ativo
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClienteService) ensureEmailFree(ctx context.Context, email string, selfID uint) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return fmt.Errorf("%w: email %s already registered", ErrConflict, email)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
