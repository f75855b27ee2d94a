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

	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs credentials for authenticated users and revokes them on logout.
type TokenIssuer interface {
	Generate(u *models.Usuario) (string, error)
	Revoke(ctx context.Context, p authz.Principal) error
}

type AuthService struct {
	users      repository.UsuarioRepository
	tokens     TokenIssuer
	bcryptCost int
}

func NewAuthService(users repository.UsuarioRepository, tokens TokenIssuer, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates a user account. Role defaults to CLIENTE; a RESTAURANTE
// account must name the single restaurant it manages, other roles never carry one.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.Usuario, error) {
	role := req.Role
	if role == "" {
		role = models.RoleCliente
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: invalid role %q", ErrValidation, role)
	}

	var restauranteID *uint
	if role == models.RoleRestaurante {
		if req.RestauranteID == nil || *req.RestauranteID == 0 {
			return nil, fmt.Errorf("%w: restauranteId is required for role RESTAURANTE", ErrValidation)
		}
		id := *req.RestauranteID
		restauranteID = &id
	}

	email := normalizeEmail(req.Email)
	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: email %s already registered", ErrConflict, email)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.Usuario{
		Nome:          strings.TrimSpace(req.Nome),
		Email:         email,
		SenhaHash:     string(hash),
		Role:          role,
		RestauranteID: restauranteID,
		Ativo:         true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, conflict(err, "email "+email+" already registered")
	}
	return u, nil
}

// Login checks the password and returns a signed token
func (s *AuthService) Login(ctx context.Context, email, senha string) (string, error) {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !u.Ativo {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(senha)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Generate(u)
}

// Me returns the account behind the principal
func (s *AuthService) Me(ctx context.Context, p authz.Principal) (*models.Usuario, error) {
	u, err := s.users.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, notFound(err, "usuario")
	}
	return u, nil
}

func (s *AuthService) Logout(ctx context.Context, p authz.Principal) error {
	return s.tokens.Revoke(ctx, p)
}

// EnsureAdmin creates an ADMIN account with the given credentials unless the
// email is already registered. It reports whether an account was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, senha string) (bool, error) {
	_, err := s.Register(ctx, dto.RegisterRequest{
		Nome:  "Administrador",
		Email: email,
		Senha: senha,
		Role:  models.RoleAdmin,
	})
	if errors.Is(err, ErrConflict) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
