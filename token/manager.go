// Package token issues and verifies the signed bearer credentials used by the API.
package token

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"delivery-api/authz"
	"delivery-api/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrRevoked = errors.New("token revoked")

type Claims struct {
	UserID        uint        `json:"user_id"`
	Email         string      `json:"email"`
	Role          models.Role `json:"role"`
	RestauranteID *uint       `json:"restaurante_id,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs tokens with HS256 and verifies them against the denylist.
type Manager struct {
	secret   []byte
	ttl      time.Duration
	issuer   string
	denylist Denylist
	now      func() time.Time
}

func NewManager(secret string, ttl time.Duration, issuer string, denylist Denylist) *Manager {
	return &Manager{
		secret:   []byte(secret),
		ttl:      ttl,
		issuer:   issuer,
		denylist: denylist,
		now:      time.Now,
	}
}

// Generate creates a signed JWT for a given user
func (m *Manager) Generate(u *models.Usuario) (string, error) {
	now := m.now()
	claims := Claims{
		UserID:        u.ID,
		Email:         u.Email,
		Role:          u.Role,
		RestauranteID: u.RestauranteID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify implements authz.TokenVerifier.
func (m *Manager) Verify(ctx context.Context, raw string) (authz.Principal, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return authz.Principal{}, fmt.Errorf("parse token: %w", err)
	}
	if !tok.Valid {
		return authz.Principal{}, errors.New("invalid token")
	}

	if m.denylist != nil && claims.ID != "" {
		revoked, err := m.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return authz.Principal{}, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return authz.Principal{}, ErrRevoked
		}
	}

	return authz.Principal{
		UserID:        claims.UserID,
		Email:         claims.Email,
		Role:          claims.Role,
		RestauranteID: claims.RestauranteID,
		TokenID:       claims.ID,
		ExpiresAt:     claims.ExpiresAt.Time,
	}, nil
}

// Revoke denies the principal's token until it would have expired anyway.
func (m *Manager) Revoke(ctx context.Context, p authz.Principal) error {
	if m.denylist == nil || p.TokenID == "" {
		return nil
	}
	ttl := p.ExpiresAt.Sub(m.now())
	if ttl <= 0 {
		return nil
	}
	if err := m.denylist.Revoke(ctx, p.TokenID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
