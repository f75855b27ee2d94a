package repository

import (
	"context"

	"delivery-api/models"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *models.Usuario) error
	FindByID(ctx context.Context, id uint) (*models.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*models.Usuario, error)
}

type GormUsuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) *GormUsuarioRepository {
	return &GormUsuarioRepository{db: db}
}

func (r *GormUsuarioRepository) Create(ctx context.Context, u *models.Usuario) error {
	return translate(r.db.WithContext(ctx).Create(u).Error, "create usuario")
}

func (r *GormUsuarioRepository) FindByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err, "find usuario")
	}
	return &u, nil
}

func (r *GormUsuarioRepository) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err, "find usuario by email")
	}
	return &u, nil
}
