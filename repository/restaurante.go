package repository

import (
	"context"

	"delivery-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RestauranteRepository interface {
	Create(ctx context.Context, r *models.Restaurante) error
	Save(ctx context.Context, r *models.Restaurante) error
	FindByID(ctx context.Context, id uint) (*models.Restaurante, error)
	FindAll(ctx context.Context) ([]models.Restaurante, error)
	FindByCategoria(ctx context.Context, categoria string) ([]models.Restaurante, error)
}

type GormRestauranteRepository struct {
	db *gorm.DB
}

func NewRestauranteRepository(db *gorm.DB) *GormRestauranteRepository {
	return &GormRestauranteRepository{db: db}
}

func (r *GormRestauranteRepository) Create(ctx context.Context, rest *models.Restaurante) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(rest).Error, "create restaurante")
}

func (r *GormRestauranteRepository) Save(ctx context.Context, rest *models.Restaurante) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(rest).Error, "save restaurante")
}

func (r *GormRestauranteRepository) FindByID(ctx context.Context, id uint) (*models.Restaurante, error) {
	var rest models.Restaurante
	if err := r.db.WithContext(ctx).First(&rest, id).Error; err != nil {
		return nil, translate(err, "find restaurante")
	}
	return &rest, nil
}

func (r *GormRestauranteRepository) FindAll(ctx context.Context) ([]models.Restaurante, error) {
	var rests []models.Restaurante
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rests).Error; err != nil {
		return nil, translate(err, "list restaurantes")
	}
	return rests, nil
}

func (r *GormRestauranteRepository) FindByCategoria(ctx context.Context, categoria string) ([]models.Restaurante, error) {
	var rests []models.Restaurante
	err := r.db.WithContext(ctx).Where("categoria = ?", categoria).Order("id asc").Find(&rests).Error
	if err != nil {
		return nil, translate(err, "list restaurantes by categoria")
	}
	return rests, nil
}
