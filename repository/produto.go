package repository

import (
	"context"

	"delivery-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProdutoRepository interface {
	Create(ctx context.Context, p *models.Produto) error
	Save(ctx context.Context, p *models.Produto) error
	FindByID(ctx context.Context, id uint) (*models.Produto, error)
	FindByRestauranteID(ctx context.Context, restauranteID uint) ([]models.Produto, error)
}

type GormProdutoRepository struct {
	db *gorm.DB
}

func NewProdutoRepository(db *gorm.DB) *GormProdutoRepository {
	return &GormProdutoRepository{db: db}
}

func (r *GormProdutoRepository) Create(ctx context.Context, p *models.Produto) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error, "create produto")
}

func (r *GormProdutoRepository) Save(ctx context.Context, p *models.Produto) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error, "save produto")
}

func (r *GormProdutoRepository) FindByID(ctx context.Context, id uint) (*models.Produto, error) {
	var p models.Produto
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err, "find produto")
	}
	return &p, nil
}

func (r *GormProdutoRepository) FindByRestauranteID(ctx context.Context, restauranteID uint) ([]models.Produto, error) {
	var produtos []models.Produto
	err := r.db.WithContext(ctx).Where("restaurante_id = ?", restauranteID).Order("id asc").Find(&produtos).Error
	if err != nil {
		return nil, translate(err, "list produtos by restaurante")
	}
	return produtos, nil
}
