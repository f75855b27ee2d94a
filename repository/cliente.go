package repository

import (
	"context"

	"delivery-api/models"

	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *models.Cliente) error
	Save(ctx context.Context, c *models.Cliente) error
	FindByID(ctx context.Context, id uint) (*models.Cliente, error)
	FindByEmail(ctx context.Context, email string) (*models.Cliente, error)
	FindAtivos(ctx context.Context) ([]models.Cliente, error)
}

type GormClienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) *GormClienteRepository {
	return &GormClienteRepository{db: db}
}

func (r *GormClienteRepository) Create(ctx context.Context, c *models.Cliente) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, "create cliente")
}

func (r *GormClienteRepository) Save(ctx context.Context, c *models.Cliente) error {
	return translate(r.db.WithContext(ctx).Save(c).Error, "save cliente")
}

func (r *GormClienteRepository) FindByID(ctx context.Context, id uint) (*models.Cliente, error) {
	var c models.Cliente
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, "find cliente")
	}
	return &c, nil
}

func (r *GormClienteRepository) FindByEmail(ctx context.Context, email string) (*models.Cliente, error) {
	var c models.Cliente
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		return nil, translate(err, "find cliente by email")
	}
	return &c, nil
}

// FindAtivos lists active clientes ordered by name
func (r *GormClienteRepository) FindAtivos(ctx context.Context) ([]models.Cliente, error) {
	var clientes []models.Cliente
	err := r.db.WithContext(ctx).Where("ativo = ?", true).Order("nome asc").Find(&clientes).Error
	if err != nil {
		return nil, translate(err, "list clientes")
	}
	return clientes, nil
}
