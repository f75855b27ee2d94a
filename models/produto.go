package models

import "time"

// Produto always belongs to exactly one Restaurante; RestauranteID is its owner reference
type Produto struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	Nome          string      `json:"nome" gorm:"not null"`
	Categoria     string      `json:"categoria"`
	Descricao     string      `json:"descricao"`
	Preco         float64     `json:"preco" gorm:"not null"`
	Disponivel    bool        `json:"disponivel" gorm:"not null;default:true"`
	RestauranteID uint        `json:"restauranteId" gorm:"not null;index"`
	Restaurante   Restaurante `json:"-" gorm:"foreignKey:RestauranteID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// OwnerID is the restaurant that owns the product
func (p *Produto) OwnerID() uint {
	return p.RestauranteID
}
