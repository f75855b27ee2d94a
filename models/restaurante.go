package models

import "time"

type Restaurante struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Nome                string    `json:"nome" gorm:"not null"`
	Categoria           string    `json:"categoria" gorm:"index"`
	Endereco            string    `json:"endereco"`
	Telefone            string    `json:"telefone"`
	TaxaEntrega         float64   `json:"taxaEntrega" gorm:"default:0"`
	TempoEntregaMinutos int       `json:"tempoEntregaMinutos"`
	Avaliacao           float64   `json:"avaliacao" gorm:"default:0"`
	Ativo               bool      `json:"ativo" gorm:"not null;default:true"`
	Produtos            []Produto `json:"produtos,omitempty" gorm:"foreignKey:RestauranteID"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// OwnerID is the restaurant a Restaurante belongs to, i.e. itself
func (r *Restaurante) OwnerID() uint {
	return r.ID
}
