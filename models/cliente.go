package models

import "time"

type Cliente struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Telefone  string    `json:"telefone"`
	Endereco  string    `json:"endereco"`
	Ativo     bool      `json:"ativo" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
