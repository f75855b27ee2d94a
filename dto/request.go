// Package dto shapes request bodies and responses for the HTTP layer.
package dto

import "delivery-api/models"

type RegisterRequest struct {
	Nome          string      `json:"nome" binding:"required"`
	Email         string      `json:"email" binding:"required,email"`
	Senha         string      `json:"senha" binding:"required,min=6"`
	Role          models.Role `json:"role" binding:"omitempty,role"`
	RestauranteID *uint       `json:"restauranteId"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

type ClienteRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
}

type RestauranteRequest struct {
	Nome                string  `json:"nome" binding:"required"`
	Categoria           string  `json:"categoria" binding:"required"`
	Telefone            string  `json:"telefone"`
	Endereco            string  `json:"endereco"`
	TaxaEntrega         float64 `json:"taxaEntrega" binding:"gte=0"`
	TempoEntregaMinutos int     `json:"tempoEntregaMinutos" binding:"gte=0"`
}

type ProdutoRequest struct {
	Nome          string  `json:"nome" binding:"required"`
	Categoria     string  `json:"categoria"`
	Descricao     string  `json:"descricao"`
	Preco         float64 `json:"preco" binding:"required,gt=0"`
	RestauranteID uint    `json:"restauranteId" binding:"required"`
}
