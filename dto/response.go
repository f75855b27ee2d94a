package dto

import "delivery-api/models"

type UsuarioResponse struct {
	ID            uint        `json:"id"`
	Nome          string      `json:"nome"`
	Email         string      `json:"email"`
	Role          models.Role `json:"role"`
	RestauranteID *uint       `json:"restauranteId,omitempty"`
	Ativo         bool        `json:"ativo"`
}

type ClienteResponse struct {
	ID       uint   `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone,omitempty"`
	Endereco string `json:"endereco,omitempty"`
	Ativo    bool   `json:"ativo"`
}

type RestauranteResponse struct {
	ID                  uint    `json:"id"`
	Nome                string  `json:"nome"`
	Categoria           string  `json:"categoria"`
	Telefone            string  `json:"telefone,omitempty"`
	Endereco            string  `json:"endereco,omitempty"`
	TaxaEntrega         float64 `json:"taxaEntrega"`
	TempoEntregaMinutos int     `json:"tempoEntregaMinutos"`
	Avaliacao           float64 `json:"avaliacao"`
	Ativo               bool    `json:"ativo"`
}

type ProdutoResponse struct {
	ID            uint    `json:"id"`
	Nome          string  `json:"nome"`
	Categoria     string  `json:"categoria,omitempty"`
	Descricao     string  `json:"descricao,omitempty"`
	Preco         float64 `json:"preco"`
	Disponivel    bool    `json:"disponivel"`
	RestauranteID uint    `json:"restauranteId"`
}

func NewUsuarioResponse(u *models.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:            u.ID,
		Nome:          u.Nome,
		Email:         u.Email,
		Role:          u.Role,
		RestauranteID: u.RestauranteID,
		Ativo:         u.Ativo,
	}
}

func NewClienteResponse(c *models.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:       c.ID,
		Nome:     c.Nome,
		Email:    c.Email,
		Telefone: c.Telefone,
		Endereco: c.Endereco,
		Ativo:    c.Ativo,
	}
}

func NewClienteResponses(cs []models.Cliente) []ClienteResponse {
	out := make([]ClienteResponse, 0, len(cs))
	for i := range cs {
		out = append(out, NewClienteResponse(&cs[i]))
	}
	return out
}

func NewRestauranteResponse(r *models.Restaurante) RestauranteResponse {
	return RestauranteResponse{
		ID:                  r.ID,
		Nome:                r.Nome,
		Categoria:           r.Categoria,
		Telefone:            r.Telefone,
		Endereco:            r.Endereco,
		TaxaEntrega:         r.TaxaEntrega,
		TempoEntregaMinutos: r.TempoEntregaMinutos,
		Avaliacao:           r.Avaliacao,
		Ativo:               r.Ativo,
	}
}

func NewRestauranteResponses(rs []models.Restaurante) []RestauranteResponse {
	out := make([]RestauranteResponse, 0, len(rs))
	for i := range rs {
		out = append(out, NewRestauranteResponse(&rs[i]))
	}
	return out
}

func NewProdutoResponse(p *models.Produto) ProdutoResponse {
	return ProdutoResponse{
		ID:            p.ID,
		Nome:          p.Nome,
		Categoria:     p.Categoria,
		Descricao:     p.Descricao,
		Preco:         p.Preco,
		Disponivel:    p.Disponivel,
		RestauranteID: p.RestauranteID,
	}
}

func NewProdutoResponses(ps []models.Produto) []ProdutoResponse {
	out := make([]ProdutoResponse, 0, len(ps))
	for i := range ps {
		out = append(out, NewProdutoResponse(&ps[i]))
	}
	return out
}
