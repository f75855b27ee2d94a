package handlers

import (
	"net/http"
	"strconv"

	"delivery-api/dto"
	"delivery-api/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const produtoNotFound = "Produto não encontrado"

type ProdutoHandler struct {
	svc    *service.ProdutoService
	logger *zap.Logger
}

func NewProdutoHandler(svc *service.ProdutoService, logger *zap.Logger) *ProdutoHandler {
	return &ProdutoHandler{svc: svc, logger: logger.Named("produtos")}
}

// Cadastrar adds a product to a restaurant's menu
//
//	@Summary	Create produto
//	@Tags		produtos
//	@Security	bearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.ProdutoRequest	true	"produto"
//	@Success	200		{object}	dto.ProdutoResponse
//	@Failure	403		{object}	map[string]string
//	@Router		/api/produtos [post]
func (h *ProdutoHandler) Cadastrar(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.ProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	prod, err := h.svc.Cadastrar(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, h.logger, err, restauranteNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewProdutoResponse(prod))
}

// @Summary	Get produto
// @Tags		produtos
// @Security	bearerAuth
// @Produce	json
// @Param		id	path		int	true	"produto id"
// @Success	200	{object}	dto.ProdutoResponse
// @Router		/api/produtos/{id} [get]
func (h *ProdutoHandler) BuscarPorID(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	prod, err := h.svc.BuscarPorID(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, h.logger, err, produtoNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewProdutoResponse(prod))
}

// @Summary	List produtos of a restaurante
// @Tags		produtos
// @Security	bearerAuth
// @Produce	json
// @Param		restauranteId	path	int	true	"restaurante id"
// @Success	200				{array}	dto.ProdutoResponse
// @Router		/api/produtos/restaurante/{restauranteId} [get]
func (h *ProdutoHandler) BuscarPorRestaurante(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	restauranteID, ok := paramID(c, "restauranteId")
	if !ok {
		return
	}
	prods, err := h.svc.BuscarPorRestaurante(c.Request.Context(), p, restauranteID)
	if err != nil {
		respondError(c, h.logger, err, restauranteNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewProdutoResponses(prods))
}

// @Summary	Update produto
// @Tags		produtos
// @Security	bearerAuth
// @Accept		json
// @Produce	json
// @Param		id		path		int					true	"produto id"
// @Param		body	body		dto.ProdutoRequest	true	"produto"
// @Success	200		{object}	dto.ProdutoResponse
// @Failure	403		{object}	map[string]string
// @Router		/api/produtos/{id} [put]
func (h *ProdutoHandler) Atualizar(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	prod, err := h.svc.Atualizar(c.Request.Context(), p, id, req)
	if err != nil {
		respondError(c, h.logger, err, produtoNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewProdutoResponse(prod))
}

// AlterarDisponibilidade sets the disponivel flag from the query string
//
//	@Summary	Set produto availability
//	@Tags		produtos
//	@Security	bearerAuth
//	@Param		id			path	int		true	"produto id"
//	@Param		disponivel	query	bool	true	"availability"
//	@Success	204
//	@Router		/api/produtos/{id}/disponibilidade [patch]
func (h *ProdutoHandler) AlterarDisponibilidade(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	disponivel, err := strconv.ParseBool(c.Query("disponivel"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter disponivel must be true or false"})
		return
	}
	if _, err := h.svc.AlterarDisponibilidade(c.Request.Context(), p, id, disponivel); err != nil {
		respondError(c, h.logger, err, produtoNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
