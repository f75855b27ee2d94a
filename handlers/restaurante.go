package handlers

import (
	"net/http"

	"delivery-api/dto"
	"delivery-api/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const restauranteNotFound = "Restaurante não encontrado"

type RestauranteHandler struct {
	svc    *service.RestauranteService
	logger *zap.Logger
}

func NewRestauranteHandler(svc *service.RestauranteService, logger *zap.Logger) *RestauranteHandler {
	return &RestauranteHandler{svc: svc, logger: logger.Named("restaurantes")}
}

// @Summary	Create restaurante
// @Tags		restaurantes
// @Security	bearerAuth
// @Accept		json
// @Produce	json
// @Param		body	body		dto.RestauranteRequest	true	"restaurante"
// @Success	200		{object}	dto.RestauranteResponse
// @Router		/api/restaurantes [post]
func (h *RestauranteHandler) Cadastrar(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.RestauranteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := h.svc.Cadastrar(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, h.logger, err, restauranteNotFound)
		return
	}
	h.logger.Info("restaurante created", zap.Uint("restaurante_id", r.ID), zap.Uint("by", p.UserID))
	c.JSON(http.StatusOK, dto.NewRestauranteResponse(r))
}

// @Summary	List restaurantes
// @Tags		restaurantes
// @Security	bearerAuth
// @Produce	json
// @Success	200	{array}	dto.RestauranteResponse
// @Router		/api/restaurantes [get]
func (h *RestauranteHandler) Listar(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	rs, err := h.svc.ListarTodos(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.logger, err, restauranteNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewRestauranteResponses(rs))
}

// @Summary	Get restaurante
// @Tags		restaurantes
// @Security	bearerAuth
// @Produce	json
// @Param		id	path		int	true	"restaurante id"
// @Success	200	{object}	dto.RestauranteResponse
// @Router		/api/restaurantes/{id} [get]
func (h *RestauranteHandler) BuscarPorID(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	r, err := h.svc.BuscarPorID(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, h.logger, err, restauranteNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewRestauranteResponse(r))
}

// @Summary	List restaurantes by categoria
// @Tags		restaurantes
// @Security	bearerAuth
// @Produce	json
// @Param		categoria	path	string	true	"categoria"
// @Success	200			{array}	dto.RestauranteResponse
// @Router		/api/restaurantes/categoria/{categoria} [get]
func (h *RestauranteHandler) BuscarPorCategoria(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	rs, err := h.svc.BuscarPorCategoria(c.Request.Context(), p, c.Param("categoria"))
	if err != nil {
		respondError(c, h.logger, err, restauranteNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewRestauranteResponses(rs))
}

// @Summary	Update restaurante
// @Tags		restaurantes
// @Security	bearerAuth
// @Accept		json
// @Produce	json
// @Param		id		path		int						true	"restaurante id"
// @Param		body	body		dto.RestauranteRequest	true	"restaurante"
// @Success	200		{object}	dto.RestauranteResponse
// @Failure	403		{object}	map[string]string
// @Router		/api/restaurantes/{id} [put]
func (h *RestauranteHandler) Atualizar(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.RestauranteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := h.svc.Atualizar(c.Request.Context(), p, id, req)
	if err != nil {
		respondError(c, h.logger, err, restauranteNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewRestauranteResponse(r))
}

// @Summary	Toggle restaurante status
// @Tags		restaurantes
// @Security	bearerAuth
// @Param		id	path	int	true	"restaurante id"
// @Success	204
// @Router		/api/restaurantes/{id}/status [patch]
func (h *RestauranteHandler) AlternarStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.AlternarStatus(c.Request.Context(), p, id); err != nil {
		respondError(c, h.logger, err, restauranteNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
