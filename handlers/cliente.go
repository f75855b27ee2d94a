package handlers

import (
	"net/http"

	"delivery-api/dto"
	"delivery-api/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const clienteNotFound = "Cliente não encontrado"

type ClienteHandler struct {
	svc    *service.ClienteService
	logger *zap.Logger
}

func NewClienteHandler(svc *service.ClienteService, logger *zap.Logger) *ClienteHandler {
	return &ClienteHandler{svc: svc, logger: logger.Named("clientes")}
}

// Cadastrar registers a customer
//
//	@Summary	Create cliente
//	@Tags		clientes
//	@Security	bearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.ClienteRequest	true	"cliente"
//	@Success	200		{object}	dto.ClienteResponse
//	@Router		/api/clientes [post]
func (h *ClienteHandler) Cadastrar(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cli, err := h.svc.Cadastrar(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, h.logger, err, clienteNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewClienteResponse(cli))
}

// Listar returns active customers
//
//	@Summary	List active clientes
//	@Tags		clientes
//	@Security	bearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.ClienteResponse
//	@Router		/api/clientes [get]
func (h *ClienteHandler) Listar(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	clientes, err := h.svc.ListarAtivos(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.logger, err, clienteNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewClienteResponses(clientes))
}

// @Summary	Get cliente
// @Tags		clientes
// @Security	bearerAuth
// @Produce	json
// @Param		id	path		int	true	"cliente id"
// @Success	200	{object}	dto.ClienteResponse
// @Failure	404	{object}	map[string]string
// @Router		/api/clientes/{id} [get]
func (h *ClienteHandler) BuscarPorID(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	cli, err := h.svc.BuscarPorID(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, h.logger, err, clienteNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewClienteResponse(cli))
}

// @Summary	Update cliente
// @Tags		clientes
// @Security	bearerAuth
// @Accept		json
// @Produce	json
// @Param		id		path		int					true	"cliente id"
// @Param		body	body		dto.ClienteRequest	true	"cliente"
// @Success	200		{object}	dto.ClienteResponse
// @Router		/api/clientes/{id} [put]
func (h *ClienteHandler) Atualizar(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cli, err := h.svc.Atualizar(c.Request.Context(), p, id, req)
	if err != nil {
		respondError(c, h.logger, err, clienteNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewClienteResponse(cli))
}

// AtivarDesativar toggles the customer's ativo flag
//
//	@Summary	Toggle cliente status
//	@Tags		clientes
//	@Security	bearerAuth
//	@Param		id	path	int	true	"cliente id"
//	@Success	204
//	@Router		/api/clientes/{id}/status [patch]
func (h *ClienteHandler) AtivarDesativar(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.AtivarDesativar(c.Request.Context(), p, id); err != nil {
		respondError(c, h.logger, err, clienteNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
