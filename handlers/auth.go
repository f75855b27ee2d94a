package handlers

import (
	"net/http"

	"delivery-api/dto"
	"delivery-api/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	svc    *service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger.Named("auth")}
}

// Register creates a new user account
//
//	@Summary	Register a user (role defaults to CLIENTE)
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.RegisterRequest	true	"account"
//	@Success	201		{object}	dto.UsuarioResponse
//	@Router		/api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	h.logger.Info("user registered", zap.Uint("user_id", u.ID), zap.String("role", string(u.Role)))
	c.JSON(http.StatusCreated, dto.NewUsuarioResponse(u))
}

// Login authenticates a user and returns the bare JWT as the body
//
//	@Summary	Log in
//	@Tags		auth
//	@Accept		json
//	@Produce	plain
//	@Param		body	body		dto.LoginRequest	true	"credentials"
//	@Success	200		{string}	string				"JWT"
//	@Router		/api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tok, err := h.svc.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	c.String(http.StatusOK, tok)
}

// Me returns the authenticated user's account
//
//	@Summary	Current user
//	@Tags		auth
//	@Security	bearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.UsuarioResponse
//	@Router		/api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	u, err := h.svc.Me(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.logger, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.NewUsuarioResponse(u))
}

// Logout revokes the presented token
//
//	@Summary	Log out
//	@Tags		auth
//	@Security	bearerAuth
//	@Success	204
//	@Router		/api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := h.svc.Logout(c.Request.Context(), p); err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}
