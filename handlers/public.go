package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	serviceName   = "Delivery Tech API"
	helloMessage  = "Olá mundo do Spring Boot!!"
	statusMessage = "Aplicação funcionando!!"
)

// PublicHandler serves the unauthenticated informational endpoints.
type PublicHandler struct {
	db      *gorm.DB
	version string
	logger  *zap.Logger
}

func NewPublicHandler(db *gorm.DB, version string, logger *zap.Logger) *PublicHandler {
	return &PublicHandler{db: db, version: version, logger: logger.Named("public")}
}

// Hello answers the root path with a plain-text greeting
//
//	@Summary	Greeting
//	@Tags		public
//	@Produce	plain
//	@Success	200	{string}	string
//	@Router		/ [get]
func (h *PublicHandler) Hello(c *gin.Context) {
	c.String(http.StatusOK, helloMessage)
}

// Status reports that the application is up, as plain text
//
//	@Summary	Service status
//	@Tags		public
//	@Produce	plain
//	@Success	200	{string}	string
//	@Router		/api/status [get]
func (h *PublicHandler) Status(c *gin.Context) {
	c.String(http.StatusOK, statusMessage)
}

// Health pings the database; 503 when it is unreachable
//
//	@Summary	Health check
//	@Tags		public
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	map[string]string
//	@Router		/health [get]
func (h *PublicHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Warn("database ping failed", zap.Error(err))
		dbStatus = "down"
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": dbStatus})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": dbStatus, "service": serviceName, "version": h.version})
}
