package routes

import (
	"delivery-api/authz"
	_ "delivery-api/docs"
	"delivery-api/handlers"
	"delivery-api/metrics"
	"delivery-api/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Options carries everything the router needs. Handlers are built by the caller.
type Options struct {
	Logger     *zap.Logger
	Resolver   *authz.Resolver
	Evaluator  *authz.Evaluator
	Metrics    *metrics.Metrics
	Production bool
	// AllowedOrigins for CORS; empty disables the CORS middleware.
	AllowedOrigins    []string
	AuthRatePerMinute int
	Public            *handlers.PublicHandler
	Auth              *handlers.AuthHandler
	Clientes          *handlers.ClienteHandler
	Restaurantes      *handlers.RestauranteHandler
	Produtos          *handlers.ProdutoHandler
}

// NewRouter builds the gin engine with the global middleware stack and every route.
func NewRouter(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(opts.Logger), middleware.Logger(opts.Logger))
	r.Use(middleware.SecureHeaders(opts.Production, opts.Logger))
	if len(opts.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(opts.AllowedOrigins))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	SetupRoutes(r, opts)
	return r
}

func SetupRoutes(r *gin.Engine, opts Options) {
	ev := opts.Evaluator
	authRequired := middleware.AuthRequired(opts.Resolver, opts.Logger)
	require := func(res authz.Resource, op authz.Operation) gin.HandlerFunc {
		return middleware.Require(ev, res, op)
	}

	// ── Public routes ──────────────────────────────────────────────
	r.GET("/", opts.Public.Hello)
	r.GET("/health", opts.Public.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/status", opts.Public.Status)

	auth := api.Group("/auth")
	if opts.AuthRatePerMinute > 0 {
		auth.Use(middleware.RateLimitByIP(opts.AuthRatePerMinute))
	}
	{
		auth.POST("/register", opts.Auth.Register)
		auth.POST("/login", opts.Auth.Login)
		auth.GET("/me", authRequired, opts.Auth.Me)
		auth.POST("/logout", authRequired, opts.Auth.Logout)
	}

	// ── Clientes ───────────────────────────────────────────────────
	clientes := api.Group("/clientes")
	clientes.Use(authRequired)
	{
		clientes.POST("", require(authz.ResourceCliente, authz.OpCreate), opts.Clientes.Cadastrar)
		clientes.GET("", require(authz.ResourceCliente, authz.OpRead), opts.Clientes.Listar)
		clientes.GET("/:id", require(authz.ResourceCliente, authz.OpRead), opts.Clientes.BuscarPorID)
		clientes.PUT("/:id", require(authz.ResourceCliente, authz.OpUpdate), opts.Clientes.Atualizar)
		clientes.PATCH("/:id/status", require(authz.ResourceCliente, authz.OpToggleStatus), opts.Clientes.AtivarDesativar)
	}

	// ── Restaurantes ───────────────────────────────────────────────
	restaurantes := api.Group("/restaurantes")
	restaurantes.Use(authRequired)
	{
		restaurantes.POST("", require(authz.ResourceRestaurante, authz.OpCreate), opts.Restaurantes.Cadastrar)
		restaurantes.GET("", require(authz.ResourceRestaurante, authz.OpRead), opts.Restaurantes.Listar)
		restaurantes.GET("/categoria/:categoria", require(authz.ResourceRestaurante, authz.OpRead), opts.Restaurantes.BuscarPorCategoria)
		restaurantes.GET("/:id", require(authz.ResourceRestaurante, authz.OpRead), opts.Restaurantes.BuscarPorID)
		restaurantes.PUT("/:id", require(authz.ResourceRestaurante, authz.OpUpdate), opts.Restaurantes.Atualizar)
		restaurantes.PATCH("/:id/status", require(authz.ResourceRestaurante, authz.OpToggleStatus), opts.Restaurantes.AlternarStatus)
	}

	// ── Produtos ───────────────────────────────────────────────────
	produtos := api.Group("/produtos")
	produtos.Use(authRequired)
	{
		produtos.POST("", require(authz.ResourceProduto, authz.OpCreate), opts.Produtos.Cadastrar)
		produtos.GET("/restaurante/:restauranteId", require(authz.ResourceProduto, authz.OpRead), opts.Produtos.BuscarPorRestaurante)
		produtos.GET("/:id", require(authz.ResourceProduto, authz.OpRead), opts.Produtos.BuscarPorID)
		produtos.PUT("/:id", require(authz.ResourceProduto, authz.OpUpdate), opts.Produtos.Atualizar)
		produtos.PATCH("/:id/disponibilidade", require(authz.ResourceProduto, authz.OpToggleStatus), opts.Produtos.AlterarDisponibilidade)
	}
}
