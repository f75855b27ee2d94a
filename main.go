package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"delivery-api/authz"
	"delivery-api/config"
	"delivery-api/dto"
	"delivery-api/handlers"
	"delivery-api/metrics"
	"delivery-api/repository"
	"delivery-api/routes"
	"delivery-api/service"
	"delivery-api/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const version = "1.0.0"

//go:generate swag init --generalInfo main.go --output docs --outputTypes go

// @title						Delivery Tech API
// @version					1.0
// @description				Food delivery backend: clientes, restaurantes and produtos.
// @BasePath					/
// @securityDefinitions.apikey	bearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	gin.SetMode(cfg.Server.Mode)

	db, err := config.OpenDB(cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database ready", zap.String("driver", cfg.Database.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var denylist token.Denylist
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
		denylist = token.NewRedisDenylist(rdb)
		logger.Info("token denylist on redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		denylist = token.NewMemoryDenylist()
		logger.Info("token denylist in memory")
	}

	if err := dto.RegisterValidations(); err != nil {
		return err
	}

	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer, denylist)
	m := metrics.New()
	ev := authz.NewEvaluator(m)

	usuarios := repository.NewUsuarioRepository(db)
	restaurantes := repository.NewRestauranteRepository(db)

	authSvc := service.NewAuthService(usuarios, tokens, cfg.Auth.BcryptCost)
	if cfg.Auth.AdminEmail != "" {
		created, err := authSvc.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
		if err != nil {
			return err
		}
		if created {
			logger.Info("admin account created", zap.String("email", cfg.Auth.AdminEmail))
		}
	}

	router := routes.NewRouter(routes.Options{
		Logger:            logger,
		Resolver:          authz.NewResolver(tokens),
		Evaluator:         ev,
		Metrics:           m,
		Production:        cfg.Server.Production,
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		AuthRatePerMinute: cfg.RateLimit.AuthRequestsPerMinute,
		Public:            handlers.NewPublicHandler(db, version, logger),
		Auth:              handlers.NewAuthHandler(authSvc, logger),
		Clientes:          handlers.NewClienteHandler(service.NewClienteService(repository.NewClienteRepository(db), ev), logger),
		Restaurantes:      handlers.NewRestauranteHandler(service.NewRestauranteService(restaurantes, ev), logger),
		Produtos:          handlers.NewProdutoHandler(service.NewProdutoService(repository.NewProdutoRepository(db), restaurantes, ev), logger),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
