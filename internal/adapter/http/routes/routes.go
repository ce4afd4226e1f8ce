package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "gestao_obras/docs" // swagger docs
	"gestao_obras/internal/adapter/http/handlers"
	"gestao_obras/internal/adapter/http/middleware"
	"gestao_obras/internal/adapter/persistence/repository"
	"gestao_obras/internal/infrastructure/config"
	"gestao_obras/internal/infrastructure/database"
	"gestao_obras/internal/infrastructure/documents"
	"gestao_obras/internal/infrastructure/identity"
	"gestao_obras/internal/infrastructure/security"
	"gestao_obras/internal/usecase"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	LPU      *handlers.LPUHandler
	Supplier *handlers.SupplierHandler
	Portal   *handlers.SupplierPortalHandler
	Identity *handlers.IdentityHandler
	Export   *handlers.ExportHandler
}

// RouterOptions carries the cross-cutting pieces of the router.
type RouterOptions struct {
	CORSOrigins []string
	Verifier    interfaces.IIdentityVerifier
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the gin engine. Internal routes require a bearer identity; the
// supplier portal routes are public and rate limited per client IP.
func NewRouter(opts RouterOptions, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts.CORSOrigins)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root := router.Group("")
	addPingRoutes(root)

	public := router.Group("/public", opts.RateLimiter.Middleware())
	addSupplierPortalRoutes(public, h.Portal)

	internal := router.Group("", middleware.AuthRequired(opts.Verifier))
	internal.GET("/me", h.Identity.Me)
	addLPURoutes(internal, h.LPU, h.Export)
	addSupplierRoutes(internal, h.Supplier)

	return router
}

func setMiddlewares(router *gin.Engine, origins []string) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", middleware.RequestIDHeader}

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(corsConfig))
}

// Run wires the application from cfg and serves until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}
	if cfg.DynamoDB.AutoCreateTables {
		err := database.EnsureTables(ctx, ddb, database.TableNames{
			LPUs:          cfg.DynamoDB.LPUsTable,
			Suppliers:     cfg.DynamoDB.SuppliersTable,
			Works:         cfg.DynamoDB.WorksTable,
			QuoteTokenGSI: repository.LPUQuoteTokenIndex,
		})
		if err != nil {
			return fmt.Errorf("ensure dynamodb tables: %w", err)
		}
	}

	lpuRepo := repository.NewLPUDynamoRepository(ddb, cfg.DynamoDB.LPUsTable)
	supplierRepo := repository.NewSupplierDynamoRepository(ddb, cfg.DynamoDB.SuppliersTable)
	workRepo := repository.NewWorkDynamoRepository(ddb, cfg.DynamoDB.WorksTable)

	lpuUseCase := usecase.NewLPUUseCase(lpuRepo, workRepo, supplierRepo, security.NewQuoteTokenGenerator())
	supplierUseCase := usecase.NewSupplierUseCase(supplierRepo)
	portalUseCase := usecase.NewSupplierPortalUseCase(lpuRepo, supplierRepo)
	exportUseCase := usecase.NewLPUExportUseCase(lpuRepo, cfg.Supplier.BaseURL, documents.NewXLSXRenderer(), documents.NewPDFRenderer())

	router := NewRouter(RouterOptions{
		CORSOrigins: cfg.CORS.AllowedOrigins,
		Verifier:    identity.NewVerifier(cfg.Auth),
		RateLimiter: middleware.NewRateLimiter(ctx, cfg.Supplier.RateLimitPerMinute, cfg.Supplier.RateLimitBurst),
	}, Handlers{
		LPU:      handlers.NewLPUHandler(lpuUseCase),
		Supplier: handlers.NewSupplierHandler(supplierUseCase),
		Portal:   handlers.NewSupplierPortalHandler(portalUseCase),
		Identity: handlers.NewIdentityHandler(),
		Export:   handlers.NewExportHandler(exportUseCase),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("[http][server] listening port=%s environment=%s", cfg.Server.Port, cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("startup the application: %w", err)
	case <-ctx.Done():
	}

	logrus.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logrus.Info("[http][server] exited")
	return nil
}
