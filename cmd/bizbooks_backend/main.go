package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	limiterstore "github.com/ulule/limiter/v3/drivers/store/memory"

	_ "github.com/bizbooks/bizbooks_backend/cmd/docs"
	"github.com/bizbooks/bizbooks_backend/internal/adapters/store/memory"
	"github.com/bizbooks/bizbooks_backend/internal/adapters/store/snapshot"
	"github.com/bizbooks/bizbooks_backend/internal/core/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/handlers"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
	"github.com/bizbooks/bizbooks_backend/internal/platform/config"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
)

// noopSaver satisfies the snapshot interface when persistence is disabled.
type noopSaver struct{}

func (noopSaver) Save() error { return nil }

// @title BizBooks Backend API
// @version 1.0
// @description Ledger and voucher accounting engine for small businesses.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// In-memory stores; the snapshot manager is their only I/O path.
	ledgerRepo := memory.NewLedgerRepository()
	voucherRepo := memory.NewVoucherRepository()

	var saver middleware.SnapshotSaver = noopSaver{}
	if cfg.SnapshotPath != "" {
		manager := snapshot.NewManager(cfg.SnapshotPath, ledgerRepo, voucherRepo)
		if err := manager.Load(); err != nil {
			logger.Error("Failed to load snapshot", slog.String("error", err.Error()))
			os.Exit(1)
		}
		saver = manager
		logger.Info("Snapshot loaded", slog.String("path", cfg.SnapshotPath))
	}

	repos := &portsrepo.RepositoryProvider{
		LedgerRepo:  ledgerRepo,
		VoucherRepo: voucherRepo,
	}
	serviceContainer := services.NewServiceContainer(repos, cfg.GSTRatePercent)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom validators on gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidations(v); err != nil {
			logger.Error("Failed to register custom validators", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limiterstore.NewStore(), rate)))

	handlers.RegisterRoutes(r, cfg, serviceContainer, saver)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}

	// Final snapshot so nothing recorded since the last mutation is lost.
	if err := saver.Save(); err != nil {
		logger.Error("Failed to save final snapshot", slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
