package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/mycellar-backend/internal/adapter/imagestore"
	"github.com/heartmarshall/mycellar-backend/internal/adapter/postgres"
	tokenrepo "github.com/heartmarshall/mycellar-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/mycellar-backend/internal/adapter/postgres/user"
	winerepo "github.com/heartmarshall/mycellar-backend/internal/adapter/postgres/wine"
	"github.com/heartmarshall/mycellar-backend/internal/auth"
	"github.com/heartmarshall/mycellar-backend/internal/cache"
	"github.com/heartmarshall/mycellar-backend/internal/config"
	authsvc "github.com/heartmarshall/mycellar-backend/internal/service/auth"
	"github.com/heartmarshall/mycellar-backend/internal/service/cellar"
	"github.com/heartmarshall/mycellar-backend/internal/transport/middleware"
	"github.com/heartmarshall/mycellar-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// services, and serves HTTP until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	wines := winerepo.New(pool)

	queryCache := cache.New(cfg.Cache)
	images, err := imagestore.New(cfg.Images)
	if err != nil {
		return fmt.Errorf("init image store: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, txManager, jwtManager, cfg.Auth)
	cellarService := cellar.NewService(logger, wines, txManager, queryCache, images, cfg.Cellar)

	mux := rest.NewRouter(rest.RouterDeps{
		Auth:         rest.NewAuthHandler(authService, logger),
		Wines:        rest.NewWineHandler(cellarService, logger, cfg.Images.MaxBytes),
		Reference:    rest.NewReferenceHandler(),
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		ImageDir:     images.Dir(),
		ImageBaseURL: cfg.Images.BaseURL,
	})

	rateLimiter := middleware.NewRateLimiter(5 * time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(300),
		middleware.Auth(authService),
	)(mux)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
