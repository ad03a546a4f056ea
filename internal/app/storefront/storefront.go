// Package storefront собирает приложение шлюза: конфигурацию, хранилище
// сессии, API-клиент удалённых эндпоинтов, сервисы и HTTP-сервер.
package storefront

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/config"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/marketapi"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/services/authflow"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/services/catalog"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/session"
)

// App — собранное приложение шлюза.
type App struct {
	server *http.Server
	logger *slog.Logger
	store  *session.RedisStore
}

// New создаёт приложение: подключает redis-хранилище сессии, настраивает
// API-клиент и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := session.NewRedisStore(ctx, cfg.RedisConnection, cfg.KeyPrefix)
	if err != nil {
		return nil, err
	}

	apiClient := marketapi.New(cfg.AuthURL, cfg.MastersURL, cfg.Endpoints.Timeout)
	authFlowService := authflow.New(apiClient, store, logger)
	catalogService := catalog.New(apiClient, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authFlowService, catalogService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		store:  store,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.store.Close()
		return err
	}
}
