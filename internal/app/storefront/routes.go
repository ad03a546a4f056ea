// Package storefront предоставляет маршруты приложения шлюза.
package storefront

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/handlers/auth/login"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/handlers/auth/logout"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/handlers/auth/profile"
	mastercategories "github.com/pr-poehali-dev/furniture-service-portal/internal/http/handlers/masters/categories"
	masterlist "github.com/pr-poehali-dev/furniture-service-portal/internal/http/handlers/masters/list"
	ordercreate "github.com/pr-poehali-dev/furniture-service-portal/internal/http/handlers/orders/create"
	orderlist "github.com/pr-poehali-dev/furniture-service-portal/internal/http/handlers/orders/list"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/handlers/auth/register"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/middlewarectx"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/services/authflow"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/services/catalog"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authFlowService *authflow.Service, catalogService *catalog.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Аутентификация: частота попыток ограничена
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/auth/login", login.New(logger, authFlowService).ServeHTTP)
			r.Post("/auth/register", register.New(logger, authFlowService).ServeHTTP)
		})
		r.Post("/auth/logout", logout.New(logger, authFlowService).ServeHTTP)

		// Открытые конечные точки витрины
		r.Get("/masters", masterlist.New(logger, catalogService).ServeHTTP)
		r.Get("/categories", mastercategories.New(logger, catalogService).ServeHTTP)
		r.Get("/orders", orderlist.New(logger, catalogService).ServeHTTP)

		// Группа с обязательным бейрер-токеном
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.BearerMiddleware(logger))
			r.Get("/auth/profile", profile.New(logger, authFlowService).ServeHTTP)
			r.Post("/orders", ordercreate.New(logger, catalogService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
