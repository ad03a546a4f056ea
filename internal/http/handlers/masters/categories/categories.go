// Package categories реализует HTTP-обработчик справочника категорий услуг.
package categories

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/response"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/lib/sl"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/marketapi"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
)

// Service описывает интерфейс справочника категорий.
type Service interface {
	Categories(ctx context.Context) ([]models.Category, error)
}

// Handler обрабатывает HTTP-запросы справочника категорий.
type Handler struct {
	log     *slog.Logger
	catalog Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, catalog Service) *Handler {
	return &Handler{log: log, catalog: catalog}
}

// ServeHTTP godoc
// @Summary Категории услуг
// @Description Возвращает справочник категорий услуг.
// @Tags Masters
// @Produce json
// @Success 200 {object} map[string]any "Список категорий"
// @Failure 502 {object} response.ErrorResponse "Сервис мастеров недоступен"
// @Router /categories [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.masters.categories"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		log.Error("failed to fetch categories", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error(marketapi.UserMessage(err, "Failed to fetch categories")))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"categories": categories,
	}))
}
