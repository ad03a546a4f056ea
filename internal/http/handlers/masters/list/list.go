// Package list реализует HTTP-обработчик выборки мастеров. Query-параметры
// запроса превращаются в разреженные критерии: отсутствующий или пустой
// параметр означает «без ограничения» и в исходящий запрос к удалённому
// эндпоинту не попадает.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/response"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/lib/sl"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/marketapi"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
)

// Service описывает интерфейс выборки мастеров.
type Service interface {
	ListMasters(ctx context.Context, filters *models.FilterCriteria) (*marketapi.MastersResult, error)
}

// Handler обрабатывает HTTP-запросы выборки мастеров.
type Handler struct {
	log     *slog.Logger
	catalog Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, catalog Service) *Handler {
	return &Handler{log: log, catalog: catalog}
}

// ServeHTTP godoc
// @Summary Список мастеров
// @Description Возвращает список мастеров с учётом необязательных фильтров.
// @Tags Masters
// @Produce json
// @Param city query string false "Подстрочный поиск по городу"
// @Param category query string false "Имя категории"
// @Param min_rating query number false "Нижняя граница рейтинга"
// @Param verified query bool false "Только проверенные мастера"
// @Param search query string false "Поиск по имени и специализации"
// @Success 200 {object} map[string]any "Список мастеров и их количество"
// @Failure 400 {object} response.ErrorResponse "Некорректный параметр фильтра"
// @Failure 502 {object} response.ErrorResponse "Сервис мастеров недоступен"
// @Router /masters [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.masters.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filters, err := parseFilters(r)
	if err != nil {
		log.Error("invalid filter parameter", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	res, err := h.catalog.ListMasters(r.Context(), filters)
	if err != nil {
		log.Error("failed to fetch masters", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error(marketapi.UserMessage(err, "Failed to fetch masters")))
		return
	}

	log.Info("masters fetched", slog.Int("count", res.Count))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"masters": res.Masters,
		"count":   res.Count,
	}))
}

// parseFilters собирает разреженные критерии из query-параметров запроса.
// Пустые строковые параметры трактуются как отсутствие ограничения.
func parseFilters(r *http.Request) (*models.FilterCriteria, error) {
	q := r.URL.Query()
	var filters models.FilterCriteria

	if v := q.Get("city"); v != "" {
		filters.City = &v
	}
	if v := q.Get("category"); v != "" {
		filters.Category = &v
	}
	if v := q.Get("search"); v != "" {
		filters.Search = &v
	}
	if v := q.Get("min_rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New("min_rating must be a number")
		}
		filters.MinRating = &rating
	}
	if v := q.Get("verified"); v != "" {
		verified, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New("verified must be a boolean")
		}
		filters.Verified = &verified
	}
	return &filters, nil
}
