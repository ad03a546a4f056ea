// Package list реализует HTTP-обработчик выборки заявок по разреженному
// фильтру: заказчик, назначенный мастер, статус.
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

// Service описывает интерфейс выборки заявок.
type Service interface {
	ListOrders(ctx context.Context, filters *models.OrderFilter) (*marketapi.OrdersResult, error)
}

// Handler обрабатывает HTTP-запросы выборки заявок.
type Handler struct {
	log     *slog.Logger
	catalog Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, catalog Service) *Handler {
	return &Handler{log: log, catalog: catalog}
}

// ServeHTTP godoc
// @Summary Список заявок
// @Description Возвращает список заявок с учётом необязательных фильтров.
// @Tags Orders
// @Produce json
// @Param customer_id query int false "Идентификатор заказчика"
// @Param master_id query int false "Идентификатор мастера"
// @Param status query string false "Статус заявки"
// @Success 200 {object} map[string]any "Список заявок и их количество"
// @Failure 400 {object} response.ErrorResponse "Некорректный параметр фильтра"
// @Failure 502 {object} response.ErrorResponse "Сервис мастеров недоступен"
// @Router /orders [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.orders.list"

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

	res, err := h.catalog.ListOrders(r.Context(), filters)
	if err != nil {
		log.Error("failed to fetch orders", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error(marketapi.UserMessage(err, "Failed to fetch orders")))
		return
	}

	log.Info("orders fetched", slog.Int("count", res.Count))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"orders": res.Orders,
		"count":  res.Count,
	}))
}

func parseFilters(r *http.Request) (*models.OrderFilter, error) {
	q := r.URL.Query()
	var filters models.OrderFilter

	if v := q.Get("customer_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("customer_id must be a number")
		}
		filters.CustomerID = &id
	}
	if v := q.Get("master_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("master_id must be a number")
		}
		filters.MasterID = &id
	}
	if v := q.Get("status"); v != "" {
		filters.Status = &v
	}
	return &filters, nil
}
