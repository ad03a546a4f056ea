// Package create реализует HTTP-обработчик создания заявки. Требует
// бейрер-токен: он извлекается из контекста и передаётся удалённому
// эндпоинту мастеров вместе с телом заявки.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/middlewarectx"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/response"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/lib/sl"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/marketapi"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
)

// Request — структура входных данных для создания заявки.
type Request struct {
	CustomerID  int     `json:"customer_id" validate:"required,gt=0"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category,omitempty"`
	City        string  `json:"city" validate:"required"`
	BudgetMin   float64 `json:"budget_min,omitempty"`
	BudgetMax   float64 `json:"budget_max,omitempty"`
}

// Service описывает интерфейс создания заявки.
type Service interface {
	CreateOrder(ctx context.Context, req marketapi.OrderRequest, token string) (*models.Order, error)
}

// Handler обрабатывает HTTP-запросы создания заявки.
type Handler struct {
	log      *slog.Logger
	catalog  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, catalog Service) *Handler {
	return &Handler{
		log:      log,
		catalog:  catalog,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создание заявки
// @Description Создаёт заявку на изготовление мебели от имени заказчика.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body Request true "Данные заявки"
// @Success 200 {object} map[string]any "Созданная заявка"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Сервис мастеров недоступен"
// @Security BearerAuth
// @Router /orders [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.orders.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	order, err := h.catalog.CreateOrder(r.Context(), marketapi.OrderRequest{
		CustomerID:  req.CustomerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		City:        req.City,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
	}, middlewarectx.BearerToken(r.Context()))
	if err != nil {
		log.Error("failed to create order", sl.Err(err))
		var apiErr *marketapi.Error
		if errors.As(err, &apiErr) && apiErr.Kind == marketapi.KindAPI {
			w.WriteHeader(apiErr.Status)
			render.JSON(w, r, response.Error(apiErr.Message))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("Failed to create order"))
		return
	}

	log.Info("order created", slog.Int("order_id", order.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"order": order,
	}))
}
