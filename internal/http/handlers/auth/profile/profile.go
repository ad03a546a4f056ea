// Package profile реализует HTTP-обработчик чтения профиля пользователя.
// Токен берётся из контекста запроса (его кладёт бейрер-middleware)
// и передаётся удалённому сервису авторизации без проверки на шлюзе.
package profile

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/middlewarectx"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/response"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/lib/sl"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/marketapi"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
)

// Service описывает интерфейс чтения профиля.
type Service interface {
	Profile(ctx context.Context, userID int, token string) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы чтения профиля.
type Handler struct {
	log      *slog.Logger
	authFlow Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, authFlow Service) *Handler {
	return &Handler{log: log, authFlow: authFlow}
}

// ServeHTTP godoc
// @Summary Профиль пользователя
// @Description Возвращает профиль пользователя по user_id и бейрер-токену.
// @Tags Auth
// @Produce json
// @Param user_id query int true "Идентификатор пользователя"
// @Success 200 {object} map[string]any "Профиль пользователя"
// @Failure 400 {object} response.ErrorResponse "Некорректный user_id"
// @Failure 502 {object} response.ErrorResponse "Сервис авторизации недоступен"
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.profile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := strconv.Atoi(r.URL.Query().Get("user_id"))
	if err != nil || userID <= 0 {
		log.Error("invalid user_id query parameter")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("user_id is required"))
		return
	}

	user, err := h.authFlow.Profile(r.Context(), userID, middlewarectx.BearerToken(r.Context()))
	if err != nil {
		log.Error("failed to fetch profile", sl.Err(err))
		var apiErr *marketapi.Error
		if errors.As(err, &apiErr) && apiErr.Kind == marketapi.KindAPI {
			w.WriteHeader(apiErr.Status)
			render.JSON(w, r, response.Error(apiErr.Message))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("Failed to fetch profile"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": user,
	}))
}
