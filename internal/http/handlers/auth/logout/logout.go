// Package logout реализует HTTP-обработчик выхода: очистку обоих слотов
// сохранённой сессии. Удалённый сервис авторизации при этом не вызывается —
// отзыв токена на его стороне не входит в зону ответственности шлюза.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/response"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/lib/sl"
)

// Service описывает интерфейс очистки сессии.
type Service interface {
	Logout(ctx context.Context) error
}

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log      *slog.Logger
	authFlow Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, authFlow Service) *Handler {
	return &Handler{log: log, authFlow: authFlow}
}

// ServeHTTP godoc
// @Summary Выход пользователя
// @Description Очищает сохранённую пару token/user.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response "Сессия очищена"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища сессии"
// @Router /auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.authFlow.Logout(r.Context()); err != nil {
		log.Error("failed to clear session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to clear session"))
		return
	}

	log.Info("session cleared")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "logged out",
	}))
}
