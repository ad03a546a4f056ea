// Package login реализует HTTP-обработчик входа пользователя.
//
// Обработчик декодирует JSON с email и паролем, валидирует поля и делегирует
// попытку входа сервису authflow. При успехе возвращается пара user/token;
// при отказе удалённой стороны пользователю показывается её сообщение об
// ошибке, при транспортной ошибке — общий текст недоступности сервиса.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/response"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/lib/sl"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/marketapi"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/services/authflow"
)

// Request — структура входных данных для входа.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
}

// Handler обрабатывает HTTP-запросы входа.
type Handler struct {
	log      *slog.Logger
	authFlow Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, authFlow Service) *Handler {
	return &Handler{
		log:      log,
		authFlow: authFlow,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход пользователя
// @Description Аутентифицирует пользователя по email и паролю через удалённый сервис авторизации. Возвращает профиль и токен.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} map[string]any "Успешный вход"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Сервис авторизации недоступен"
// @Router /auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

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

	sess, err := h.authFlow.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		status, msg := mapAuthError(err, "Login failed")
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(status)
		render.JSON(w, r, response.Error(msg))
		return
	}

	log.Info("login success", slog.String("email", req.Email))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user":  sess.User,
		"token": sess.Token,
	}))
}

// mapAuthError переводит ошибку попытки аутентификации в HTTP-статус и
// текст для пользователя: сообщение удалённой стороны показывается как есть.
func mapAuthError(err error, fallback string) (int, string) {
	if errors.Is(err, authflow.ErrSubmitting) {
		return http.StatusConflict, "submission already in progress"
	}
	var apiErr *marketapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Kind == marketapi.KindAPI {
			return apiErr.Status, apiErr.Message
		}
		return http.StatusBadGateway, apiErr.Message
	}
	return http.StatusInternalServerError, fallback
}
