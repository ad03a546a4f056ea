// Package register реализует HTTP-обработчик регистрации пользователя.
// Поля city и specialty имеют смысл только для user_type=master.
package register

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

// Request — структура входных данных для регистрации.
type Request struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FullName  string `json:"full_name" validate:"required"`
	Phone     string `json:"phone,omitempty"`
	UserType  string `json:"user_type" validate:"required,oneof=customer master"`
	City      string `json:"city,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, req marketapi.RegisterRequest) (*models.Session, error)
}

// Handler обрабатывает HTTP-запросы регистрации.
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
// @Summary Регистрация пользователя
// @Description Создаёт пользователя через удалённый сервис авторизации и возвращает профиль с токеном.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Данные нового пользователя"
// @Success 200 {object} map[string]any "Успешная регистрация"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Сервис авторизации недоступен"
// @Router /auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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

	sess, err := h.authFlow.Register(r.Context(), marketapi.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		FullName:  req.FullName,
		Phone:     req.Phone,
		UserType:  req.UserType,
		City:      req.City,
		Specialty: req.Specialty,
	})
	if err != nil {
		status, msg := mapAuthError(err, "Registration failed")
		log.Error("registration failed", sl.Err(err))
		w.WriteHeader(status)
		render.JSON(w, r, response.Error(msg))
		return
	}

	log.Info("registration success", slog.String("email", req.Email))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user":  sess.User,
		"token": sess.Token,
	}))
}

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
