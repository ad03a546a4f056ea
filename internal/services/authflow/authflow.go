// Package authflow содержит бизнес-логику одной попытки входа или
// регистрации: вызов удалённого сервиса авторизации, сохранение пары
// token/user в хранилище сессии и возврат типизированной сессии вызывающей
// стороне. Сохранение происходит строго после успешного ответа удалённой
// стороны и строго до возврата результата; при отказе не сохраняется ничего.
package authflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/lib/sl"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/marketapi"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/session"
)

// ErrSubmitting возвращается, когда предыдущая попытка входа или регистрации
// ещё не завершилась: на один цикл отправки приходится ровно один сетевой вызов.
var ErrSubmitting = errors.New("authflow: submission already in progress")

// AuthAPI описывает операции удалённого сервиса авторизации.
type AuthAPI interface {
	// Login выполняет вход по email и паролю.
	Login(ctx context.Context, email, password string) (*marketapi.AuthResult, error)
	// Register создаёт нового пользователя.
	Register(ctx context.Context, req marketapi.RegisterRequest) (*marketapi.AuthResult, error)
	// GetProfile возвращает профиль пользователя по токену.
	GetProfile(ctx context.Context, userID int, token string) (*models.User, error)
}

// Service координирует попытки аутентификации и хранилище сессии.
type Service struct {
	api        AuthAPI
	store      session.Store
	log        *slog.Logger
	submitting atomic.Bool
}

// New создает новый экземпляр Service.
func New(api AuthAPI, store session.Store, log *slog.Logger) *Service {
	return &Service{
		api:   api,
		store: store,
		log:   log,
	}
}

// Login выполняет одну попытку входа. Повторный вызов во время
// незавершённой попытки отклоняется с ErrSubmitting без сетевого вызова.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Session, error) {
	const op = "services.authflow.Login"

	if !s.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmitting
	}
	defer s.submitting.Store(false)

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.log.Error("login attempt failed", sl.Op(op), sl.Err(err))
		return nil, err
	}

	sess := models.Session{Token: res.Token, User: res.User}
	if err := session.SaveSession(ctx, s.store, sess); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("login success", sl.Op(op), slog.String("email", email))
	return &sess, nil
}

// Register выполняет одну попытку регистрации с тем же порядком действий,
// что и Login: удалённый вызов, сохранение пары, возврат сессии.
func (s *Service) Register(ctx context.Context, req marketapi.RegisterRequest) (*models.Session, error) {
	const op = "services.authflow.Register"

	if !s.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmitting
	}
	defer s.submitting.Store(false)

	res, err := s.api.Register(ctx, req)
	if err != nil {
		s.log.Error("registration attempt failed", sl.Op(op), sl.Err(err))
		return nil, err
	}

	sess := models.Session{Token: res.Token, User: res.User}
	if err := session.SaveSession(ctx, s.store, sess); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("registration success", sl.Op(op), slog.String("email", req.Email))
	return &sess, nil
}

// Profile возвращает профиль пользователя по бейрер-токену.
func (s *Service) Profile(ctx context.Context, userID int, token string) (*models.User, error) {
	return s.api.GetProfile(ctx, userID, token)
}

// CurrentSession возвращает сохранённую сессию или session.ErrNotFound.
func (s *Service) CurrentSession(ctx context.Context) (*models.Session, error) {
	return session.LoadSession(ctx, s.store)
}

// Logout очищает оба слота сессии.
func (s *Service) Logout(ctx context.Context) error {
	const op = "services.authflow.Logout"

	if err := session.ClearSession(ctx, s.store); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("session cleared", sl.Op(op))
	return nil
}
