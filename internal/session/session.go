package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
)

// SaveSession сохраняет пару token и user. Профиль сериализуется в JSON
// здесь, хранилище получает только строки. Пара записывается целиком:
// если запись второго слота не удалась, первый убирается обратно, чтобы
// в хранилище не осталось половины сессии.
func SaveSession(ctx context.Context, store Store, s models.Session) error {
	const op = "session.SaveSession"

	userJSON, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := store.Set(ctx, KeyToken, s.Token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := store.Set(ctx, KeyUser, string(userJSON)); err != nil {
		_ = store.Remove(ctx, KeyToken)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// LoadSession читает сохранённую пару. Если хотя бы один слот пуст,
// возвращает ErrNotFound.
func LoadSession(ctx context.Context, store Store) (*models.Session, error) {
	const op = "session.LoadSession"

	token, err := store.Get(ctx, KeyToken)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	userJSON, err := store.Get(ctx, KeyUser)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.Session{Token: token, User: user}, nil
}

// ClearSession очищает оба слота. Пустые слоты ошибкой не считаются.
func ClearSession(ctx context.Context, store Store) error {
	const op = "session.ClearSession"

	if err := store.Remove(ctx, KeyToken); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := store.Remove(ctx, KeyUser); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
