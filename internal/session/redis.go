package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/config"
)

// RedisStore хранит слоты сессии в redis. Ключи записываются с префиксом,
// чтобы несколько экземпляров шлюза могли делить одну базу. TTL у ключей
// нет: локального истечения сессии нет, срок жизни токена контролирует
// удалённый сервис авторизации.
type RedisStore struct {
	db     *redis.Client
	prefix string
}

// NewRedisStore подключается к redis по настройкам cfg и проверяет
// соединение пингом.
func NewRedisStore(ctx context.Context, cfg config.RedisConnection, prefix string) (*RedisStore, error) {
	const op = "session.NewRedisStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		Username:     cfg.User,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})
	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStore{db: db, prefix: prefix}, nil
}

// Get возвращает значение слота key или ErrNotFound, если слот пуст.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	const op = "session.RedisStore.Get"
	val, err := s.db.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return val, nil
}

// Set записывает значение слота key без срока жизни.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	const op = "session.RedisStore.Set"
	if err := s.db.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Remove очищает слот key.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	const op = "session.RedisStore.Remove"
	if err := s.db.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с redis.
func (s *RedisStore) Close() error {
	return s.db.Close()
}
