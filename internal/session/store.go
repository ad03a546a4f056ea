// Package session реализует клиентское хранилище сессии: два независимых
// строковых слота token и user, переживающих перезапуск шлюза. Хранилище —
// тонкая прослойка без валидации, шифрования и истечения срока; слот user
// содержит JSON-сериализованный профиль, сериализацию выполняет вызывающая
// сторона, само хранилище работает только со строками.
package session

import (
	"context"
	"errors"
	"sync"
)

// Ключи слотов сессии.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// ErrNotFound возвращается Get, когда слот пуст.
var ErrNotFound = errors.New("session: key not found")

// Store — внедряемая зависимость доступа к слотам сессии.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// MemoryStore — хранилище в памяти процесса. Используется в тестах
// как подмена редис-хранилища.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStore создаёт пустое хранилище в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

// Get возвращает значение слота key или ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set записывает значение в слот key.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

// Remove очищает слот key. Отсутствие слота ошибкой не считается.
func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}
