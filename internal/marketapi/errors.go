package marketapi

import (
	"errors"
	"fmt"
)

// Kind различает два пути отказа API-клиента.
type Kind int

const (
	// KindNetwork — запрос не удалось выполнить или ответ не удалось прочитать.
	KindNetwork Kind = iota
	// KindAPI — удалённый сервис ответил статусом вне диапазона 2xx.
	KindAPI
)

// Error — типизированная ошибка API-клиента. Message содержит текст,
// пригодный для показа пользователю: для KindAPI это поле error из тела
// ответа, если оно есть, иначе фиксированный текст операции.
type Error struct {
	Kind    Kind
	Status  int // HTTP-статус для KindAPI, иначе 0
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// IsAPIError сообщает, является ли err ошибкой удалённого сервиса (non-2xx).
func IsAPIError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindAPI
}

// IsNetworkError сообщает, является ли err транспортной ошибкой.
func IsNetworkError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNetwork
}

// UserMessage возвращает текст ошибки для показа пользователю:
// Message типизированной ошибки либо запасной текст fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
