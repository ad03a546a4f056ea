// Package middlewarectx содержит HTTP middleware шлюза: извлечение
// бейрер-токена из заголовка Authorization и ограничение частоты запросов.
//
// Токены для шлюза непрозрачны — их выдаёт и проверяет удалённый сервис
// авторизации. Middleware лишь требует наличия заголовка и кладёт сырой
// токен в контекст запроса для передачи в исходящие вызовы.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/response"
)

// Key — тип для ключей контекста HTTP-запроса.
type Key string

// Token — ключ, под которым бейрер-токен лежит в контексте запроса.
const Token Key = "token"

// BearerToken возвращает токен из контекста запроса или пустую строку.
func BearerToken(ctx context.Context) string {
	token, _ := ctx.Value(Token).(string)
	return token
}

// BearerMiddleware возвращает middleware, требующий заголовок
// Authorization: Bearer <token>. Сам токен не проверяется: проверка
// принадлежит удалённому сервису, шлюз только передаёт токен дальше.
func BearerMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.BearerMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			ctx := context.WithValue(r.Context(), Token, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
