package middlewarectx_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/middlewarectx"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestBearerMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		wantStatusCode int
		wantNextCalled bool
		wantToken      string
	}{
		{
			name:           "valid bearer header",
			authHeader:     "Bearer T",
			wantStatusCode: http.StatusOK,
			wantNextCalled: true,
			wantToken:      "T",
		},
		{
			name:           "missing header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotToken string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotToken = middlewarectx.BearerToken(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := middlewarectx.BearerMiddleware(newNoopLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)

			if tt.wantNextCalled {
				assert.Equal(t, tt.wantToken, gotToken)
			} else {
				var got map[string]any
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, "missing or invalid authorization header", got["error"])
			}
		})
	}
}
