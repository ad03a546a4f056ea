package create

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/middlewarectx"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/marketapi"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
)

type CatalogMock struct {
	mock.Mock
}

func (m *CatalogMock) CreateOrder(ctx context.Context, req marketapi.OrderRequest, token string) (*models.Order, error) {
	args := m.Called(ctx, req, token)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newRequest(t *testing.T, body any, token string) *http.Request {
	t.Helper()

	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(bodyBytes))
	ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
	if token != "" {
		ctx = context.WithValue(ctx, middlewarectx.Token, token)
	}
	return req.WithContext(ctx)
}

func TestCreateHandler_PassesBearerToken(t *testing.T) {
	catalogMock := new(CatalogMock)
	handler := New(newNoopLogger(), catalogMock)

	body := Request{
		CustomerID:  42,
		Title:       "Шкаф-купе",
		Description: "Шкаф-купе в прихожую с зеркалом",
		Category:    "Шкафы-купе",
		City:        "Москва",
		BudgetMin:   50000,
		BudgetMax:   90000,
	}

	catalogMock.On("CreateOrder", mock.Anything, marketapi.OrderRequest{
		CustomerID:  body.CustomerID,
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		City:        body.City,
		BudgetMin:   body.BudgetMin,
		BudgetMax:   body.BudgetMax,
	}, "T").Return(&models.Order{ID: 10, CustomerID: 42, Status: models.OrderStatusOpen}, nil).Once()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest(t, body, "T"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "OK", got["status"])
	order := got["data"].(map[string]any)["order"].(map[string]any)
	assert.Equal(t, float64(10), order["id"])
	assert.Equal(t, "open", order["status"])

	catalogMock.AssertExpectations(t)
}

func TestCreateHandler_ValidationError(t *testing.T) {
	catalogMock := new(CatalogMock)
	handler := New(newNoopLogger(), catalogMock)

	body := Request{CustomerID: 42, Title: "Шкаф-купе", City: "Москва"}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest(t, body, "T"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "field Description is a required field", got["error"])

	catalogMock.AssertNotCalled(t, "CreateOrder")
}

func TestCreateHandler_UpstreamUnauthorized(t *testing.T) {
	catalogMock := new(CatalogMock)
	handler := New(newNoopLogger(), catalogMock)

	catalogMock.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &marketapi.Error{
			Kind:    marketapi.KindAPI,
			Status:  http.StatusUnauthorized,
			Message: "Authorization required",
		}).Once()

	body := Request{CustomerID: 42, Title: "Шкаф-купе", Description: "с зеркалом", City: "Москва"}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest(t, body, "expired"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Authorization required", got["error"])
}
