package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/marketapi"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
)

type MastersAPIMock struct {
	mock.Mock
}

func (m *MastersAPIMock) ListMasters(ctx context.Context, filters *models.FilterCriteria) (*marketapi.MastersResult, error) {
	args := m.Called(ctx, filters)
	res, _ := args.Get(0).(*marketapi.MastersResult)
	return res, args.Error(1)
}

func (m *MastersAPIMock) GetCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]models.Category)
	return res, args.Error(1)
}

func (m *MastersAPIMock) CreateOrder(ctx context.Context, req marketapi.OrderRequest, token string) (*models.Order, error) {
	args := m.Called(ctx, req, token)
	res, _ := args.Get(0).(*models.Order)
	return res, args.Error(1)
}

func (m *MastersAPIMock) ListOrders(ctx context.Context, filters *models.OrderFilter) (*marketapi.OrdersResult, error) {
	args := m.Called(ctx, filters)
	res, _ := args.Get(0).(*marketapi.OrdersResult)
	return res, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestService_ListMasters_NormalizesEmptyConstraints(t *testing.T) {
	apiMock := new(MastersAPIMock)
	svc := New(apiMock, newNoopLogger())

	empty := ""
	city := "Москва"
	filters := &models.FilterCriteria{City: &city, Search: &empty}

	apiMock.On("ListMasters", mock.Anything, mock.MatchedBy(func(f *models.FilterCriteria) bool {
		return f.Search == nil && f.City != nil && *f.City == "Москва"
	})).Return(&marketapi.MastersResult{Count: 2}, nil).Once()

	res, err := svc.ListMasters(context.Background(), filters)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	apiMock.AssertExpectations(t)
}

func TestService_CreateOrder_PassesToken(t *testing.T) {
	apiMock := new(MastersAPIMock)
	svc := New(apiMock, newNoopLogger())

	req := marketapi.OrderRequest{CustomerID: 42, Title: "Шкаф-купе", Description: "и полки", City: "Москва"}
	apiMock.On("CreateOrder", mock.Anything, req, "T").
		Return(&models.Order{ID: 10, Status: models.OrderStatusOpen}, nil).Once()

	order, err := svc.CreateOrder(context.Background(), req, "T")

	require.NoError(t, err)
	assert.Equal(t, 10, order.ID)
	apiMock.AssertExpectations(t)
}
