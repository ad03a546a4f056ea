// Package catalog содержит бизнес-логику витрины: выборку мастеров по
// разреженным критериям, справочник категорий и работу с заявками.
// Сервис не хранит доменного состояния — побеждает последняя выборка.
package catalog

import (
	"context"
	"log/slog"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/marketapi"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
)

// MastersAPI описывает операции удалённого эндпоинта мастеров.
type MastersAPI interface {
	// ListMasters возвращает список мастеров по критериям.
	ListMasters(ctx context.Context, filters *models.FilterCriteria) (*marketapi.MastersResult, error)
	// GetCategories возвращает справочник категорий услуг.
	GetCategories(ctx context.Context) ([]models.Category, error)
	// CreateOrder создаёт заявку от имени заказчика.
	CreateOrder(ctx context.Context, req marketapi.OrderRequest, token string) (*models.Order, error)
	// ListOrders возвращает список заявок по фильтру.
	ListOrders(ctx context.Context, filters *models.OrderFilter) (*marketapi.OrdersResult, error)
}

// Service реализует операции витрины поверх API-клиента.
type Service struct {
	api MastersAPI
	log *slog.Logger
}

// New создает новый экземпляр Service.
func New(api MastersAPI, log *slog.Logger) *Service {
	return &Service{api: api, log: log}
}

// ListMasters нормализует критерии (пустые строки означают отсутствие
// ограничения и в исходящий запрос не попадают) и выполняет одну выборку.
func (s *Service) ListMasters(ctx context.Context, filters *models.FilterCriteria) (*marketapi.MastersResult, error) {
	filters.Normalize()
	return s.api.ListMasters(ctx, filters)
}

// Categories возвращает справочник категорий услуг.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return s.api.GetCategories(ctx)
}

// CreateOrder создаёт заявку. Токен — бейрер-токен заказчика.
func (s *Service) CreateOrder(ctx context.Context, req marketapi.OrderRequest, token string) (*models.Order, error) {
	return s.api.CreateOrder(ctx, req, token)
}

// ListOrders возвращает заявки по разреженному фильтру.
func (s *Service) ListOrders(ctx context.Context, filters *models.OrderFilter) (*marketapi.OrdersResult, error) {
	return s.api.ListOrders(ctx, filters)
}
