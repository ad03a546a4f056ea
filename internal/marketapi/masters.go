package marketapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
)

// MastersResult — ответ эндпоинта мастеров на действие list.
type MastersResult struct {
	Masters []models.Master `json:"masters"`
	Count   int             `json:"count"`
}

// ListMasters возвращает список мастеров с учётом разреженных критериев.
// Поля критериев со значением nil в запрос не попадают.
func (c *Client) ListMasters(ctx context.Context, filters *models.FilterCriteria) (*MastersResult, error) {
	params := url.Values{actionParam: {"list"}}
	composeFilters(params, filters)
	httpReq, err := c.newRequest(ctx, http.MethodGet, c.mastersURL, params, nil, "")
	if err != nil {
		return nil, err
	}
	var res MastersResult
	if err := c.do(httpReq, "list", "Failed to fetch masters", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type categoriesResult struct {
	Categories []models.Category `json:"categories"`
}

// GetCategories возвращает справочник категорий услуг.
func (c *Client) GetCategories(ctx context.Context) ([]models.Category, error) {
	params := url.Values{actionParam: {"categories"}}
	httpReq, err := c.newRequest(ctx, http.MethodGet, c.mastersURL, params, nil, "")
	if err != nil {
		return nil, err
	}
	var res categoriesResult
	if err := c.do(httpReq, "categories", "Failed to fetch categories", &res); err != nil {
		return nil, err
	}
	return res.Categories, nil
}

// OrderRequest — тело запроса создания заявки. Поле Category содержит имя
// категории (не id): удалённая сторона сама разрешает его в справочнике.
type OrderRequest struct {
	CustomerID  int     `json:"customer_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`
	City        string  `json:"city"`
	BudgetMin   float64 `json:"budget_min,omitempty"`
	BudgetMax   float64 `json:"budget_max,omitempty"`
}

type orderResult struct {
	Order models.Order `json:"order"`
}

// CreateOrder создаёт заявку от имени заказчика. Требует бейрер-токен.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest, token string) (*models.Order, error) {
	params := url.Values{actionParam: {"create_order"}}
	httpReq, err := c.newRequest(ctx, http.MethodPost, c.mastersURL, params, req, token)
	if err != nil {
		return nil, err
	}
	var res orderResult
	if err := c.do(httpReq, "create_order", "Failed to create order", &res); err != nil {
		return nil, err
	}
	return &res.Order, nil
}

// OrdersResult — ответ эндпоинта мастеров на действие orders.
type OrdersResult struct {
	Orders []models.Order `json:"orders"`
	Count  int            `json:"count"`
}

// ListOrders возвращает список заявок с учётом разреженного фильтра.
func (c *Client) ListOrders(ctx context.Context, filters *models.OrderFilter) (*OrdersResult, error) {
	params := url.Values{actionParam: {"orders"}}
	composeOrderFilters(params, filters)
	httpReq, err := c.newRequest(ctx, http.MethodGet, c.mastersURL, params, nil, "")
	if err != nil {
		return nil, err
	}
	var res OrdersResult
	if err := c.do(httpReq, "orders", "Failed to fetch orders", &res); err != nil {
		return nil, err
	}
	return &res, nil
}
