package models

// Статусы заявки. Жизненный цикл заявки целиком принадлежит удалённой стороне.
const (
	OrderStatusOpen       = "open"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order представляет заявку заказчика на изготовление мебели.
// Создаётся через API-клиент, дальше изменяется только удалённым сервисом.
type Order struct {
	ID           int     `json:"id"`
	CustomerID   int     `json:"customer_id"`
	MasterID     int     `json:"master_id,omitempty"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	CategoryName string  `json:"category_name,omitempty"`
	BudgetMin    float64 `json:"budget_min,omitempty"`
	BudgetMax    float64 `json:"budget_max,omitempty"`
	City         string  `json:"city"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"` // Строка в формате удалённого сервиса
}
