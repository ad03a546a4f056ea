package models

// Category — категория услуг. Поле Name уникально и используется
// как ключ выбора в фильтрах.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
}
