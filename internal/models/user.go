// Package models содержит доменные структуры маркетплейса мебельных мастеров:
// пользователей, мастеров, категории услуг, заявки и клиентскую сессию.
// Все структуры — плоские записи, которыми обменивается шлюз с удалёнными
// эндпоинтами; авторитетное состояние целиком принадлежит удалённой стороне.
package models

// Типы пользователей маркетплейса.
const (
	UserTypeCustomer = "customer" // Заказчик
	UserTypeMaster   = "master"   // Мастер
)

// User представляет профиль пользователя, создаваемый удалённым сервисом
// при регистрации. Для шлюза запись доступна только на чтение.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	UserType  string `json:"user_type"` // customer или master
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	MasterID  int    `json:"master_id,omitempty"` // Заполнено только для user_type=master
}
