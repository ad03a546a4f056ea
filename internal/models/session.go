package models

// Session — пара из токена и профиля пользователя, сохраняемая
// после успешной аутентификации. Локально не истекает: время жизни
// токена контролирует удалённый сервис авторизации.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
