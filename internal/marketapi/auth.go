package marketapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
)

// RegisterRequest — тело запроса регистрации. City и Specialty имеют смысл
// только для user_type=master; удалённая сторона подставляет свои значения
// по умолчанию, если они не заданы.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone,omitempty"`
	UserType  string `json:"user_type"`
	City      string `json:"city,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

// AuthResult — ответ удалённого сервиса на register и login.
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Register создаёт нового пользователя. При отказе возвращает *Error
// с сообщением сервера либо текстом "Registration failed".
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	params := url.Values{actionParam: {"register"}}
	httpReq, err := c.newRequest(ctx, http.MethodPost, c.authURL, params, req, "")
	if err != nil {
		return nil, err
	}
	var res AuthResult
	if err := c.do(httpReq, "register", "Registration failed", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Login выполняет вход по email и паролю.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	params := url.Values{actionParam: {"login"}}
	body := map[string]string{"email": email, "password": password}
	httpReq, err := c.newRequest(ctx, http.MethodPost, c.authURL, params, body, "")
	if err != nil {
		return nil, err
	}
	var res AuthResult
	if err := c.do(httpReq, "login", "Login failed", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type profileResult struct {
	User models.User `json:"user"`
}

// GetProfile возвращает профиль пользователя userID. Токен передаётся
// в заголовке X-Authorization: Bearer <token>.
func (c *Client) GetProfile(ctx context.Context, userID int, token string) (*models.User, error) {
	params := url.Values{actionParam: {"profile"}}
	params.Set("user_id", strconv.Itoa(userID))
	httpReq, err := c.newRequest(ctx, http.MethodGet, c.authURL, params, nil, token)
	if err != nil {
		return nil, err
	}
	var res profileResult
	if err := c.do(httpReq, "profile", "Failed to fetch profile", &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}
