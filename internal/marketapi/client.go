// Package marketapi реализует типизированный HTTP-клиент двух удалённых
// эндпоинтов маркетплейса: сервиса авторизации (register, login, profile)
// и сервиса мастеров (list, categories, create_order, orders).
//
// Каждая операция — ровно один сетевой вызов без повторов и кеширования.
// Отказ возвращается вызывающей стороне один раз в виде *Error с видом
// KindNetwork или KindAPI; текст ошибки берётся из поля error тела ответа,
// если удалённая сторона его прислала, иначе подставляется фиксированный
// текст операции.
package marketapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/metrics"
)

// Выбор действия удалённого эндпоинта передаётся query-параметром action.
const actionParam = "action"

// Client — клиент удалённых эндпоинтов. Состояния между вызовами не хранит.
type Client struct {
	authURL    string
	mastersURL string
	httpClient *http.Client
}

// New создаёт клиент для пары базовых URL. timeout ограничивает каждый
// сетевой вызов на уровне http.Client; прикладных таймаутов и повторов нет.
func New(authURL, mastersURL string, timeout time.Duration) *Client {
	return &Client{
		authURL:    authURL,
		mastersURL: mastersURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// newRequest собирает запрос к baseURL с query-параметрами params
// (действие уже включено), JSON-телом body и бейрер-заголовком token,
// если они заданы. Каждому запросу присваивается собственный X-Request-Id.
func (c *Client) newRequest(ctx context.Context, method, baseURL string, params url.Values, body any, token string) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, baseURL+"?"+params.Encode(), &buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

// errorBody — форма тела ответа удалённого сервиса при отказе.
type errorBody struct {
	Error string `json:"error"`
}

// do выполняет запрос и декодирует 2xx-ответ в out. Не-2xx-ответ
// превращается в *Error{KindAPI} с сообщением сервера либо fallback;
// транспортная ошибка и нечитаемое тело — в *Error{KindNetwork}.
func (c *Client) do(req *http.Request, action, fallback string, out any) error {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveEndpointCall(action, metrics.OutcomeNetworkError, time.Since(start))
		return &Error{Kind: KindNetwork, Message: fallback, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.ObserveEndpointCall(action, metrics.OutcomeAPIError, time.Since(start))
		msg := fallback
		var eb errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil && eb.Error != "" {
			msg = eb.Error
		}
		return &Error{Kind: KindAPI, Status: resp.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ObserveEndpointCall(action, metrics.OutcomeNetworkError, time.Since(start))
		return &Error{Kind: KindNetwork, Message: fallback, cause: err}
	}
	metrics.ObserveEndpointCall(action, metrics.OutcomeOK, time.Since(start))
	return nil
}
