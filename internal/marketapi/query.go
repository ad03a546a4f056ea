package marketapi

import (
	"net/url"
	"strconv"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
)

// composeFilters добавляет к params по одному query-параметру на каждое
// заданное (ненулевое) поле критериев поиска мастеров. Поля со значением nil
// параметра не порождают: отсутствие ограничения и пустое значение — разные
// вещи, и пустые строки до сюда доходить не должны (см. FilterCriteria.Normalize).
// Порядок параметров определяется url.Values.Encode и стабилен, но смысловой
// нагрузки для удалённой стороны не несёт.
func composeFilters(params url.Values, f *models.FilterCriteria) {
	if f == nil {
		return
	}
	if f.City != nil {
		params.Set("city", *f.City)
	}
	if f.Category != nil {
		params.Set("category", *f.Category)
	}
	if f.MinRating != nil {
		params.Set("min_rating", strconv.FormatFloat(*f.MinRating, 'f', -1, 64))
	}
	if f.Verified != nil {
		params.Set("verified", strconv.FormatBool(*f.Verified))
	}
	if f.Search != nil {
		params.Set("search", *f.Search)
	}
}

// composeOrderFilters — то же самое для критериев выборки заявок.
func composeOrderFilters(params url.Values, f *models.OrderFilter) {
	if f == nil {
		return
	}
	if f.CustomerID != nil {
		params.Set("customer_id", strconv.Itoa(*f.CustomerID))
	}
	if f.MasterID != nil {
		params.Set("master_id", strconv.Itoa(*f.MasterID))
	}
	if f.Status != nil {
		params.Set("status", *f.Status)
	}
}
