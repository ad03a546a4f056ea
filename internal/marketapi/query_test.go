package marketapi

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/models"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func TestComposeFilters(t *testing.T) {
	tests := []struct {
		name    string
		filters *models.FilterCriteria
		want    url.Values
	}{
		{
			name:    "nil criteria emit nothing",
			filters: nil,
			want:    url.Values{},
		},
		{
			name:    "empty criteria emit nothing",
			filters: &models.FilterCriteria{},
			want:    url.Values{},
		},
		{
			name:    "only populated fields are emitted",
			filters: &models.FilterCriteria{City: strPtr("Москва"), Verified: boolPtr(true)},
			want:    url.Values{"city": {"Москва"}, "verified": {"true"}},
		},
		{
			name: "all fields string-coerced",
			filters: &models.FilterCriteria{
				City:      strPtr("Санкт-Петербург"),
				Category:  strPtr("Шкафы-купе"),
				MinRating: floatPtr(4.5),
				Verified:  boolPtr(false),
				Search:    strPtr("реставрация"),
			},
			want: url.Values{
				"city":       {"Санкт-Петербург"},
				"category":   {"Шкафы-купе"},
				"min_rating": {"4.5"},
				"verified":   {"false"},
				"search":     {"реставрация"},
			},
		},
		{
			name:    "integer rating has no trailing zeroes",
			filters: &models.FilterCriteria{MinRating: floatPtr(4)},
			want:    url.Values{"min_rating": {"4"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := url.Values{}
			composeFilters(params, tt.filters)
			assert.Equal(t, tt.want, params)
		})
	}
}

func TestComposeFilters_EncodeIsStable(t *testing.T) {
	filters := &models.FilterCriteria{City: strPtr("Москва"), Verified: boolPtr(true)}

	params := url.Values{}
	composeFilters(params, filters)

	// url.Values.Encode сортирует ключи, порядок воспроизводим
	assert.Equal(t, "city=%D0%9C%D0%BE%D1%81%D0%BA%D0%B2%D0%B0&verified=true", params.Encode())
}

func TestComposeOrderFilters(t *testing.T) {
	customerID := 42
	status := models.OrderStatusOpen

	params := url.Values{}
	composeOrderFilters(params, &models.OrderFilter{CustomerID: &customerID, Status: &status})

	assert.Equal(t, url.Values{"customer_id": {"42"}, "status": {"open"}}, params)
}

func TestFilterCriteria_Normalize(t *testing.T) {
	filters := &models.FilterCriteria{
		City:     strPtr("  "),
		Category: strPtr("Кухни на заказ"),
		Search:   strPtr(""),
	}

	filters.Normalize()

	assert.Nil(t, filters.City)
	assert.Nil(t, filters.Search)
	assert.Equal(t, "Кухни на заказ", *filters.Category)

	params := url.Values{}
	composeFilters(params, filters)
	assert.Equal(t, url.Values{"category": {"Кухни на заказ"}}, params)
}
