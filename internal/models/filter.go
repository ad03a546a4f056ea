package models

import "strings"

// FilterCriteria — разреженный набор необязательных ограничений поиска
// мастеров. Поля — указатели: nil означает «без ограничения», что не то же
// самое, что пустая строка или false. Пустые значения нормализуются
// вызывающей стороной через Normalize до сериализации в query-параметры.
type FilterCriteria struct {
	City      *string  // Подстрочный поиск по городу
	Category  *string  // Точное имя категории
	MinRating *float64 // Нижняя граница рейтинга
	Verified  *bool    // Только проверенные мастера (учитывается значение true)
	Search    *string  // Поиск по имени, специализации и описанию
}

// Normalize убирает ограничения с пустыми значениями: поля с пустой строкой
// (после обрезки пробелов) становятся nil, чтобы в исходящий запрос никогда
// не попадали буквальные пустые параметры.
func (f *FilterCriteria) Normalize() {
	if f == nil {
		return
	}
	f.City = trimOrNil(f.City)
	f.Category = trimOrNil(f.Category)
	f.Search = trimOrNil(f.Search)
}

// OrderFilter — разреженный набор ограничений для выборки заявок.
type OrderFilter struct {
	CustomerID *int    // Заявки конкретного заказчика
	MasterID   *int    // Заявки, назначенные конкретному мастеру
	Status     *string // Статус заявки (open, in_progress, completed, cancelled)
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
