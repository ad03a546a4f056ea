package models

// PortfolioItem — элемент портфолио мастера: ссылка на изображение работы
// и её необязательное название.
type PortfolioItem struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// Master представляет профиль мастера, возвращаемый эндпоинтом списка.
// Удалённая сторона подшивает в запись поля связанного пользователя
// (full_name, avatar_url, phone), поэтому они присутствуют здесь же.
// С точки зрения шлюза запись неизменяемая.
type Master struct {
	ID                int             `json:"id"`
	UserID            int             `json:"user_id"`
	FullName          string          `json:"full_name"`
	Specialty         string          `json:"specialty"`
	Description       string          `json:"description,omitempty"`
	ExperienceYears   int             `json:"experience_years,omitempty"`
	City              string          `json:"city"`
	Rating            float64         `json:"rating"` // 0–5
	ReviewsCount      int             `json:"reviews_count"`
	CompletedProjects int             `json:"completed_projects"`
	Verified          bool            `json:"verified"`
	AvatarURL         string          `json:"avatar_url,omitempty"`
	Phone             string          `json:"phone,omitempty"`
	Portfolio         []PortfolioItem `json:"portfolio,omitempty"`
	Categories        []string        `json:"categories,omitempty"`
}
