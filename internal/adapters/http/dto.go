package http

import "github.com/randomtoy/menu-designer/internal/domain"

// ConfigRequest is the JSON body accepted by POST /v1/menus and
// PUT /v1/sessions/:id/config.
type ConfigRequest struct {
	RestaurantName    string  `json:"restaurant_name"`
	CuisineType       string  `json:"cuisine_type"`
	CategoryCount     *int    `json:"category_count"`
	DishesPerCategory *int    `json:"dishes_per_category"`
	Seed              *uint64 `json:"seed,omitempty"`
}

// MenuResponse is the JSON shape returned by POST /v1/menus.
type MenuResponse struct {
	Menu domain.GeneratedMenu `json:"menu"`
	Meta MetaResp             `json:"meta"`
}

// SessionResponse is the JSON shape of a session. Menu is null until a
// menu has been generated, and again after it is cleared.
type SessionResponse struct {
	ID        string                `json:"id"`
	Config    domain.Configuration  `json:"config"`
	Menu      *domain.GeneratedMenu `json:"menu"`
	UpdatedAt string                `json:"updated_at"`
	Meta      MetaResp              `json:"meta"`
}

type CatalogResponse struct {
	Cuisines   []string   `json:"cuisines"`
	Categories []string   `json:"categories"`
	Limits     LimitsResp `json:"limits"`
}

type LimitsResp struct {
	MaxCategories int `json:"max_categories"`
	MaxDishes     int `json:"max_dishes"`
}

type MetaResp struct {
	RequestID string  `json:"request_id"`
	Seed      *uint64 `json:"seed,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
