package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

const (
	DefaultRestaurantName = "Fine Dining Restaurant"
	DefaultCuisineType    = "International"

	// FallbackCategory is consulted when a category has no fallback entry of its own.
	FallbackCategory = "Main Course"
)

// Dish is a single catalog entry. Price is already formatted for display.
type Dish struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// Category is one section of a generated menu.
type Category struct {
	Name   string `json:"name"`
	Dishes []Dish `json:"dishes"`
}

// Catalog maps cuisine -> category -> candidate dishes.
type Catalog map[string]map[string][]Dish

// Fallback maps category -> candidate dishes, used when a catalog lookup misses.
type Fallback map[string][]Dish

// Configuration is the user-editable input to menu generation.
type Configuration struct {
	RestaurantName    string `json:"restaurant_name"`
	CuisineType       string `json:"cuisine_type"`
	CategoryCount     int    `json:"category_count"`
	DishesPerCategory int    `json:"dishes_per_category"`
}

// DefaultConfiguration matches the initial state of a fresh editing session.
func DefaultConfiguration() Configuration {
	return Configuration{
		CuisineType:       "Italian",
		CategoryCount:     3,
		DishesPerCategory: 3,
	}
}

// GeneratedMenu is the result of a single generation. It is never mutated
// after GenerateMenu returns it.
type GeneratedMenu struct {
	RestaurantName string     `json:"restaurant_name"`
	CuisineType    string     `json:"cuisine_type"`
	Categories     []Category `json:"categories"`
}

// Limits bounds the category and dish counts of a generated menu.
type Limits struct {
	MaxCategories int
	MaxDishes     int
}

// DefaultLimits are the bounds used when none are configured.
var DefaultLimits = Limits{MaxCategories: 12, MaxDishes: 10}

// Ceilings for configured limits. A menu past these is no longer a menu,
// and every request allocates up to MaxCategories x MaxDishes dishes.
const (
	CeilingCategories = 100
	CeilingDishes     = 100
)

// Normalize clamps the counts of cfg into range. Text fields are kept as entered.
func (l Limits) Normalize(cfg Configuration) Configuration {
	cfg.CategoryCount = clamp(cfg.CategoryCount, 1, l.MaxCategories)
	cfg.DishesPerCategory = clamp(cfg.DishesPerCategory, 1, l.MaxDishes)
	return cfg
}

// Validate reports whether l is within [1, Ceiling*] on both axes.
func (l Limits) Validate() error {
	if l.MaxCategories < 1 || l.MaxDishes < 1 ||
		l.MaxCategories > CeilingCategories || l.MaxDishes > CeilingDishes {
		return ErrInvalidLimits
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}
