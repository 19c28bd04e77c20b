package domain

import (
	"fmt"
	"strconv"
)

// categoryLabels are the fixed section names, in menu order.
var categoryLabels = []string{
	"Starters",
	"Main Course",
	"Desserts",
	"Beverages",
	"Appetizers",
	"Soups",
	"Salads",
	"Specialties",
	"Signature Dishes",
	"Seasonal Menu",
	"Chef's Selection",
	"Premium Selection",
}

// CategoryLabel names the category at the zero-based index. Indexes past the
// fixed list get a synthesized "Category N" label, N being index+1.
func CategoryLabel(index int) string {
	if index >= 0 && index < len(categoryLabels) {
		return categoryLabels[index]
	}
	return "Category " + strconv.Itoa(index+1)
}

// SelectDish picks one dish uniformly at random for the cuisine and category.
// A miss in the catalog falls back to fallback[category], then to
// fallback[FallbackCategory]. The fallback for FallbackCategory must be
// non-empty; ValidateFallback checks this when a catalog is loaded.
func SelectDish(cuisine, category string, catalog Catalog, fallback Fallback, rng RNG) Dish {
	if dishes := catalog[cuisine][category]; len(dishes) > 0 {
		return dishes[rng.Intn(len(dishes))]
	}
	dishes, ok := fallback[category]
	if !ok || len(dishes) == 0 {
		dishes = fallback[FallbackCategory]
	}
	return dishes[rng.Intn(len(dishes))]
}

// GenerateMenu builds a new menu for cfg. Counts are clamped to limits and
// empty names are replaced by their defaults. Dishes are drawn category by
// category, slot by slot, so a given RNG sequence always yields the same menu.
func GenerateMenu(cfg Configuration, catalog Catalog, fallback Fallback, limits Limits, rng RNG) GeneratedMenu {
	cfg = limits.Normalize(cfg)

	categories := make([]Category, cfg.CategoryCount)
	for i := range categories {
		label := CategoryLabel(i)
		dishes := make([]Dish, cfg.DishesPerCategory)
		for j := range dishes {
			dishes[j] = SelectDish(cfg.CuisineType, label, catalog, fallback, rng)
		}
		categories[i] = Category{Name: label, Dishes: dishes}
	}

	return GeneratedMenu{
		RestaurantName: orDefault(cfg.RestaurantName, DefaultRestaurantName),
		CuisineType:    orDefault(cfg.CuisineType, DefaultCuisineType),
		Categories:     categories,
	}
}

// ValidateFallback checks the one data-integrity precondition of SelectDish.
func ValidateFallback(fallback Fallback) error {
	if len(fallback[FallbackCategory]) == 0 {
		return fmt.Errorf("%w: fallback for %q is empty", ErrInvalidCatalog, FallbackCategory)
	}
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
