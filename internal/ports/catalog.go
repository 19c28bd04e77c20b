package ports

import (
	"context"

	"github.com/randomtoy/menu-designer/internal/domain"
)

// CatalogStore provides the dish catalog and its fallback mapping.
type CatalogStore interface {
	Catalog(ctx context.Context) (domain.Catalog, domain.Fallback, error)
}
