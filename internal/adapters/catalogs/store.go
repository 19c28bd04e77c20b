package catalogs

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/randomtoy/menu-designer/internal/domain"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

type dishDoc struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       uint64 `yaml:"price"` // whole rupees; negative values fail to decode
}

type catalogDoc struct {
	Cuisines map[string]map[string][]dishDoc `yaml:"cuisines"`
	Fallback map[string][]dishDoc            `yaml:"fallback"`
}

// Store loads a catalog document once and serves it read-only afterwards.
type Store struct {
	load func() ([]byte, error)

	once     sync.Once
	catalog  domain.Catalog
	fallback domain.Fallback
	err      error
}

// NewEmbeddedStore serves the catalog compiled into the binary.
func NewEmbeddedStore() *Store {
	return &Store{load: func() ([]byte, error) { return embeddedCatalog, nil }}
}

// NewFileStore serves the catalog read from path on first use.
func NewFileStore(path string) *Store {
	return &Store{load: func() ([]byte, error) { return os.ReadFile(path) }}
}

func (s *Store) init() {
	raw, err := s.load()
	if err != nil {
		s.err = fmt.Errorf("read catalog: %w", err)
		return
	}
	s.catalog, s.fallback, s.err = Parse(raw)
}

func (s *Store) Catalog(_ context.Context) (domain.Catalog, domain.Fallback, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.catalog, s.fallback, nil
}

// Parse decodes a YAML catalog document, formats prices and checks that the
// fallback can always produce a dish.
func Parse(raw []byte) (domain.Catalog, domain.Fallback, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: parse: %w", domain.ErrInvalidCatalog, err)
	}

	catalog := make(domain.Catalog, len(doc.Cuisines))
	for cuisine, categories := range doc.Cuisines {
		catalog[cuisine] = make(map[string][]domain.Dish, len(categories))
		for category, dishes := range categories {
			catalog[cuisine][category] = toDishes(dishes)
		}
	}

	fallback := make(domain.Fallback, len(doc.Fallback))
	for category, dishes := range doc.Fallback {
		fallback[category] = toDishes(dishes)
	}

	if err := domain.ValidateFallback(fallback); err != nil {
		return nil, nil, err
	}
	return catalog, fallback, nil
}

func toDishes(docs []dishDoc) []domain.Dish {
	out := make([]domain.Dish, len(docs))
	for i, d := range docs {
		out[i] = domain.Dish{
			Name:        d.Name,
			Description: d.Description,
			Price:       domain.FormatINR(d.Price),
		}
	}
	return out
}
