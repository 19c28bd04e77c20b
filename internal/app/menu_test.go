package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/menu-designer/internal/adapters/sessions"
	"github.com/randomtoy/menu-designer/internal/app"
	"github.com/randomtoy/menu-designer/internal/domain"
)

type mockCatalogStore struct {
	catalog  domain.Catalog
	fallback domain.Fallback
	err      error
}

func (m *mockCatalogStore) Catalog(_ context.Context) (domain.Catalog, domain.Fallback, error) {
	return m.catalog, m.fallback, m.err
}

type fixedRNG struct{ val int }

func (r fixedRNG) Intn(n int) int { return r.val % n }

func seededFixed(seed uint64) domain.RNG { return fixedRNG{val: int(seed)} }

func testCatalogStore() *mockCatalogStore {
	return &mockCatalogStore{
		catalog: domain.Catalog{
			"Italian": {
				"Starters":    {{Name: "Burrata Caprese"}, {Name: "Arancini Trio"}},
				"Main Course": {{Name: "Lobster Ravioli"}, {Name: "Osso Buco Milanese"}},
				"Desserts":    {{Name: "Tiramisu Perfetto"}},
			},
			"French": {
				"Starters": {{Name: "Foie Gras Terrine"}},
			},
		},
		fallback: domain.Fallback{
			"Starters":    {{Name: "Artisan Soup"}},
			"Main Course": {{Name: "Signature Entrée"}},
		},
	}
}

func newService() *app.MenuService {
	return app.NewMenuService(testCatalogStore(), sessions.NewMemoryStore(), fixedRNG{val: 0}, seededFixed, domain.DefaultLimits)
}

func TestGenerate_Success(t *testing.T) {
	svc := newService()

	menu, err := svc.Generate(context.Background(), app.GenerateRequest{
		Config: domain.Configuration{RestaurantName: "Trattoria", CuisineType: "Italian", CategoryCount: 2, DishesPerCategory: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, "Trattoria", menu.RestaurantName)
	require.Len(t, menu.Categories, 2)
	assert.Equal(t, "Burrata Caprese", menu.Categories[0].Dishes[0].Name)
	assert.Equal(t, "Lobster Ravioli", menu.Categories[1].Dishes[1].Name)
}

func TestGenerate_UsesSeed(t *testing.T) {
	svc := newService()
	seed := uint64(1)

	menu, err := svc.Generate(context.Background(), app.GenerateRequest{
		Config: domain.Configuration{CuisineType: "Italian", CategoryCount: 1, DishesPerCategory: 1},
		Seed:   &seed,
	})
	require.NoError(t, err)
	assert.Equal(t, "Arancini Trio", menu.Categories[0].Dishes[0].Name)
}

func TestGenerate_CatalogFailure(t *testing.T) {
	store := &mockCatalogStore{err: domain.ErrInvalidCatalog}
	svc := app.NewMenuService(store, sessions.NewMemoryStore(), fixedRNG{}, nil, domain.DefaultLimits)

	_, err := svc.Generate(context.Background(), app.GenerateRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestCatalogInfo(t *testing.T) {
	svc := app.NewMenuService(testCatalogStore(), sessions.NewMemoryStore(), fixedRNG{}, nil, domain.Limits{MaxCategories: 8, MaxDishes: 10})

	info, err := svc.CatalogInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"French", "Italian"}, info.Cuisines)
	require.Len(t, info.Categories, 8)
	assert.Equal(t, "Starters", info.Categories[0])
	assert.Equal(t, "Specialties", info.Categories[7])
	assert.Equal(t, 8, info.Limits.MaxCategories)
}

func TestSession_Flow(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, domain.DefaultConfiguration(), sess.Config)
	assert.Nil(t, sess.Menu)

	sess, err = svc.Configure(ctx, sess.ID, domain.Configuration{CuisineType: "French", CategoryCount: 40, DishesPerCategory: 0})
	require.NoError(t, err)
	assert.Equal(t, 12, sess.Config.CategoryCount)
	assert.Equal(t, 1, sess.Config.DishesPerCategory)

	sess, err = svc.GenerateForSession(ctx, sess.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, sess.Menu)
	assert.Len(t, sess.Menu.Categories, 12)
	assert.Equal(t, "Foie Gras Terrine", sess.Menu.Categories[0].Dishes[0].Name)

	stored, err := svc.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Menu, stored.Menu)

	sess, err = svc.ClearMenu(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, sess.Menu)
	assert.Equal(t, "French", sess.Config.CuisineType)
}

func TestSession_GenerateReplacesMenu(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	first, err := svc.GenerateForSession(ctx, sess.ID, nil)
	require.NoError(t, err)

	seed := uint64(1)
	second, err := svc.GenerateForSession(ctx, sess.ID, &seed)
	require.NoError(t, err)

	assert.NotSame(t, first.Menu, second.Menu)
	assert.Equal(t, "Burrata Caprese", first.Menu.Categories[0].Dishes[0].Name)
	assert.Equal(t, "Arancini Trio", second.Menu.Categories[0].Dishes[0].Name)
}

func TestSession_NotFound(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.GetSession(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))

	_, err = svc.Configure(ctx, "missing", domain.Configuration{})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = svc.GenerateForSession(ctx, "missing", nil)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = svc.ClearMenu(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

// gatedCatalogStore blocks the first Catalog call until release is closed.
type gatedCatalogStore struct {
	*mockCatalogStore
	entered chan struct{}
	release chan struct{}
	first   bool
}

func (g *gatedCatalogStore) Catalog(ctx context.Context) (domain.Catalog, domain.Fallback, error) {
	if !g.first {
		g.first = true
		close(g.entered)
		<-g.release
	}
	return g.mockCatalogStore.Catalog(ctx)
}

func TestSession_ConcurrentGenerateAndConfigureKeepBoth(t *testing.T) {
	store := &gatedCatalogStore{
		mockCatalogStore: testCatalogStore(),
		entered:          make(chan struct{}),
		release:          make(chan struct{}),
	}
	svc := app.NewMenuService(store, sessions.NewMemoryStore(), fixedRNG{val: 0}, nil, domain.DefaultLimits)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	generated := make(chan error, 1)
	go func() {
		_, err := svc.GenerateForSession(ctx, sess.ID, nil)
		generated <- err
	}()
	<-store.entered

	// Generation is parked inside the session transition; configure must
	// either wait for it or be applied on top of it, never underneath.
	configured := make(chan error, 1)
	go func() {
		_, err := svc.Configure(ctx, sess.ID, domain.Configuration{CuisineType: "French", CategoryCount: 1, DishesPerCategory: 1})
		configured <- err
	}()
	select {
	case err := <-configured:
		configured <- err
	case <-time.After(50 * time.Millisecond):
	}
	close(store.release)

	require.NoError(t, <-generated)
	require.NoError(t, <-configured)

	final, err := svc.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.NotNil(t, final.Menu, "generated menu was overwritten")
	assert.Equal(t, "French", final.Config.CuisineType, "configuration was overwritten")
}
