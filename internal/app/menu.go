package app

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/randomtoy/menu-designer/internal/domain"
	"github.com/randomtoy/menu-designer/internal/ports"
)

// SeedFunc builds a reproducible random source from a seed.
type SeedFunc func(seed uint64) domain.RNG

// GenerateRequest is the application-level input (no HTTP types).
// A nil Seed draws from the service's ambient random source.
type GenerateRequest struct {
	Config domain.Configuration
	Seed   *uint64
}

// CatalogInfo describes what a client may choose from.
type CatalogInfo struct {
	Cuisines   []string
	Categories []string
	Limits     domain.Limits
}

// MenuService generates menus and drives editing sessions.
type MenuService struct {
	catalogs ports.CatalogStore
	sessions ports.SessionStore
	rng      domain.RNG
	seeded   SeedFunc
	limits   domain.Limits

	now   func() time.Time
	newID func() string
}

func NewMenuService(cs ports.CatalogStore, ss ports.SessionStore, rng domain.RNG, seeded SeedFunc, limits domain.Limits) *MenuService {
	return &MenuService{
		catalogs: cs,
		sessions: ss,
		rng:      rng,
		seeded:   seeded,
		limits:   limits,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Generate builds a menu without touching any session.
func (s *MenuService) Generate(ctx context.Context, req GenerateRequest) (domain.GeneratedMenu, error) {
	catalog, fallback, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return domain.GeneratedMenu{}, fmt.Errorf("get catalog: %w", err)
	}
	return domain.GenerateMenu(req.Config, catalog, fallback, s.limits, s.rngFor(req.Seed)), nil
}

func (s *MenuService) CatalogInfo(ctx context.Context) (CatalogInfo, error) {
	catalog, _, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return CatalogInfo{}, fmt.Errorf("get catalog: %w", err)
	}

	cuisines := make([]string, 0, len(catalog))
	for c := range catalog {
		cuisines = append(cuisines, c)
	}
	slices.Sort(cuisines)

	labels := make([]string, s.limits.MaxCategories)
	for i := range labels {
		labels[i] = domain.CategoryLabel(i)
	}

	return CatalogInfo{Cuisines: cuisines, Categories: labels, Limits: s.limits}, nil
}

func (s *MenuService) CreateSession(ctx context.Context) (domain.Session, error) {
	sess := domain.NewSession(s.newID(), s.now())
	sess.Config = s.limits.Normalize(sess.Config)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func (s *MenuService) GetSession(ctx context.Context, id string) (domain.Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// Configure replaces the session configuration, clamping counts on the way in.
func (s *MenuService) Configure(ctx context.Context, id string, cfg domain.Configuration) (domain.Session, error) {
	return s.update(ctx, id, func(sess domain.Session) (domain.Session, error) {
		return sess.WithConfig(s.limits.Normalize(cfg), s.now()), nil
	})
}

// GenerateForSession generates from the session's current configuration and
// replaces any earlier menu.
func (s *MenuService) GenerateForSession(ctx context.Context, id string, seed *uint64) (domain.Session, error) {
	return s.update(ctx, id, func(sess domain.Session) (domain.Session, error) {
		menu, err := s.Generate(ctx, GenerateRequest{Config: sess.Config, Seed: seed})
		if err != nil {
			return domain.Session{}, err
		}
		return sess.WithMenu(menu, s.now()), nil
	})
}

// ClearMenu drops the session's menu; the configuration stays.
func (s *MenuService) ClearMenu(ctx context.Context, id string) (domain.Session, error) {
	return s.update(ctx, id, func(sess domain.Session) (domain.Session, error) {
		return sess.Cleared(s.now()), nil
	})
}

func (s *MenuService) update(ctx context.Context, id string, apply func(domain.Session) (domain.Session, error)) (domain.Session, error) {
	sess, err := s.sessions.Update(ctx, id, apply)
	if err != nil {
		return domain.Session{}, fmt.Errorf("update session: %w", err)
	}
	return sess, nil
}

func (s *MenuService) rngFor(seed *uint64) domain.RNG {
	if seed != nil && s.seeded != nil {
		return s.seeded(*seed)
	}
	return s.rng
}
