package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/randomtoy/menu-designer/internal/adapters/catalogs"
	httpadapter "github.com/randomtoy/menu-designer/internal/adapters/http"
	"github.com/randomtoy/menu-designer/internal/adapters/random"
	"github.com/randomtoy/menu-designer/internal/adapters/sessions"
	"github.com/randomtoy/menu-designer/internal/app"
	"github.com/randomtoy/menu-designer/internal/config"
	"github.com/randomtoy/menu-designer/internal/domain"
)

// configPath loads the .env files (a missing one is fine) and then resolves
// -config, which defaults to MENU_CONFIG_FILE so the .env file can set it.
func configPath(args []string, envFiles ...string) (string, error) {
	_ = godotenv.Load(envFiles...)

	fs := flag.NewFlagSet("menud", flag.ContinueOnError)
	path := fs.String("config", os.Getenv("MENU_CONFIG_FILE"), "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *path, nil
}

func main() {
	path, err := configPath(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(path)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger(os.Stdout)
	slog.SetDefault(logger)

	catalogStore := catalogs.NewEmbeddedStore()
	if cfg.Menu.CatalogPath != "" {
		catalogStore = catalogs.NewFileStore(cfg.Menu.CatalogPath)
	}
	// Load eagerly so a broken catalog stops startup instead of failing requests.
	if _, _, err := catalogStore.Catalog(context.Background()); err != nil {
		logger.Error("failed to load catalog", "path", cfg.Menu.CatalogPath, "error", err)
		os.Exit(1)
	}

	var rng domain.RNG = random.Std{}
	seed, _ := cfg.Seed()
	if seed != nil {
		rng = random.NewLocked(random.NewSeeded(*seed))
		logger.Info("using fixed seed", "seed", *seed)
	}

	svc := app.NewMenuService(catalogStore, sessions.NewMemoryStore(), rng, random.NewSeeded, cfg.Limits())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server",
			"addr", cfg.HTTP.Addr,
			"max_categories", cfg.Menu.MaxCategories,
			"max_dishes", cfg.Menu.MaxDishes,
		)
		if err := e.Start(cfg.HTTP.Addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
