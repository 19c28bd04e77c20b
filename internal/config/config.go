package config

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/randomtoy/menu-designer/internal/domain"
)

type Config struct {
	HTTP HTTPConfig `mapstructure:"http"`
	Log  LogConfig  `mapstructure:"log"`
	Menu MenuConfig `mapstructure:"menu"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MenuConfig struct {
	MaxCategories int    `mapstructure:"max_categories"`
	MaxDishes     int    `mapstructure:"max_dishes"`
	CatalogPath   string `mapstructure:"catalog_path"` // empty: use the embedded catalog
	Seed          string `mapstructure:"seed"`         // empty: auto-seeded
}

// Load reads configuration from defaults, an optional config file and the
// environment (HTTP_ADDR, LOG_LEVEL, MENU_MAX_CATEGORIES, ...), in increasing
// precedence.
func Load(configPath string) (Config, error) {
	v := viper.New()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("menu.max_categories", domain.DefaultLimits.MaxCategories)
	v.SetDefault("menu.max_dishes", domain.DefaultLimits.MaxDishes)
	v.SetDefault("menu.catalog_path", "")
	v.SetDefault("menu.seed", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", configPath, err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if _, err := c.LogLevel(); err != nil {
		return Config{}, err
	}
	if _, err := c.Seed(); err != nil {
		return Config{}, err
	}
	if err := c.Limits().Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid MENU_MAX_CATEGORIES/MENU_MAX_DISHES: %w", err)
	}

	return c, nil
}

// Limits returns the configured menu bounds.
func (c Config) Limits() domain.Limits {
	return domain.Limits{MaxCategories: c.Menu.MaxCategories, MaxDishes: c.Menu.MaxDishes}
}

// Seed returns the fixed process seed, or nil when none is configured.
func (c Config) Seed() (*uint64, error) {
	if c.Menu.Seed == "" {
		return nil, nil
	}
	s, err := strconv.ParseUint(c.Menu.Seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MENU_SEED %q: %w", c.Menu.Seed, err)
	}
	return &s, nil
}

func (c Config) LogLevel() (slog.Level, error) {
	return parseLogLevel(c.Log.Level)
}

// Logger builds the process logger: JSON unless LOG_FORMAT=text.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, _ := c.LogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
