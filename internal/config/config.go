package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Layout LayoutConfig
	Text   TextConfig
	Debug  bool
}

// LayoutConfig is the space offered to the root when solving. Zero means
// unbounded on that axis.
type LayoutConfig struct {
	Width  int
	Height int
}

// TextConfig holds measurement settings.
type TextConfig struct {
	Wrap      string
	CacheSize int `mapstructure:"cache_size"`
}

// Path returns the config file location: $BOXTREE_CONFIG if set, otherwise
// ~/.config/boxtree/config.toml.
func Path() string {
	if p := os.Getenv("BOXTREE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "boxtree", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix BOXTREE_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("layout.width", 80)
	v.SetDefault("layout.height", 0)
	v.SetDefault("text.wrap", "wrap")
	v.SetDefault("text.cache_size", 1024)
	v.SetDefault("debug", false)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("BOXTREE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine, a malformed one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Layout.Width < 0 {
		return Config{}, fmt.Errorf("layout.width must not be negative, got %d", c.Layout.Width)
	}
	if c.Layout.Height < 0 {
		return Config{}, fmt.Errorf("layout.height must not be negative, got %d", c.Layout.Height)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("layout.width", cfg.Layout.Width)
	v.Set("layout.height", cfg.Layout.Height)
	v.Set("text.wrap", cfg.Text.Wrap)
	v.Set("text.cache_size", cfg.Text.CacheSize)
	v.Set("debug", cfg.Debug)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
