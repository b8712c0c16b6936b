// Package config loads faraway settings from an optional YAML file and
// applies FARAWAY_* environment overrides on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/faraway/internal/menu"
	"github.com/Makepad-fr/faraway/internal/model"
	"github.com/Makepad-fr/faraway/internal/packing"
	"github.com/Makepad-fr/faraway/internal/ui"
)

// DefaultPath is used when no -config flag is given.
const DefaultPath = "faraway.yaml"

// MenuConfig tunes the pizza menu footer.
type MenuConfig struct {
	OpenHour  int `yaml:"open_hour" env:"OPEN_HOUR"`
	CloseHour int `yaml:"close_hour" env:"CLOSE_HOUR"`
}

// Config models faraway.yaml.
type Config struct {
	Theme           string       `yaml:"theme" env:"THEME"`
	DefaultQuantity int          `yaml:"default_quantity" env:"DEFAULT_QUANTITY"`
	MaxQuantity     int          `yaml:"max_quantity" env:"MAX_QUANTITY"`
	SortOrder       string       `yaml:"sort_order" env:"SORT_ORDER"`
	DebugLog        string       `yaml:"debug_log" env:"DEBUG_LOG"`
	SeedItems       []model.Item `yaml:"seed_items" env:"-"`
	Menu            MenuConfig   `yaml:"menu"`
}

// Default returns the built-in configuration, seeded with the starter
// packing list.
func Default() Config {
	return Config{
		Theme:           "classic",
		DefaultQuantity: 1,
		MaxQuantity:     20,
		SortOrder:       "input",
		SeedItems: []model.Item{
			{ID: 1, Description: "Passports", Quantity: 2},
			{ID: 2, Description: "Socks", Quantity: 12},
			{ID: 3, Description: "Charger", Quantity: 1},
		},
		Menu: MenuConfig{OpenHour: menu.DefaultOpenHour, CloseHour: menu.DefaultCloseHour},
	}
}

// Load reads path (a missing file yields defaults), applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	if err := env.ParseWithOptions(&c, env.Options{Prefix: "FARAWAY_"}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges only; seed items are validated by the store.
func (c Config) Validate() error {
	if !ui.IsTheme(c.Theme) {
		return fmt.Errorf("config: unknown theme %q", c.Theme)
	}
	if c.MaxQuantity < 1 {
		return fmt.Errorf("config: max_quantity must be at least 1, got %d", c.MaxQuantity)
	}
	if c.DefaultQuantity < 1 || c.DefaultQuantity > c.MaxQuantity {
		return fmt.Errorf("config: default_quantity %d outside 1..%d", c.DefaultQuantity, c.MaxQuantity)
	}
	if _, err := packing.ParseSortOrder(c.SortOrder); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Hours().Validate(); err != nil {
		return fmt.Errorf("config: menu: %w", err)
	}
	return nil
}

// Hours converts the menu section.
func (c Config) Hours() menu.Hours {
	return menu.Hours{Open: c.Menu.OpenHour, Close: c.Menu.CloseHour}
}
