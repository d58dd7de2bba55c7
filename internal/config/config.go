package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/Akashdeep-Patra/carousel/internal/carousel"
	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// Deck is the item file shown when no --deck flag is given.
	Deck string `mapstructure:"deck"`
	// Gap is the spacing between items in cells.
	Gap int `mapstructure:"gap"`
	// Index is the starting anchor index.
	Index int `mapstructure:"index"`
	// ItemsPerSlide enables fixed-slide paging when > 0.
	ItemsPerSlide int `mapstructure:"items_per_slide"`

	AccessibilityPrev    string `mapstructure:"accessibility_prev"`
	AccessibilityNext    string `mapstructure:"accessibility_next"`
	AccessibilityStatus  string `mapstructure:"accessibility_status"`
	AccessibilityCurrent string `mapstructure:"accessibility_current"`
	AccessibilityOther   string `mapstructure:"accessibility_other"`

	// FrameInterval is the layout coalescing window.
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	// WatchDebounce coalesces bursts of deck file events.
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
	// RememberPosition restores the last index per deck on start.
	RememberPosition bool `mapstructure:"remember_position"`
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`
}

// Load reads configuration from ~/.config/carousel/config.yaml (or TOML/JSON).
func Load() (*Config, error) {
	return load(configDirectory(), ".")
}

func load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvPrefix("CAROUSEL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine, use defaults.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Carousel converts the configuration into engine input for items.
func (c *Config) Carousel(items []carousel.Item) carousel.Config {
	return carousel.Config{
		Gap:           c.Gap,
		Index:         c.Index,
		ItemsPerSlide: c.ItemsPerSlide,
		Templates: carousel.Templates{
			Prev:    c.AccessibilityPrev,
			Next:    c.AccessibilityNext,
			Status:  c.AccessibilityStatus,
			Current: c.AccessibilityCurrent,
			Other:   c.AccessibilityOther,
		},
		Items: items,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deck", "")
	v.SetDefault("gap", 2)
	v.SetDefault("index", 0)
	v.SetDefault("items_per_slide", 0)
	v.SetDefault("accessibility_prev", "Previous Slide")
	v.SetDefault("accessibility_next", "Next Slide")
	v.SetDefault("accessibility_status", "Showing Slide {currentSlide} of {totalSlides} - Carousel")
	v.SetDefault("accessibility_current", "Current Slide {currentSlide} - Carousel")
	v.SetDefault("accessibility_other", "Slide {slide} - Carousel")
	v.SetDefault("frame_interval", 16*time.Millisecond)
	v.SetDefault("watch_debounce", 250*time.Millisecond)
	v.SetDefault("remember_position", true)
	v.SetDefault("theme", "dark")
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "carousel")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "carousel")
}
