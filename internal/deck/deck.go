// Package deck loads carousel items from a YAML, TOML or JSON file.
//
// A deck file looks like:
//
//	title: Release notes
//	items:
//	  - title: Faster startup
//	    body: Cold start is now under 50ms.
//	    attrs:
//	      tag: perf
package deck

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Akashdeep-Patra/carousel/internal/carousel"
	"github.com/spf13/viper"
)

// ErrUnsupportedFormat is returned for files viper cannot parse by extension.
var ErrUnsupportedFormat = errors.New("unsupported deck format")

// Deck is a loaded item file.
type Deck struct {
	Path  string
	Title string
	Items []carousel.Item
}

type entry struct {
	Title string            `mapstructure:"title"`
	Body  string            `mapstructure:"body"`
	Attrs map[string]string `mapstructure:"attrs"`
}

// Load reads the deck at path. An empty or item-less file yields an empty
// deck, not an error.
func Load(path string) (*Deck, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve deck path %s: %w", path, err)
	}

	ext := strings.TrimPrefix(filepath.Ext(abs), ".")
	if !supported(ext) {
		return nil, fmt.Errorf("%s: %w", abs, ErrUnsupportedFormat)
	}

	v := viper.New()
	v.SetConfigFile(abs)
	v.SetConfigType(ext)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read deck %s: %w", abs, err)
	}

	var entries []entry
	if err := v.UnmarshalKey("items", &entries); err != nil {
		return nil, fmt.Errorf("parse deck items %s: %w", abs, err)
	}

	d := &Deck{
		Path:  abs,
		Title: v.GetString("title"),
		Items: make([]carousel.Item, 0, len(entries)),
	}
	for _, e := range entries {
		d.Items = append(d.Items, carousel.Item{
			Title: e.Title,
			Body:  e.Body,
			Attrs: e.Attrs,
		})
	}
	return d, nil
}

// FromStrings builds an unnamed deck with one item per title.
func FromStrings(titles ...string) *Deck {
	d := &Deck{Items: make([]carousel.Item, 0, len(titles))}
	for _, t := range titles {
		d.Items = append(d.Items, carousel.Item{Title: t})
	}
	return d
}

func supported(ext string) bool {
	switch strings.ToLower(ext) {
	case "yaml", "yml", "toml", "json":
		return true
	}
	return false
}
