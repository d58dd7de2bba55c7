package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Akashdeep-Patra/carousel/internal/carousel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Gap)
	assert.Equal(t, 0, cfg.ItemsPerSlide)
	assert.Equal(t, 16*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.WatchDebounce)
	assert.True(t, cfg.RememberPosition)
	assert.Equal(t, carousel.DefaultStatusLabel, cfg.AccessibilityStatus)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`gap: 4
items_per_slide: 3
index: 5
frame_interval: 40ms
accessibility_status: "{currentSlide}/{totalSlides}"
remember_position: false
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o644))

	cfg, err := load(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Gap)
	assert.Equal(t, 3, cfg.ItemsPerSlide)
	assert.Equal(t, 5, cfg.Index)
	assert.Equal(t, 40*time.Millisecond, cfg.FrameInterval)
	assert.False(t, cfg.RememberPosition)
	assert.Equal(t, "{currentSlide}/{totalSlides}", cfg.AccessibilityStatus)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CAROUSEL_ITEMS_PER_SLIDE", "4")
	cfg, err := load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.ItemsPerSlide)
}

func TestLoad_BadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("gap: [unclosed"), 0o644))
	_, err := load(dir)
	require.Error(t, err)
}

func TestCarousel(t *testing.T) {
	cfg, err := load(t.TempDir())
	require.NoError(t, err)
	cfg.ItemsPerSlide = 2

	cc := cfg.Carousel([]carousel.Item{{Title: "a"}, {Title: "b"}, {Title: "c"}})
	assert.Equal(t, 2, cc.ItemsPerSlide)
	assert.Equal(t, carousel.DefaultOtherLabel, cc.Templates.Other)

	s := carousel.New(cc)
	assert.Equal(t, 2, s.Len())
}
