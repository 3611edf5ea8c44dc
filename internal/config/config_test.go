package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/folio/internal/pagination"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 150*time.Millisecond, cfg.GetDebounce())
	assert.Equal(t, pagination.PageSizeA4, cfg.GetPageSize())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
content: data/portfolio.json
theme:
  preset: modern
preview:
  page_size: letter
  zoom: 1.5
  debounce: 50ms
`), 0644))

	t.Setenv("FOLIO_OUTPUT", "build/preview")
	t.Setenv("FOLIO_ZOOM", "0.75")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/portfolio.json", cfg.Content)
	assert.Equal(t, "modern", cfg.Theme.Preset)
	assert.Equal(t, "build/preview", cfg.Preview.Output)
	assert.Equal(t, 0.75, cfg.Preview.Zoom)
	assert.Equal(t, 50*time.Millisecond, cfg.GetDebounce())
	assert.Equal(t, 792.0, cfg.GetPageSize().Height)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("content: [unclosed"), 0644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")

	t.Setenv("FOLIO_ZOOM", "big")
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "invalid FOLIO_ZOOM")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content = ""
	cfg.Theme.Preset = "neon"
	cfg.Preview.Zoom = 3
	cfg.Preview.PageSize = "B5"
	cfg.Preview.Debounce = "soon"
	cfg.Logging.Level = "trace"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"Config.Content (required)",
		"Config.Preview.Zoom (lte)",
		"Config.Logging.Level (oneof)",
		`unknown theme preset "neon"`,
		`unknown page size "B5"`,
		`invalid debounce "soon"`,
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folio.yaml")
	cfg := DefaultConfig()
	cfg.Theme.Preset = "minimal"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(override, []byte(`
colors:
  primary: "#112233"
typography:
  fontSize:
    h2: 20
`), 0644))

	cfg := DefaultConfig()
	cfg.Theme.Override = override
	th, err := cfg.LoadTheme(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "#112233", th.Colors.Primary)
	assert.Equal(t, 20.0, th.Typography.FontSize.H2)
	assert.Equal(t, 24.0, th.Typography.FontSize.H1)

	cfg.Theme.Override = filepath.Join(dir, "missing.yaml")
	_, err = cfg.LoadTheme(context.Background(), nil)
	assert.ErrorContains(t, err, "failed to open theme override")

	txt := filepath.Join(dir, "override.txt")
	require.NoError(t, os.WriteFile(txt, []byte("colors: {}"), 0644))
	cfg.Theme.Override = txt
	_, err = cfg.LoadTheme(context.Background(), nil)
	assert.ErrorContains(t, err, "is not JSON or YAML")

	cfg.Theme.Override = ""
	cfg.Theme.Preset = "neon"
	_, err = cfg.LoadTheme(context.Background(), nil)
	assert.Error(t, err)
}
