package config

import (
	"context"
	"fmt"

	"github.com/gompdf/folio/internal/res"
	"github.com/gompdf/folio/internal/theme"
)

// LoadTheme resolves the configured preset and applies the override document,
// if any. The override is read through loader so it may be a path or URL; a nil
// loader reads it uncached.
func (c *Config) LoadTheme(ctx context.Context, loader *res.Loader) (theme.Theme, error) {
	base, err := theme.Preset(c.Theme.Preset)
	if err != nil {
		return theme.Theme{}, err
	}
	if c.Theme.Override == "" {
		return base, nil
	}
	if loader == nil {
		loader = res.NewLoader("")
	}

	doc, err := loader.Load(ctx, c.Theme.Override)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("failed to open theme override: %w", err)
	}
	if doc.Type == res.DocumentTypeOther {
		return theme.Theme{}, fmt.Errorf("theme override %s is not JSON or YAML (%s)", c.Theme.Override, doc.MimeType)
	}

	o, err := theme.LoadOverride(doc.GetReader())
	if err != nil {
		return theme.Theme{}, fmt.Errorf("failed to load theme override %s: %w", c.Theme.Override, err)
	}
	return theme.Merge(base, o), nil
}
