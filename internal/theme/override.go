package theme

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Override is a sparse theme delta. A nil field leaves the base value untouched.
type Override struct {
	Name       *string             `yaml:"name,omitempty" json:"name,omitempty"`
	Colors     *ColorsOverride     `yaml:"colors,omitempty" json:"colors,omitempty"`
	Typography *TypographyOverride `yaml:"typography,omitempty" json:"typography,omitempty"`
	Spacing    *SpacingOverride    `yaml:"spacing,omitempty" json:"spacing,omitempty"`
	Layout     *LayoutOverride     `yaml:"layout,omitempty" json:"layout,omitempty"`
}

// ColorsOverride overrides Colors
type ColorsOverride struct {
	Primary    *string             `yaml:"primary,omitempty" json:"primary,omitempty"`
	Text       *TextColorsOverride `yaml:"text,omitempty" json:"text,omitempty"`
	Background *BackgroundOverride `yaml:"background,omitempty" json:"background,omitempty"`
	Border     *string             `yaml:"border,omitempty" json:"border,omitempty"`
}

// TextColorsOverride overrides TextColors
type TextColorsOverride struct {
	Primary   *string `yaml:"primary,omitempty" json:"primary,omitempty"`
	Secondary *string `yaml:"secondary,omitempty" json:"secondary,omitempty"`
	Muted     *string `yaml:"muted,omitempty" json:"muted,omitempty"`
}

// BackgroundOverride overrides the page background colour
type BackgroundOverride struct {
	Page *string `yaml:"page,omitempty" json:"page,omitempty"`
}

// TypographyOverride overrides Typography
type TypographyOverride struct {
	FontSize   *FontSizeOverride   `yaml:"fontSize,omitempty" json:"fontSize,omitempty"`
	FontFamily *FontFamilyOverride `yaml:"fontFamily,omitempty" json:"fontFamily,omitempty"`
	LineHeight *float64            `yaml:"lineHeight,omitempty" json:"lineHeight,omitempty"`
}

// FontSizeOverride overrides individual font sizes
type FontSizeOverride struct {
	H1    *float64 `yaml:"h1,omitempty" json:"h1,omitempty"`
	H2    *float64 `yaml:"h2,omitempty" json:"h2,omitempty"`
	H3    *float64 `yaml:"h3,omitempty" json:"h3,omitempty"`
	Body  *float64 `yaml:"body,omitempty" json:"body,omitempty"`
	Small *float64 `yaml:"small,omitempty" json:"small,omitempty"`
}

// FontFamilyOverride overrides the font family
type FontFamilyOverride struct {
	Primary *string `yaml:"primary,omitempty" json:"primary,omitempty"`
}

// SpacingOverride overrides Spacing
type SpacingOverride struct {
	Page *PageMarginsOverride `yaml:"page,omitempty" json:"page,omitempty"`
}

// PageMarginsOverride overrides individual page margins
type PageMarginsOverride struct {
	MarginTop    *float64 `yaml:"marginTop,omitempty" json:"marginTop,omitempty"`
	MarginRight  *float64 `yaml:"marginRight,omitempty" json:"marginRight,omitempty"`
	MarginBottom *float64 `yaml:"marginBottom,omitempty" json:"marginBottom,omitempty"`
	MarginLeft   *float64 `yaml:"marginLeft,omitempty" json:"marginLeft,omitempty"`
}

// LayoutOverride overrides Layout
type LayoutOverride struct {
	PageBreakBetweenSections *bool `yaml:"pageBreakBetweenSections,omitempty" json:"pageBreakBetweenSections,omitempty"`
}

// Merge returns base with every leaf present in o replaced. base is not modified.
func Merge(base Theme, o Override) Theme {
	t := base
	set(&t.Name, o.Name)

	if c := o.Colors; c != nil {
		set(&t.Colors.Primary, c.Primary)
		set(&t.Colors.Border, c.Border)
		if tc := c.Text; tc != nil {
			set(&t.Colors.Text.Primary, tc.Primary)
			set(&t.Colors.Text.Secondary, tc.Secondary)
			set(&t.Colors.Text.Muted, tc.Muted)
		}
		if bg := c.Background; bg != nil {
			set(&t.Colors.Background.Page, bg.Page)
		}
	}

	if ty := o.Typography; ty != nil {
		if fs := ty.FontSize; fs != nil {
			set(&t.Typography.FontSize.H1, fs.H1)
			set(&t.Typography.FontSize.H2, fs.H2)
			set(&t.Typography.FontSize.H3, fs.H3)
			set(&t.Typography.FontSize.Body, fs.Body)
			set(&t.Typography.FontSize.Small, fs.Small)
		}
		if ff := ty.FontFamily; ff != nil {
			set(&t.Typography.FontFamily.Primary, ff.Primary)
		}
		set(&t.Typography.LineHeight, ty.LineHeight)
	}

	if sp := o.Spacing; sp != nil && sp.Page != nil {
		set(&t.Spacing.Page.MarginTop, sp.Page.MarginTop)
		set(&t.Spacing.Page.MarginRight, sp.Page.MarginRight)
		set(&t.Spacing.Page.MarginBottom, sp.Page.MarginBottom)
		set(&t.Spacing.Page.MarginLeft, sp.Page.MarginLeft)
	}

	if l := o.Layout; l != nil {
		set(&t.Layout.PageBreakBetweenSections, l.PageBreakBetweenSections)
	}

	return t
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// LoadOverride decodes a YAML (or JSON, which is valid YAML) override document
func LoadOverride(r io.Reader) (Override, error) {
	var o Override
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		if err == io.EOF {
			return Override{}, nil
		}
		return Override{}, fmt.Errorf("failed to decode theme override: %w", err)
	}
	return o, nil
}
