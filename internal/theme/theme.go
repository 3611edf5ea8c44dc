// Package theme provides the colors, typography and spacing consumed by the
// layout estimator and the render pass.
package theme

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Theme is an immutable document styling record
type Theme struct {
	Name       string     `yaml:"name" json:"name"`
	Colors     Colors     `yaml:"colors" json:"colors"`
	Typography Typography `yaml:"typography" json:"typography"`
	Spacing    Spacing    `yaml:"spacing" json:"spacing"`
	Layout     Layout     `yaml:"layout" json:"layout"`
}

// Colors holds named color roles as #RRGGBB strings
type Colors struct {
	Primary    string     `yaml:"primary" json:"primary" validate:"required,hexcolor"`
	Text       TextColors `yaml:"text" json:"text"`
	Background Background `yaml:"background" json:"background"`
	Border     string     `yaml:"border" json:"border" validate:"required,hexcolor"`
}

// TextColors holds the text color roles
type TextColors struct {
	Primary   string `yaml:"primary" json:"primary" validate:"required,hexcolor"`
	Secondary string `yaml:"secondary" json:"secondary" validate:"required,hexcolor"`
	Muted     string `yaml:"muted" json:"muted" validate:"required,hexcolor"`
}

// Background holds the background color roles
type Background struct {
	Page string `yaml:"page" json:"page" validate:"required,hexcolor"`
}

// Typography holds font sizes (points), family and line height multiplier
type Typography struct {
	FontSize   FontSize   `yaml:"fontSize" json:"fontSize"`
	FontFamily FontFamily `yaml:"fontFamily" json:"fontFamily"`
	LineHeight float64    `yaml:"lineHeight" json:"lineHeight" validate:"gt=0"`
}

// FontSize maps document roles to point sizes
type FontSize struct {
	H1    float64 `yaml:"h1" json:"h1" validate:"gt=0"`
	H2    float64 `yaml:"h2" json:"h2" validate:"gt=0"`
	H3    float64 `yaml:"h3" json:"h3" validate:"gt=0"`
	Body  float64 `yaml:"body" json:"body" validate:"gt=0"`
	Small float64 `yaml:"small" json:"small" validate:"gt=0"`
}

// FontFamily names the fonts used by the document
type FontFamily struct {
	Primary string `yaml:"primary" json:"primary" validate:"required"`
}

// Spacing holds page spacing
type Spacing struct {
	Page PageMargins `yaml:"page" json:"page"`
}

// PageMargins are page margins in points
type PageMargins struct {
	MarginTop    float64 `yaml:"marginTop" json:"marginTop" validate:"gte=0"`
	MarginRight  float64 `yaml:"marginRight" json:"marginRight" validate:"gte=0"`
	MarginBottom float64 `yaml:"marginBottom" json:"marginBottom" validate:"gte=0"`
	MarginLeft   float64 `yaml:"marginLeft" json:"marginLeft" validate:"gte=0"`
}

// Layout holds document flow defaults
type Layout struct {
	PageBreakBetweenSections bool `yaml:"pageBreakBetweenSections" json:"pageBreakBetweenSections"`
}

// Default returns the professional theme
func Default() Theme {
	return Theme{
		Name: "professional",
		Colors: Colors{
			Primary: "#1F3A5F",
			Text: TextColors{
				Primary:   "#1F2937",
				Secondary: "#4B5563",
				Muted:     "#6B7280",
			},
			Background: Background{Page: "#FFFFFF"},
			Border:     "#E5E7EB",
		},
		Typography: Typography{
			FontSize: FontSize{
				H1:    24,
				H2:    16,
				H3:    14,
				Body:  10,
				Small: 9,
			},
			FontFamily: FontFamily{Primary: "Helvetica"},
			LineHeight: 1.4,
		},
		Spacing: Spacing{
			Page: PageMargins{
				MarginTop:    60,
				MarginRight:  40,
				MarginBottom: 60,
				MarginLeft:   40,
			},
		},
	}
}

var presets = map[string]func() Theme{
	"professional": Default,
	"modern": func() Theme {
		t := Default()
		t.Name = "modern"
		t.Colors.Primary = "#0F766E"
		t.Colors.Text.Primary = "#111827"
		t.Colors.Border = "#99F6E4"
		t.Typography.FontSize = FontSize{H1: 28, H2: 18, H3: 13, Body: 10, Small: 8}
		t.Typography.LineHeight = 1.5
		t.Spacing.Page = PageMargins{MarginTop: 48, MarginRight: 48, MarginBottom: 48, MarginLeft: 48}
		return t
	},
	"minimal": func() Theme {
		t := Default()
		t.Name = "minimal"
		t.Colors.Primary = "#000000"
		t.Colors.Text = TextColors{Primary: "#000000", Secondary: "#333333", Muted: "#666666"}
		t.Colors.Border = "#CCCCCC"
		t.Typography.FontFamily.Primary = "Times"
		t.Typography.FontSize = FontSize{H1: 20, H2: 14, H3: 12, Body: 10, Small: 9}
		t.Spacing.Page = PageMargins{MarginTop: 72, MarginRight: 72, MarginBottom: 72, MarginLeft: 72}
		return t
	},
}

// Preset returns a named built-in theme
func Preset(name string) (Theme, error) {
	f, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return f(), nil
}

// PresetNames lists the built-in theme names
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Validate reports every field that the estimator would have to skip
func (t Theme) Validate() error {
	err := validator.New().Struct(t)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("theme validation failed: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid theme: %s", strings.Join(fields, ", "))
}

// ParseColor parses #RRGGBB or #RGB into r,g,b
func ParseColor(s string) (int, int, int, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
