// Package folio estimates how a portfolio document flows onto fixed-size
// pages and paints a preview of the result.
package folio

import (
	"github.com/gompdf/folio/internal/content"
	"github.com/gompdf/folio/internal/theme"
	"github.com/gompdf/folio/pkg/api"
)

type Previewer = api.Previewer
type Options = api.Options
type Option = api.Option
type UpdateOptions = api.UpdateOptions
type Surface = api.Surface
type Content = api.Content
type Theme = api.Theme
type SectionID = api.SectionID

func New(opts ...Option) *Previewer             { return api.New(opts...) }
func NewWithOptions(options Options) *Previewer { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

// ParseContent decodes a portfolio JSON document. Malformed sections are
// recorded in Content.Problems instead of failing the whole document.
func ParseContent(data []byte) (*Content, error) { return content.Parse(data) }

// ThemePreset returns the named built-in theme
func ThemePreset(name string) (Theme, error) { return theme.Preset(name) }

// Sections in their default order
var Sections = content.AllSections

var (
	WithPageSize       = api.WithPageSize
	WithPageSizeA4     = api.WithPageSizeA4
	WithPageSizeLetter = api.WithPageSizeLetter
	WithPageSizeLegal  = api.WithPageSizeLegal
	WithDebounce       = api.WithDebounce
	WithZoom           = api.WithZoom
	WithLogger         = api.WithLogger
	WithSurface        = api.WithSurface
	WithOnPaint        = api.WithOnPaint
	WithTitle          = api.WithTitle
	WithAuthor         = api.WithAuthor
)

const (
	PageSizeA3Width  = api.PageSizeA3Width
	PageSizeA3Height = api.PageSizeA3Height
	PageSizeA4Width  = api.PageSizeA4Width
	PageSizeA4Height = api.PageSizeA4Height
	PageSizeA5Width  = api.PageSizeA5Width
	PageSizeA5Height = api.PageSizeA5Height

	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeLegalWidth   = api.PageSizeLegalWidth
	PageSizeLegalHeight  = api.PageSizeLegalHeight

	MinZoom  = api.MinZoom
	MaxZoom  = api.MaxZoom
	ZoomStep = api.ZoomStep
)
