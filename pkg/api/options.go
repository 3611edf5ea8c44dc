package api

import (
	"time"

	"go.uber.org/zap"

	"github.com/gompdf/folio/internal/render"
	"github.com/gompdf/folio/internal/render/raster"
)

// Surface is the drawing target a Previewer paints onto
type Surface = render.Surface

// SurfaceFactory creates a surface of the given device size. It is called
// whenever the preview is painted, so the surface always matches the zoomed
// page size.
type SurfaceFactory func(width, height float64) Surface

// Options represents configuration options for the preview
type Options struct {
	// Page dimensions in points
	PageWidth  float64
	PageHeight float64

	// Debounce delays layout after Update. Zero lays out synchronously.
	Debounce time.Duration
	// Zoom is the initial zoom factor
	Zoom float64

	Logger     *zap.Logger
	NewSurface SurfaceFactory
	// OnPaint is called after every paint with the painted surface and the
	// 1-based page index. It runs with the Previewer locked and must not
	// call back into it.
	OnPaint func(s Surface, page int)

	// Document metadata for exports
	Title  string
	Author string
}

// Option is a function that modifies Options
type Option func(*Options)

// Zoom limits and step
const (
	MinZoom  = 0.5
	MaxZoom  = 2.0
	ZoomStep = 0.25
)

// DefaultDebounce is the default delay between Update and layout
const DefaultDebounce = 150 * time.Millisecond

// Standard page sizes in points (1/72 inch)
const (
	PageSizeA3Width  = 842
	PageSizeA3Height = 1191
	PageSizeA4Width  = 595
	PageSizeA4Height = 842
	PageSizeA5Width  = 420
	PageSizeA5Height = 595

	// US Letter and Legal
	PageSizeLetterWidth  = 612
	PageSizeLetterHeight = 792
	PageSizeLegalWidth   = 612
	PageSizeLegalHeight  = 1008
)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		PageWidth:  PageSizeA4Width,
		PageHeight: PageSizeA4Height,
		Debounce:   DefaultDebounce,
		Zoom:       1,
		Logger:     zap.NewNop(),
		NewSurface: RasterSurface,
	}
}

// RasterSurface is the default SurfaceFactory backed by an RGBA image
func RasterSurface(width, height float64) Surface {
	return raster.New(int(width+0.5), int(height+0.5))
}

// WithPageSize sets the page size
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight)
}

// WithDebounce sets the update debounce delay
func WithDebounce(d time.Duration) Option {
	return func(o *Options) {
		o.Debounce = d
	}
}

// WithZoom sets the initial zoom, clamped to [MinZoom, MaxZoom]
func WithZoom(zoom float64) Option {
	return func(o *Options) {
		o.Zoom = clampZoom(zoom)
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithSurface sets the surface factory
func WithSurface(factory SurfaceFactory) Option {
	return func(o *Options) {
		o.NewSurface = factory
	}
}

// WithOnPaint sets the paint callback
func WithOnPaint(fn func(s Surface, page int)) Option {
	return func(o *Options) {
		o.OnPaint = fn
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

func clampZoom(z float64) float64 {
	return min(max(z, MinZoom), MaxZoom)
}
