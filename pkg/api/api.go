package api

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gompdf/folio/internal/content"
	"github.com/gompdf/folio/internal/pagination"
	"github.com/gompdf/folio/internal/render"
	"github.com/gompdf/folio/internal/render/pdf"
	"github.com/gompdf/folio/internal/render/raster"
	"github.com/gompdf/folio/internal/sections"
	"github.com/gompdf/folio/internal/theme"
)

type (
	Content   = content.Content
	Theme     = theme.Theme
	SectionID = content.SectionID
	Page      = pagination.Page
)

// LoadingText is shown while theme or content is missing
const LoadingText = "Loading preview..."

// UpdateOptions carries the per-update layout flags
type UpdateOptions struct {
	PageBreakBetweenSections bool
}

type request struct {
	content *content.Content
	theme   *theme.Theme
	order   []content.SectionID
	opts    UpdateOptions
}

// Previewer keeps the paginated preview of a portfolio document and paints
// the selected page. Update is debounced; every other method acts at once.
// A Previewer is safe for concurrent use.
type Previewer struct {
	mu      sync.Mutex
	options Options
	logger  *zap.Logger
	engine  *pagination.Engine

	timer   *time.Timer
	pending *request
	seq     uint64

	theme   *theme.Theme
	pages   []*pagination.Page
	current int
	zoom    float64
	surface Surface

	destroyed bool
}

// New creates a new Previewer with default options modified by opts
func New(opts ...Option) *Previewer {
	options := DefaultOptions()
	for _, o := range opts {
		o(&options)
	}
	return NewWithOptions(options)
}

// NewWithOptions creates a new Previewer with the specified options
func NewWithOptions(options Options) *Previewer {
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.NewSurface == nil {
		options.NewSurface = RasterSurface
	}
	if options.PageWidth <= 0 || options.PageHeight <= 0 {
		options.PageWidth, options.PageHeight = PageSizeA4Width, PageSizeA4Height
	}
	if options.Zoom == 0 {
		options.Zoom = 1
	}

	engine := pagination.NewEngine()
	engine.SetOptions(pagination.Options{PageSize: pagination.PageSize{
		Width:  options.PageWidth,
		Height: options.PageHeight,
		Name:   "Custom",
	}})

	return &Previewer{
		options: options,
		logger:  options.Logger,
		engine:  engine,
		pages:   []*pagination.Page{render.PlaceholderPage(LoadingText)},
		current: 1,
		zoom:    clampZoom(options.Zoom),
	}
}

// Update schedules a layout of c with theme t over the sections in order.
// Calls within the debounce window collapse into one layout using the
// latest arguments. After layout the current page is clamped and repainted.
func (p *Previewer) Update(c *Content, t *Theme, order []SectionID, opts UpdateOptions) {
	req := &request{
		content: c,
		theme:   t,
		order:   append([]content.SectionID(nil), order...),
		opts:    opts,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed {
		return
	}
	if p.options.Debounce <= 0 {
		p.apply(req)
		return
	}

	if p.timer != nil {
		p.timer.Stop()
		p.logger.Debug("collapsing pending preview update")
	}
	p.seq++
	seq := p.seq
	p.pending = req
	p.timer = time.AfterFunc(p.options.Debounce, func() { p.fire(seq) })
}

func (p *Previewer) fire(seq uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed || seq != p.seq || p.pending == nil {
		return
	}
	req := p.pending
	p.pending = nil
	p.timer = nil
	p.apply(req)
}

// Flush runs a pending update immediately
func (p *Previewer) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed || p.pending == nil {
		return
	}
	p.timer.Stop()
	p.timer = nil
	req := p.pending
	p.pending = nil
	p.apply(req)
}

// apply lays out req and repaints. Callers hold p.mu.
func (p *Previewer) apply(req *request) {
	start := time.Now()
	if req.content == nil || req.theme == nil {
		p.theme = nil
		p.pages = []*pagination.Page{render.PlaceholderPage(LoadingText)}
	} else {
		th := *req.theme
		p.theme = &th
		for _, problem := range req.content.Problems {
			p.logger.Warn("skipping malformed section",
				zap.String("section", string(problem.Section)),
				zap.Error(problem.Cause))
		}
		sel := sections.Selection{
			Order:                    p.order(req.order),
			PageBreakBetweenSections: req.opts.PageBreakBetweenSections,
		}
		p.pages = p.engine.Layout(req.content, th, sel)
	}

	p.current = min(max(p.current, 1), len(p.pages))
	p.logger.Debug("preview laid out",
		zap.Int("pages", len(p.pages)),
		zap.Int("current", p.current),
		zap.Duration("took", time.Since(start)))

	if err := p.paint(); err != nil {
		p.logger.Error("failed to paint preview", zap.Error(err))
	}
}

// order drops unknown and repeated section ids
func (p *Previewer) order(ids []content.SectionID) []content.SectionID {
	out := make([]content.SectionID, 0, len(ids))
	seen := make(map[content.SectionID]bool, len(ids))
	for _, id := range ids {
		if !id.Valid() || seen[id] {
			p.logger.Warn("ignoring section", zap.String("section", string(id)))
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func (p *Previewer) paint() error {
	if p.destroyed {
		return nil
	}
	size := p.pageSize()
	surface := p.options.NewSurface(size.Width*p.zoom, size.Height*p.zoom)
	if surface == nil {
		return &render.RenderError{Message: "surface factory returned no surface"}
	}
	p.closeSurface()

	painter := render.NewPainter(p.themeOrDefault(), size)
	painter.Zoom = p.zoom
	painter.Paint(surface, p.pages[p.current-1])
	p.surface = surface
	if p.options.OnPaint != nil {
		p.options.OnPaint(surface, p.current)
	}
	return nil
}

func (p *Previewer) closeSurface() {
	if c, ok := p.surface.(io.Closer); ok {
		if err := c.Close(); err != nil {
			p.logger.Debug("failed to close surface", zap.Error(err))
		}
	}
	p.surface = nil
}

func (p *Previewer) pageSize() pagination.PageSize {
	return p.engine.Options().PageSize
}

func (p *Previewer) themeOrDefault() theme.Theme {
	if p.theme == nil {
		return theme.Default()
	}
	return *p.theme
}

// Render repaints the current page at the current zoom
func (p *Previewer) Render() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paint()
}

// NextPage selects the next page, if any
func (p *Previewer) NextPage() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed || p.current >= len(p.pages) {
		return
	}
	p.current++
	p.repaint()
}

// PrevPage selects the previous page, if any
func (p *Previewer) PrevPage() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed || p.current <= 1 {
		return
	}
	p.current--
	p.repaint()
}

// ZoomIn increases the zoom by one step up to MaxZoom
func (p *Previewer) ZoomIn() {
	p.stepZoom(ZoomStep)
}

// ZoomOut decreases the zoom by one step down to MinZoom
func (p *Previewer) ZoomOut() {
	p.stepZoom(-ZoomStep)
}

func (p *Previewer) stepZoom(delta float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	z := clampZoom(p.zoom + delta)
	if p.destroyed || z == p.zoom {
		return
	}
	p.zoom = z
	p.repaint()
}

func (p *Previewer) repaint() {
	if err := p.paint(); err != nil {
		p.logger.Error("failed to paint preview", zap.Error(err))
	}
}

// Destroy cancels a pending update and releases the surface. Later calls on
// the Previewer do nothing.
func (p *Previewer) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed {
		return
	}
	p.destroyed = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.pending = nil
	p.closeSurface()
}

// Pages returns the current page list
func (p *Previewer) Pages() []*Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*pagination.Page(nil), p.pages...)
}

// CurrentPage returns the 1-based index of the selected page
func (p *Previewer) CurrentPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// TotalPages returns the number of pages
func (p *Previewer) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pages)
}

// Zoom returns the zoom factor
func (p *Previewer) Zoom() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.zoom
}

// Surface returns the surface of the last paint, nil before the first paint
// and after Destroy
func (p *Previewer) Surface() Surface {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.surface
}

// ExportPDF writes every page to w as a PDF document
func (p *Previewer) ExportPDF(w io.Writer) error {
	p.mu.Lock()
	pages := append([]*pagination.Page(nil), p.pages...)
	renderer := pdf.NewRenderer(p.themeOrDefault(), p.pageSize())
	p.mu.Unlock()

	renderer.Logger = p.logger
	err := renderer.Write(pages, w, pdf.RenderOptions{
		Title:    p.options.Title,
		Author:   p.options.Author,
		Creator:  "folio",
		Producer: "folio",
	})
	if err != nil {
		return fmt.Errorf("failed to export PDF: %w", err)
	}
	return nil
}

// ExportPNG paints every page at the current zoom into dir as page-NN.png and
// returns the written paths in page order
func (p *Previewer) ExportPNG(ctx context.Context, dir string) ([]string, error) {
	p.mu.Lock()
	pages := append([]*pagination.Page(nil), p.pages...)
	painter := render.NewPainter(p.themeOrDefault(), p.pageSize())
	painter.Zoom = p.zoom
	p.mu.Unlock()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, page := range pages {
		path := filepath.Join(dir, fmt.Sprintf("page-%02d.png", page.Number))
		paths[i] = path
		page := page
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			size := painter.PageSize
			surface := raster.New(int(size.Width*painter.Zoom+0.5), int(size.Height*painter.Zoom+0.5))
			defer surface.Close()
			painter.Paint(surface, page)
			return writePNG(path, surface)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	p.logger.Info("exported preview pages", zap.Int("pages", len(paths)), zap.String("dir", dir))
	return paths, nil
}

func writePNG(path string, s *raster.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := s.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
