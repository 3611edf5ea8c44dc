package pagination

import (
	"fmt"
	"strings"

	"github.com/gompdf/folio/internal/content"
	"github.com/gompdf/folio/internal/layout"
	"github.com/gompdf/folio/internal/sections"
	"github.com/gompdf/folio/internal/theme"
)

// Options represents options for the pagination engine
type Options struct {
	PageSize PageSize
}

// Engine builds elements for the selected sections and paginates them
type Engine struct {
	options Options
}

// NewEngine creates a new pagination engine
func NewEngine() *Engine {
	return &Engine{
		options: Options{
			PageSize: PageSizeA4,
		},
	}
}

// SetOptions sets the options for the pagination engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Options returns the options of the engine
func (e *Engine) Options() Options {
	return e.options
}

// Layout lays out c with theme t. The result depends only on its arguments.
func (e *Engine) Layout(c *content.Content, t theme.Theme, sel sections.Selection) []*Page {
	builder := layout.NewBuilder(t)

	var secs []Section
	for _, id := range sel.Order {
		secs = append(secs, Section{ID: id, Elements: builder.Section(c, id)})
	}

	paginator := NewPaginator(e.options.PageSize, MarginsFromTheme(t))
	paginator.Header = builder.Header(c)
	paginator.Empty = builder.Empty(layout.EmptyText)

	return paginator.Paginate(secs, sel.PageBreakBetweenSections)
}

// MarginsFromTheme returns the page margins of t
func MarginsFromTheme(t theme.Theme) Margins {
	m := t.Spacing.Page
	return Margins{
		Top:    m.MarginTop,
		Right:  m.MarginRight,
		Bottom: m.MarginBottom,
		Left:   m.MarginLeft,
	}
}

var pageSizes = map[string]PageSize{
	"a3":     PageSizeA3,
	"a4":     PageSizeA4,
	"a5":     PageSizeA5,
	"letter": PageSizeLetter,
	"legal":  PageSizeLegal,
}

// PageSizeByName looks up a standard page size, ignoring case
func PageSizeByName(name string) (PageSize, error) {
	if name == "" {
		return PageSizeA4, nil
	}
	ps, ok := pageSizes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return PageSize{}, fmt.Errorf("unknown page size %q", name)
	}
	return ps, nil
}
