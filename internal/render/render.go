// Package render paints paginated preview pages onto a drawing surface.
package render

import (
	"fmt"

	"github.com/gompdf/folio/internal/layout"
	"github.com/gompdf/folio/internal/pagination"
	"github.com/gompdf/folio/internal/text"
	"github.com/gompdf/folio/internal/theme"
)

// BulletPrefix is drawn before every bullet item
const BulletPrefix = "• "

// Surface is a 2-D drawing target measured in device units
type Surface interface {
	// Fill paints the whole surface with a #RRGGBB color
	Fill(color string)
	SetFont(family string, bold bool, size float64)
	SetColor(color string)
	// Text draws s with its baseline at y
	Text(x, y float64, s string)
	Line(x1, y1, x2, y2 float64)
}

// RenderError reports a failure to produce preview output
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Painter draws pages laid out for Theme onto surfaces
type Painter struct {
	Theme    theme.Theme
	PageSize pagination.PageSize
	Zoom     float64
	// Measurer wraps paragraphs and quotes. Nil uses text.ApproxMeasurer.
	Measurer text.Measurer
}

// NewPainter creates a painter at zoom 1
func NewPainter(t theme.Theme, size pagination.PageSize) *Painter {
	return &Painter{Theme: t, PageSize: size, Zoom: 1}
}

// PlaceholderPage is a single page holding one empty element with msg
func PlaceholderPage(msg string) *pagination.Page {
	leaf := layout.NewLeaf(layout.KindEmpty, msg, layout.Height(theme.Default(), layout.KindEmpty))
	return &pagination.Page{
		Number:   1,
		Elements: []layout.Element{leaf},
		CurrentY: leaf.Height,
	}
}

// ContentWidth is the width available between the side margins, in points
func (p *Painter) ContentWidth() float64 {
	m := p.Theme.Spacing.Page
	return p.PageSize.Width - m.MarginLeft - m.MarginRight
}

// Paint draws page onto s. A nil page paints only the background.
func (p *Painter) Paint(s Surface, page *pagination.Page) {
	bg := p.Theme.Colors.Background.Page
	if bg == "" {
		bg = "#FFFFFF"
	}
	s.Fill(bg)
	if page == nil {
		return
	}
	for _, el := range page.Elements {
		layout.Walk(el, func(leaf *layout.Leaf, y float64) {
			p.paintLeaf(s, leaf, y)
		})
	}
}

type leafStyle struct {
	color string
	bold  bool
	wrap  bool
}

func (p *Painter) style(kind layout.Kind) leafStyle {
	c := p.Theme.Colors
	switch kind {
	case layout.KindHeader, layout.KindSectionTitle:
		return leafStyle{color: c.Primary, bold: true}
	case layout.KindSubheading, layout.KindProjectTitle, layout.KindCareerEntry:
		return leafStyle{color: c.Text.Primary, bold: true}
	case layout.KindParagraph, layout.KindQuote:
		return leafStyle{color: c.Text.Secondary, wrap: true}
	case layout.KindDate, layout.KindAttribution, layout.KindEmpty:
		return leafStyle{color: c.Text.Muted}
	default:
		return leafStyle{color: c.Text.Secondary}
	}
}

// paintLeaf draws leaf whose top is y points below the content top
func (p *Painter) paintLeaf(s Surface, leaf *layout.Leaf, y float64) {
	size := layout.FontSize(p.Theme, leaf.ElementKind)
	if leaf.ElementKind == layout.KindEmpty && size <= 0 {
		size = layout.FontSize(theme.Default(), layout.KindEmpty)
	}
	if size <= 0 {
		return
	}

	zoom := p.zoom()
	m := p.Theme.Spacing.Page
	x := m.MarginLeft
	top := m.MarginTop + y
	st := p.style(leaf.ElementKind)

	s.SetFont(p.Theme.Typography.FontFamily.Primary, st.bold, size*zoom)
	s.SetColor(st.color)

	content := leaf.Text
	if leaf.ElementKind == layout.KindBullet {
		content = BulletPrefix + content
	}

	shaper := text.NewTextShaper(p.Measurer)
	font := &text.Font{Size: size, LineHeight: p.Theme.Typography.LineHeight}
	lines := []string{content}
	if st.wrap {
		lines = shaper.SplitTextToLines(content, font, p.ContentWidth())
	}
	advance := shaper.LineAdvance(font)
	for i, line := range lines {
		baseline := top + size + float64(i)*advance
		s.Text(x*zoom, baseline*zoom, line)
	}

	if leaf.ElementKind == layout.KindSectionTitle {
		underline := top + size + 4
		s.SetColor(p.Theme.Colors.Border)
		s.Line(x*zoom, underline*zoom, (x+p.ContentWidth())*zoom, underline*zoom)
	}
}

func (p *Painter) zoom() float64 {
	if p.Zoom <= 0 {
		return 1
	}
	return p.Zoom
}

