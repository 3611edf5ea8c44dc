package pagination

import (
	"github.com/gompdf/folio/internal/content"
	"github.com/gompdf/folio/internal/layout"
)

// ElementSpacing separates consecutive top-level elements on a page
const ElementSpacing = 5.0

// Page represents a single page of the preview
type Page struct {
	Number   int
	Elements []layout.Element
	// CurrentY is the space consumed so far, in points from the content top
	CurrentY float64
}

// PageSize represents a page size in points
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in points (1/72 inch). A4 is rounded to whole points
// the same way the document exporters round it.
var (
	PageSizeA4     = PageSize{Width: 595, Height: 842, Name: "A4"}
	PageSizeLetter = PageSize{Width: 612, Height: 792, Name: "Letter"}
	PageSizeLegal  = PageSize{Width: 612, Height: 1008, Name: "Legal"}
	PageSizeA3     = PageSize{Width: 842, Height: 1191, Name: "A3"}
	PageSizeA5     = PageSize{Width: 420, Height: 595, Name: "A5"}
)

// Margins represents page margins
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Section is the element list of one included section
type Section struct {
	ID       content.SectionID
	Elements []layout.Element
}

// Paginator flows elements onto fixed-size pages
type Paginator struct {
	PageSize PageSize
	Margins  Margins
	// Header is placed first on the first page only. Nil means no header.
	Header layout.Element
	// Empty is the placeholder used when no section produced elements
	Empty layout.Element
}

// NewPaginator creates a new paginator
func NewPaginator(pageSize PageSize, margins Margins) *Paginator {
	return &Paginator{
		PageSize: pageSize,
		Margins:  margins,
	}
}

// ContentHeight is the vertical space available between the margins
func (p *Paginator) ContentHeight() float64 {
	return p.PageSize.Height - p.Margins.Top - p.Margins.Bottom
}

// ContentWidth is the horizontal space available between the margins
func (p *Paginator) ContentWidth() float64 {
	return p.PageSize.Width - p.Margins.Left - p.Margins.Right
}

// Paginate assigns every element to a page and a y offset. Sections are laid
// out in the given order; with pageBreak set each section after the first
// starts on a fresh page. Groups are never split: an element that does not fit
// moves to a new page, and one that would not fit even there is placed at the
// top of the fresh page anyway.
func (p *Paginator) Paginate(sections []Section, pageBreak bool) []*Page {
	limit := p.ContentHeight()

	var pages []*Page
	current := &Page{Number: 1}

	flush := func() {
		if len(current.Elements) == 0 {
			return
		}
		pages = append(pages, current)
		current = &Page{Number: len(pages) + 1}
	}

	if p.Header != nil {
		p.Header.SetPosition(0)
		current.Elements = append(current.Elements, p.Header)
		current.CurrentY = p.Header.GetHeight()
	}

	placed := 0
	included := 0
	for _, section := range sections {
		if len(section.Elements) == 0 {
			continue
		}
		if pageBreak && included > 0 {
			flush()
		}
		included++

		for _, el := range section.Elements {
			if current.CurrentY+el.GetInkHeight() > limit && len(current.Elements) > 0 {
				flush()
			}
			el.SetPosition(current.CurrentY)
			current.Elements = append(current.Elements, el)
			current.CurrentY += el.GetHeight() + ElementSpacing
			placed++
		}
	}

	if placed == 0 {
		empty := p.Empty
		if empty == nil {
			empty = layout.NewLeaf(layout.KindEmpty, layout.EmptyText, 0)
		}
		empty.SetPosition(0)
		return []*Page{{
			Number:   1,
			Elements: []layout.Element{empty},
			CurrentY: empty.GetHeight(),
		}}
	}

	flush()
	return pages
}
