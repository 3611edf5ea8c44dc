package layout

import (
	"fmt"
	"unicode/utf8"

	"github.com/gompdf/folio/internal/content"
	"github.com/gompdf/folio/internal/parser/html"
	"github.com/gompdf/folio/internal/theme"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Per-section limits on how much content a document shows
const (
	MaxExpertiseCategories = 3
	MaxExpertiseItems      = 4
	MaxProjects            = 4
	MaxCareerEntries       = 3

	ProjectDescriptionLimit = 100
	QuoteLimit              = 150
)

// EmptyText is shown when no section produced any element
const EmptyText = "No content selected. Choose at least one section with data to preview."

// Builder turns content records into elements with estimated heights
type Builder struct {
	Theme theme.Theme
	title cases.Caser
}

// NewBuilder creates a builder for t
func NewBuilder(t theme.Theme) *Builder {
	return &Builder{
		Theme: t,
		title: cases.Title(language.English),
	}
}

// Header returns the document title element
func (b *Builder) Header(c *content.Content) *Leaf {
	text := "Portfolio"
	if c != nil {
		switch {
		case c.Name != "" && c.Title != "":
			text = c.Name + " - " + c.Title
		case c.Name != "":
			text = c.Name
		case c.Title != "":
			text = c.Title
		}
	}
	return b.leaf(KindHeader, text)
}

// Empty returns the placeholder element
func (b *Builder) Empty(text string) *Leaf {
	return b.leaf(KindEmpty, text)
}

// SectionTitle returns the display heading for a section
func (b *Builder) SectionTitle(id content.SectionID) string {
	return b.title.String(string(id))
}

// Section builds the elements for one section. A section missing from c
// produces nothing; a present but empty one produces only its title.
func (b *Builder) Section(c *content.Content, id content.SectionID) []Element {
	if !c.Has(id) {
		return nil
	}

	elements := []Element{b.leaf(KindSectionTitle, b.SectionTitle(id))}
	switch id {
	case content.SectionExpertise:
		elements = append(elements, b.expertise(c.Expertise)...)
	case content.SectionProjects:
		elements = append(elements, b.projects(c.Projects)...)
	case content.SectionCareer:
		elements = append(elements, b.career(c.Career)...)
	case content.SectionTestimonials:
		elements = append(elements, b.testimonials(c.Testimonials)...)
	}
	return elements
}

func (b *Builder) expertise(e *content.Expertise) []Element {
	var out []Element
	for _, cat := range head(e.Categories, MaxExpertiseCategories) {
		children := []*Leaf{b.leaf(KindSubheading, cat.Title)}
		for _, item := range head(cat.Items, MaxExpertiseItems) {
			children = append(children, b.leaf(KindBullet, item.Text()))
		}
		out = append(out, NewGroup(children...))
	}
	return out
}

func (b *Builder) projects(p *content.Projects) []Element {
	var out []Element
	for _, proj := range head(p.All(), MaxProjects) {
		desc := Truncate(html.StripHTML(proj.Description), ProjectDescriptionLimit)
		out = append(out, NewGroup(
			b.leaf(KindProjectTitle, proj.Title),
			b.leaf(KindParagraph, desc),
		))
	}
	return out
}

func (b *Builder) career(c *content.Career) []Element {
	var out []Element
	for _, entry := range head(c.Timeline, MaxCareerEntries) {
		out = append(out, NewGroup(
			b.leaf(KindCareerEntry, fmt.Sprintf("%s - %s", entry.Company, entry.Role)),
			b.leaf(KindDate, entry.Period),
		))
	}
	return out
}

func (b *Builder) testimonials(t *content.Testimonials) []Element {
	f := t.Featured
	if f == nil {
		return nil
	}
	quote := Truncate(html.StripHTML(f.Quote), QuoteLimit)
	return []Element{NewGroup(
		b.leaf(KindQuote, quote),
		b.leaf(KindAttribution, fmt.Sprintf("— %s, %s", f.Author, f.Role)),
	)}
}

func (b *Builder) leaf(kind Kind, text string) *Leaf {
	return NewLeaf(kind, text, Height(b.Theme, kind))
}

// Truncate shortens s to limit runes and appends "..." when anything was cut
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
