package layout

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gompdf/folio/internal/content"
	"github.com/gompdf/folio/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) *content.Content {
	t.Helper()
	c, err := content.Parse([]byte(doc))
	require.NoError(t, err)
	return c
}

func TestHeight_ProfessionalTheme(t *testing.T) {
	th := theme.Default()
	assert.Equal(t, 60.0, Height(th, KindHeader))
	assert.Equal(t, 36.0, Height(th, KindSectionTitle))
	assert.Equal(t, 22.0, Height(th, KindCareerEntry))
	assert.Equal(t, 15.0, Height(th, KindDate))
	assert.Equal(t, 16.0, Height(th, KindBullet))
	assert.Equal(t, 22.0, Height(th, KindSubheading))
}

func TestNewGroup_HeightsAndOffsets(t *testing.T) {
	a := NewLeaf(KindCareerEntry, "Acme - Engineer", 22)
	b := NewLeaf(KindDate, "2020", 15)
	g := NewGroup(a, b)

	assert.Equal(t, 45.0, g.GetHeight())
	assert.Equal(t, 40.0, g.GetInkHeight())
	assert.Equal(t, 0.0, a.RelativeY)
	assert.Equal(t, 25.0, b.RelativeY)
	assert.Equal(t, KindGroup, g.Kind())

	empty := NewGroup()
	assert.Equal(t, 0.0, empty.GetHeight())
	assert.Equal(t, 0.0, empty.GetInkHeight())
}

func TestWalk_AbsoluteOffsets(t *testing.T) {
	g := NewGroup(NewLeaf(KindProjectTitle, "a", 22), NewLeaf(KindParagraph, "b", 24))
	g.SetPosition(100)

	var ys []float64
	Walk(g, func(_ *Leaf, y float64) { ys = append(ys, y) })
	assert.Equal(t, []float64{100, 125}, ys)

	l := NewLeaf(KindSectionTitle, "x", 36)
	l.SetPosition(7)
	Walk(l, func(leaf *Leaf, y float64) {
		assert.Equal(t, l, leaf)
		assert.Equal(t, 7.0, y)
	})
}

func TestSection_CareerTakesFirstThree(t *testing.T) {
	c := mustParse(t, `{"career": {"timeline": [
		{"company": "A", "role": "R1", "period": "2010"},
		{"company": "B", "role": "R2", "period": "2012"},
		{"company": "C", "role": "R3", "period": "2014"},
		{"company": "D", "role": "R4", "period": "2016"},
		{"company": "E", "role": "R5", "period": "2018"}
	]}}`)

	els := NewBuilder(theme.Default()).Section(c, content.SectionCareer)
	require.Len(t, els, 4)
	assert.Equal(t, KindSectionTitle, els[0].Kind())
	assert.Equal(t, "Career", els[0].(*Leaf).Text)

	for i, el := range els[1:] {
		g, ok := el.(*Group)
		require.True(t, ok)
		require.Len(t, g.Children, 2)
		assert.Equal(t, KindCareerEntry, g.Children[0].Kind())
		assert.Equal(t, KindDate, g.Children[1].Kind())
		assert.Equal(t, 45.0, g.GetHeight(), "group %d", i)
	}
	assert.Equal(t, "A - R1", els[1].(*Group).Children[0].Text)
	assert.Equal(t, "2014", els[3].(*Group).Children[1].Text)
}

func TestSection_ExpertiseLimits(t *testing.T) {
	c := mustParse(t, `{"expertise": {"categories": [
		{"title": "Lang", "items": ["Go", {"name": "Rust"}, "C", "C++", "Python"]},
		{"title": "Cloud", "items": []},
		{"title": "Data", "items": ["SQL"]},
		{"title": "Extra", "items": ["x"]}
	]}}`)

	els := NewBuilder(theme.Default()).Section(c, content.SectionExpertise)
	require.Len(t, els, 4)

	first := els[1].(*Group)
	require.Len(t, first.Children, 5)
	assert.Equal(t, KindSubheading, first.Children[0].Kind())
	assert.Equal(t, "Rust", first.Children[2].Text)
	assert.Equal(t, "C++", first.Children[4].Text)

	assert.Len(t, els[2].(*Group).Children, 1)
}

func TestSection_ProjectsAcrossSubLists(t *testing.T) {
	long := strings.Repeat("abcdefghij", 12)
	c := mustParse(t, `{"projects": {
		"openSource": [{"title": "OSS", "description": "last"}],
		"featured": [{"title": "F1", "description": "<b>bold</b> claim"}, {"title": "F2", "description": "`+long+`"}],
		"orthodontic": [{"title": "O1", "description": "aligners"}],
		"enterprise": [{"title": "E1", "description": "erp"}]
	}}`)

	els := NewBuilder(theme.Default()).Section(c, content.SectionProjects)
	require.Len(t, els, 5)

	titles := []string{}
	for _, el := range els[1:] {
		titles = append(titles, el.(*Group).Children[0].Text)
	}
	assert.Equal(t, []string{"F1", "F2", "O1", "E1"}, titles)

	assert.Equal(t, "bold claim", els[1].(*Group).Children[1].Text)

	truncated := els[2].(*Group).Children[1].Text
	assert.True(t, strings.HasSuffix(truncated, "..."))
	assert.Equal(t, 103, utf8.RuneCountInString(truncated))
}

func TestSection_TestimonialFeaturedOnly(t *testing.T) {
	quote := strings.Repeat("q", 200)
	c := mustParse(t, `{"testimonials": {
		"featured": {"quote": "`+quote+`", "author": "Sam", "role": "CTO"},
		"items": [{"quote": "other", "author": "Lee"}]
	}}`)

	els := NewBuilder(theme.Default()).Section(c, content.SectionTestimonials)
	require.Len(t, els, 2)
	g := els[1].(*Group)
	require.Len(t, g.Children, 2)
	assert.Equal(t, KindQuote, g.Children[0].Kind())
	assert.Equal(t, 153, utf8.RuneCountInString(g.Children[0].Text))
	assert.Equal(t, "— Sam, CTO", g.Children[1].Text)

	noFeatured := mustParse(t, `{"testimonials": {"items": []}}`)
	els = NewBuilder(theme.Default()).Section(noFeatured, content.SectionTestimonials)
	require.Len(t, els, 1)
	assert.Equal(t, KindSectionTitle, els[0].Kind())
}

func TestSection_EmptyVersusMissing(t *testing.T) {
	c := mustParse(t, `{"career": {}, "projects": {"featured": "broken"}}`)
	b := NewBuilder(theme.Default())

	els := b.Section(c, content.SectionCareer)
	require.Len(t, els, 1)
	assert.Equal(t, KindSectionTitle, els[0].Kind())

	assert.Empty(t, b.Section(c, content.SectionExpertise))
	assert.Empty(t, b.Section(c, content.SectionProjects))
	assert.Empty(t, b.Section(nil, content.SectionCareer))
}

func TestHeader(t *testing.T) {
	b := NewBuilder(theme.Default())
	assert.Equal(t, "Portfolio", b.Header(nil).Text)
	assert.Equal(t, "Dana", b.Header(&content.Content{Name: "Dana"}).Text)
	assert.Equal(t, "Dana - Engineer", b.Header(&content.Content{Name: "Dana", Title: "Engineer"}).Text)
	assert.Equal(t, HeaderHeight, b.Header(nil).Height)
}

func TestTruncate(t *testing.T) {
	exact := strings.Repeat("x", 100)
	assert.Equal(t, exact, Truncate(exact, 100))

	over := strings.Repeat("x", 101)
	got := Truncate(over, 100)
	assert.Equal(t, exact+"...", got)

	assert.Equal(t, "ééé...", Truncate("éééé", 3))
	assert.Equal(t, "", Truncate("", 10))
}
