package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/folio/internal/content"
	"github.com/gompdf/folio/internal/pagination"
	"github.com/gompdf/folio/internal/sections"
	"github.com/gompdf/folio/internal/theme"
)

func samplePages(t *testing.T, pageBreak bool) []*pagination.Page {
	t.Helper()
	c, err := content.Parse([]byte(`{
		"name": "Dana",
		"career": {"timeline": [{"company": "Acme", "role": "Engineer", "period": "2020"}]},
		"testimonials": {"featured": {"quote": "Great <em>work</em>", "author": "Sam", "role": "CTO"}}
	}`))
	require.NoError(t, err)
	sel := sections.DefaultSelection()
	sel.PageBreakBetweenSections = pageBreak
	return pagination.NewEngine().Layout(c, theme.Default(), sel)
}

func TestCoreFont(t *testing.T) {
	assert.Equal(t, "Helvetica", CoreFont("Arial, sans-serif"))
	assert.Equal(t, "Helvetica", CoreFont(""))
	assert.Equal(t, "Times", CoreFont("'Times New Roman', serif"))
	assert.Equal(t, "Courier", CoreFont("monospace"))
}

func TestMeasurer(t *testing.T) {
	m := NewMeasurer("Helvetica")
	w10 := m.Width("portfolio", 10)
	w20 := m.Width("portfolio", 20)
	assert.Greater(t, w10, 0.0)
	assert.InDelta(t, w10*2, w20, 1e-6)
	assert.Equal(t, 0.0, m.Width("", 10))
}

func TestRenderer_WritePDF(t *testing.T) {
	pages := samplePages(t, true)
	require.Len(t, pages, 2)

	var buf bytes.Buffer
	r := NewRenderer(theme.Default(), pagination.PageSizeA4)
	require.NoError(t, r.Write(pages, &buf, RenderOptions{Title: "Dana"}))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRenderer_RenderCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preview.pdf")
	r := &Renderer{Theme: theme.Default(), PageSize: pagination.PageSizeLetter}
	require.NoError(t, r.Render(samplePages(t, false), path, RenderOptions{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
