package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/folio/internal/layout"
	"github.com/gompdf/folio/internal/pagination"
	"github.com/gompdf/folio/internal/render"
	"github.com/gompdf/folio/internal/theme"
)

func TestSurface_FillAndLine(t *testing.T) {
	s := New(20, 10)
	defer s.Close()

	w, h := s.Size()
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 10.0, h)

	s.Fill("#FFFFFF")
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, s.Image().RGBAAt(3, 3))

	s.SetColor("#FF0000")
	s.Line(0, 5, 19, 5)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.Image().RGBAAt(10, 5))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, s.Image().RGBAAt(10, 6))

	s.SetColor("not a color")
	s.Line(0, 0, 0, 0)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.Image().RGBAAt(0, 0))
}

func TestSurface_TextInk(t *testing.T) {
	s := New(200, 60)
	defer s.Close()
	s.Fill("#FFFFFF")
	s.SetFont("Helvetica", true, 24)
	s.SetColor("#000000")
	s.Text(10, 40, "Folio")

	assert.Greater(t, s.StringWidth("Folio"), 0.0)

	inked := 0
	b := s.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if s.Image().RGBAAt(x, y).R < 128 {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 0)
}

func TestSurface_FontSizeScalesWidth(t *testing.T) {
	s := New(10, 10)
	defer s.Close()
	s.SetFont("", false, 10)
	small := s.StringWidth("preview")
	s.SetFont("", false, 20)
	large := s.StringWidth("preview")
	assert.Greater(t, large, small)
}

func TestSurface_SharesParsedFonts(t *testing.T) {
	a, b := New(10, 10), New(10, 10)
	defer a.Close()
	defer b.Close()
	require.NotNil(t, a.regular)
	require.NotNil(t, a.bold)
	assert.Same(t, a.regular, b.regular)
	assert.Same(t, a.bold, b.bold)

	// closing one surface leaves the shared fonts usable by the other
	a.SetFont("", true, 12)
	require.NoError(t, a.Close())
	b.SetFont("", true, 12)
	assert.Greater(t, b.StringWidth("ok"), 0.0)
}

func TestSurface_PaintAndEncode(t *testing.T) {
	th := theme.Default()
	leaf := layout.NewLeaf(layout.KindSectionTitle, "Career", 36)
	page := &pagination.Page{Number: 1, Elements: []layout.Element{leaf}}

	s := New(595, 842)
	defer s.Close()
	render.NewPainter(th, pagination.PageSizeA4).Paint(s, page)

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 595, img.Bounds().Dx())
	assert.Equal(t, 842, img.Bounds().Dy())
}
