// Package raster implements a bitmap preview surface.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gompdf/folio/internal/render"
	"github.com/gompdf/folio/internal/theme"
)

// goFonts parses the embedded Go fonts once per process. Parsed fonts are
// shared by every surface; each face keeps its own buffers.
var goFonts = sync.OnceValues(func() (regular, bold *opentype.Font) {
	regular, _ = opentype.Parse(goregular.TTF)
	bold, _ = opentype.Parse(gobold.TTF)
	return regular, bold
})

type faceKey struct {
	bold bool
	size float64
}

// Surface draws onto an RGBA image, one pixel per device unit
type Surface struct {
	img   *image.RGBA
	color color.RGBA
	face  font.Face
	faces map[faceKey]font.Face

	regular *opentype.Font
	bold    *opentype.Font
}

// New creates a surface of w by h pixels
func New(w, h int) *Surface {
	s := &Surface{
		img:   image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1))),
		color: color.RGBA{A: 0xff},
		face:  basicfont.Face7x13,
		faces: make(map[faceKey]font.Face),
	}
	// Without parsed fonts the surface keeps the fixed bitmap face.
	s.regular, s.bold = goFonts()
	return s
}

// Image returns the painted image
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Size returns the surface size in pixels
func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Fill implements render.Surface
func (s *Surface) Fill(hex string) {
	c, ok := parse(hex)
	if !ok {
		c = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// SetFont implements render.Surface. Every family maps to the Go fonts.
func (s *Surface) SetFont(_ string, bold bool, size float64) {
	key := faceKey{bold: bold, size: math.Round(size*4) / 4}
	if f, ok := s.faces[key]; ok {
		s.face = f
		return
	}
	src := s.regular
	if bold {
		src = s.bold
	}
	if src == nil || key.size <= 0 {
		s.face = basicfont.Face7x13
		return
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		s.face = basicfont.Face7x13
		return
	}
	s.faces[key] = f
	s.face = f
}

// SetColor implements render.Surface. Unparseable colors leave the current one.
func (s *Surface) SetColor(hex string) {
	if c, ok := parse(hex); ok {
		s.color = c
	}
}

// Text implements render.Surface
func (s *Surface) Text(x, y float64, str string) {
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(s.color),
		Face: s.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(str)
}

// StringWidth returns the advance of str in the current face
func (s *Surface) StringWidth(str string) float64 {
	return float64(font.MeasureString(s.face, str)) / 64
}

// Line implements render.Surface
func (s *Surface) Line(x1, y1, x2, y2 float64) {
	dx, dy := x2-x1, y2-y1
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		s.img.SetRGBA(int(x1), int(y1), s.color)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.img.SetRGBA(int(math.Round(x1+dx*t)), int(math.Round(y1+dy*t)), s.color)
	}
}

// Close releases the cached font faces
func (s *Surface) Close() error {
	for k, f := range s.faces {
		f.Close()
		delete(s.faces, k)
	}
	s.face = basicfont.Face7x13
	return nil
}

// EncodePNG writes the image as PNG
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return &render.RenderError{Message: "failed to encode preview image", Cause: err}
	}
	return nil
}

func parse(hex string) (color.RGBA, bool) {
	r, g, b, ok := theme.ParseColor(hex)
	if !ok {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, true
}
