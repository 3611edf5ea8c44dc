package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/gompdf/folio/internal/pagination"
	"github.com/gompdf/folio/internal/render"
	"github.com/gompdf/folio/internal/theme"
)

// RenderOptions contains options for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// Document is a PDF surface. Each AddPage starts a new page that subsequent
// drawing calls target.
type Document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewDocument creates an empty document in points
func NewDocument(options RenderOptions) *Document {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(options.Title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetKeywords(options.Keywords, true)
	pdf.SetCreator(options.Creator, true)
	pdf.SetProducer(options.Producer, true)
	pdf.SetFont("Helvetica", "", 12)

	return &Document{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// AddPage starts a page of the given size
func (d *Document) AddPage(size pagination.PageSize) {
	orient := "P"
	if size.Width > size.Height {
		orient = "L"
	}
	d.pdf.AddPageFormat(orient, fpdf.SizeType{Wd: size.Width, Ht: size.Height})
}

// Size returns the size of the current page
func (d *Document) Size() (float64, float64) {
	return d.pdf.GetPageSize()
}

// Fill implements render.Surface
func (d *Document) Fill(hex string) {
	r, g, b, ok := theme.ParseColor(hex)
	if !ok {
		r, g, b = 255, 255, 255
	}
	w, h := d.pdf.GetPageSize()
	d.pdf.SetFillColor(r, g, b)
	d.pdf.Rect(0, 0, w, h, "F")
}

// SetFont implements render.Surface using the PDF core fonts
func (d *Document) SetFont(family string, bold bool, size float64) {
	style := ""
	if bold {
		style = "B"
	}
	d.pdf.SetFont(CoreFont(family), style, size)
}

// SetColor implements render.Surface for both text and strokes
func (d *Document) SetColor(hex string) {
	r, g, b, ok := theme.ParseColor(hex)
	if !ok {
		return
	}
	d.pdf.SetTextColor(r, g, b)
	d.pdf.SetDrawColor(r, g, b)
}

// Text implements render.Surface
func (d *Document) Text(x, y float64, s string) {
	d.pdf.Text(x, y, d.tr(s))
}

// Line implements render.Surface
func (d *Document) Line(x1, y1, x2, y2 float64) {
	d.pdf.SetLineWidth(0.5)
	d.pdf.Line(x1, y1, x2, y2)
}

// Output writes the document to w
func (d *Document) Output(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return &render.RenderError{Message: "failed to write PDF", Cause: err}
	}
	return nil
}

// OutputFile writes the document to path, creating its directory
func (d *Document) OutputFile(path string) error {
	outputDir := filepath.Dir(path)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return &render.RenderError{Message: "failed to write PDF", Cause: err}
	}
	return nil
}

// CoreFont maps a font family name to one of the PDF core fonts
func CoreFont(family string) string {
	first := strings.Split(family, ",")[0]
	first = strings.Trim(strings.TrimSpace(first), "'\"")
	switch strings.ToLower(first) {
	case "times", "times new roman", "georgia", "serif":
		return "Times"
	case "courier", "courier new", "monospace":
		return "Courier"
	default:
		return "Helvetica"
	}
}

// Measurer measures text with the PDF core font metrics
type Measurer struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
}

// NewMeasurer creates a measurer for family
func NewMeasurer(family string) *Measurer {
	pdf := fpdf.New("P", "pt", "A4", "")
	return &Measurer{
		pdf:    pdf,
		family: CoreFont(family),
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// Width implements text.Measurer
func (m *Measurer) Width(s string, size float64) float64 {
	m.pdf.SetFont(m.family, "", size)
	return m.pdf.GetStringWidth(m.tr(s))
}

// Renderer handles rendering pages to PDF
type Renderer struct {
	Theme    theme.Theme
	PageSize pagination.PageSize
	Logger   *zap.Logger
}

// NewRenderer creates a new PDF renderer
func NewRenderer(t theme.Theme, size pagination.PageSize) *Renderer {
	return &Renderer{
		Theme:    t,
		PageSize: size,
		Logger:   zap.NewNop(),
	}
}

// Paint draws every page into a new document
func (r *Renderer) Paint(pages []*pagination.Page, options RenderOptions) *Document {
	doc := NewDocument(options)
	painter := render.NewPainter(r.Theme, r.PageSize)
	painter.Measurer = NewMeasurer(r.Theme.Typography.FontFamily.Primary)

	r.logger().Debug("rendering pdf", zap.Int("pages", len(pages)))
	for _, page := range pages {
		doc.AddPage(r.PageSize)
		painter.Paint(doc, page)
	}
	return doc
}

func (r *Renderer) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Render renders pages to a PDF file
func (r *Renderer) Render(pages []*pagination.Page, outputPath string, options RenderOptions) error {
	return r.Paint(pages, options).OutputFile(outputPath)
}

// Write renders pages as PDF to w
func (r *Renderer) Write(pages []*pagination.Page, w io.Writer, options RenderOptions) error {
	return r.Paint(pages, options).Output(w)
}
