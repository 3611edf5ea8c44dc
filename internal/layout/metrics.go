package layout

import "github.com/gompdf/folio/internal/theme"

// HeaderHeight is the space the document title consumes on the first page
const HeaderHeight = 60.0

// padding keeps rendered text of each kind from clipping its neighbour
var padding = map[Kind]float64{
	KindSectionTitle: 20,
	KindSubheading:   8,
	KindProjectTitle: 8,
	KindCareerEntry:  8,
	KindBullet:       6,
	KindParagraph:    14,
	KindQuote:        20,
	KindDate:         6,
	KindAttribution:  6,
	KindEmpty:        20,
}

// FontSize returns the theme font size used for kind
func FontSize(t theme.Theme, kind Kind) float64 {
	fs := t.Typography.FontSize
	switch kind {
	case KindHeader:
		return fs.H1
	case KindSectionTitle:
		return fs.H2
	case KindSubheading, KindProjectTitle, KindCareerEntry:
		return fs.H3
	case KindDate, KindAttribution:
		return fs.Small
	default:
		return fs.Body
	}
}

// Height estimates the vertical extent of a leaf of the given kind
func Height(t theme.Theme, kind Kind) float64 {
	if kind == KindHeader {
		return HeaderHeight
	}
	return FontSize(t, kind) + padding[kind]
}
