package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Measurer reports the advance width of a string set at size points
type Measurer interface {
	Width(s string, size float64) float64
}

// ApproxMeasurer estimates width as a fixed fraction of the font size per rune.
// It is the preview's own approximation and does not match any real font.
type ApproxMeasurer struct {
	// Ratio of average glyph advance to font size
	Ratio float64
}

// DefaultRatio is the average advance of the core sans fonts
const DefaultRatio = 0.5

// Width implements Measurer
func (m ApproxMeasurer) Width(s string, size float64) float64 {
	ratio := m.Ratio
	if ratio <= 0 {
		ratio = DefaultRatio
	}
	return float64(utf8.RuneCountInString(s)) * size * ratio
}

// Font is the size and line spacing text is set at
type Font struct {
	Size float64
	// LineHeight is a multiple of Size; zero means 1.2
	LineHeight float64
}

// TextShaper measures and wraps text for the preview
type TextShaper struct {
	measurer Measurer
}

// NewTextShaper creates a text shaper. A nil measurer falls back to ApproxMeasurer.
func NewTextShaper(m Measurer) *TextShaper {
	if m == nil {
		m = ApproxMeasurer{}
	}
	return &TextShaper{measurer: m}
}

// LineAdvance is the distance between consecutive baselines
func (s *TextShaper) LineAdvance(font *Font) float64 {
	return font.Size * lineHeightOr(font.LineHeight)
}

// SplitTextToLines wraps text greedily: words accumulate on a line until the
// next word would exceed maxWidth. A word wider than maxWidth gets a line of
// its own. Empty or whitespace-only text yields no lines.
func (s *TextShaper) SplitTextToLines(text string, font *Font, maxWidth float64) []string {
	words := splitIntoWords(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && s.measurer.Width(candidate, font.Size) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// Wrap is a convenience for SplitTextToLines with a bare font size
func Wrap(text string, size, maxWidth float64, m Measurer) []string {
	return NewTextShaper(m).SplitTextToLines(text, &Font{Size: size}, maxWidth)
}

func lineHeightOr(v float64) float64 {
	if v <= 0 {
		return 1.2
	}
	return v
}

// splitIntoWords splits text into words
func splitIntoWords(text string) []string {
	return strings.FieldsFunc(text, unicode.IsSpace)
}
