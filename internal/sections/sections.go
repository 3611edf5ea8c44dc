// Package sections provides the ordered section selection handed to the
// estimator and a file-backed store for the editor's section preferences.
package sections

import (
	"fmt"
	"strings"

	"github.com/gompdf/folio/internal/content"
)

// Selection is the ordered list of included sections plus the page-break flag
type Selection struct {
	Order                    []content.SectionID
	PageBreakBetweenSections bool

	// PageBreakSet reports whether PageBreakBetweenSections was chosen
	// explicitly rather than left to the theme default
	PageBreakSet bool
}

// SetPageBreak records an explicit page-break choice
func (s Selection) SetPageBreak(on bool) Selection {
	s.PageBreakBetweenSections = on
	s.PageBreakSet = true
	return s
}

// DefaultSelection includes every section in canonical order
func DefaultSelection() Selection {
	order := make([]content.SectionID, len(content.AllSections))
	copy(order, content.AllSections)
	return Selection{Order: order}
}

// Normalize converts raw identifiers into an order. Unknown and repeated
// identifiers are rejected.
func Normalize(ids []string) ([]content.SectionID, error) {
	order := make([]content.SectionID, 0, len(ids))
	seen := make(map[content.SectionID]bool, len(ids))
	for _, raw := range ids {
		id := content.SectionID(strings.ToLower(strings.TrimSpace(raw)))
		if !id.Valid() {
			return nil, fmt.Errorf("unknown section %q", raw)
		}
		if seen[id] {
			return nil, fmt.Errorf("section %q listed more than once", raw)
		}
		seen[id] = true
		order = append(order, id)
	}
	return order, nil
}

// Validate checks that the selection order satisfies the closed-set and
// uniqueness rules
func (s Selection) Validate() error {
	_, err := s.Normalized()
	return err
}

// Normalized returns s with its order rewritten to canonical identifiers
func (s Selection) Normalized() (Selection, error) {
	raw := make([]string, len(s.Order))
	for i, id := range s.Order {
		raw[i] = string(id)
	}
	order, err := Normalize(raw)
	if err != nil {
		return s, err
	}
	s.Order = order
	return s, nil
}

// Includes reports whether id is part of the selection
func (s Selection) Includes(id content.SectionID) bool {
	for _, o := range s.Order {
		if o == id {
			return true
		}
	}
	return false
}

// Toggle adds id at the end of the order, or removes it when present
func (s Selection) Toggle(id content.SectionID) (Selection, error) {
	if !id.Valid() {
		return s, fmt.Errorf("unknown section %q", id)
	}
	out := s
	out.Order = nil
	removed := false
	for _, o := range s.Order {
		if o == id {
			removed = true
			continue
		}
		out.Order = append(out.Order, o)
	}
	if !removed {
		out.Order = append(out.Order, id)
	}
	return out, nil
}

// Move shifts id by delta positions, clamped to the ends of the order
func (s Selection) Move(id content.SectionID, delta int) (Selection, error) {
	idx := -1
	for i, o := range s.Order {
		if o == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, fmt.Errorf("section %q is not selected", id)
	}

	target := idx + delta
	if target < 0 {
		target = 0
	}
	if target > len(s.Order)-1 {
		target = len(s.Order) - 1
	}

	order := make([]content.SectionID, 0, len(s.Order))
	for i, o := range s.Order {
		if i != idx {
			order = append(order, o)
		}
	}
	order = append(order[:target], append([]content.SectionID{id}, order[target:]...)...)
	s.Order = order
	return s, nil
}
