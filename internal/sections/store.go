package sections

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gompdf/folio/internal/content"
)

// stored is the on-disk form. A missing pageBreakBetweenSections key leaves
// the choice to the theme.
type stored struct {
	Order                    []content.SectionID `yaml:"order"`
	PageBreakBetweenSections *bool               `yaml:"pageBreakBetweenSections,omitempty"`
}

// Store persists the selection to a YAML file
type Store struct {
	path string
}

// NewStore creates a store backed by path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Load reads the saved selection. A missing file yields DefaultSelection.
func (s *Store) Load() (Selection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSelection(), nil
		}
		return Selection{}, fmt.Errorf("failed to read section preferences: %w", err)
	}

	var st stored
	if err := yaml.Unmarshal(data, &st); err != nil {
		return Selection{}, fmt.Errorf("failed to parse section preferences %s: %w", s.path, err)
	}
	sel := Selection{Order: st.Order}
	if st.PageBreakBetweenSections != nil {
		sel = sel.SetPageBreak(*st.PageBreakBetweenSections)
	}

	sel, err = sel.Normalized()
	if err != nil {
		return Selection{}, fmt.Errorf("invalid section preferences %s: %w", s.path, err)
	}
	return sel, nil
}

// Save writes the selection atomically
func (s *Store) Save(sel Selection) error {
	sel, err := sel.Normalized()
	if err != nil {
		return err
	}

	st := stored{Order: sel.Order}
	if sel.PageBreakSet || sel.PageBreakBetweenSections {
		st.PageBreakBetweenSections = &sel.PageBreakBetweenSections
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode section preferences: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".sections-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write section preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write section preferences: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}
