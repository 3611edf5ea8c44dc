package sections

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gompdf/folio/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	order, err := Normalize([]string{"Career", " projects "})
	require.NoError(t, err)
	assert.Equal(t, []content.SectionID{content.SectionCareer, content.SectionProjects}, order)

	_, err = Normalize([]string{"career", "education"})
	assert.ErrorContains(t, err, "unknown section")

	_, err = Normalize([]string{"career", "career"})
	assert.ErrorContains(t, err, "more than once")

	order, err = Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection()
	assert.Equal(t, content.AllSections, sel.Order)
	assert.False(t, sel.PageBreakBetweenSections)

	// the default order must not alias the package-level slice
	sel.Order[0] = content.SectionCareer
	assert.Equal(t, content.SectionExpertise, content.AllSections[0])
}

func TestToggle(t *testing.T) {
	sel := DefaultSelection()

	sel, err := sel.Toggle(content.SectionProjects)
	require.NoError(t, err)
	assert.False(t, sel.Includes(content.SectionProjects))
	assert.Len(t, sel.Order, 3)

	sel, err = sel.Toggle(content.SectionProjects)
	require.NoError(t, err)
	assert.Equal(t, content.SectionProjects, sel.Order[len(sel.Order)-1])

	_, err = sel.Toggle("education")
	assert.Error(t, err)
}

func TestMove(t *testing.T) {
	sel := DefaultSelection()

	moved, err := sel.Move(content.SectionCareer, -2)
	require.NoError(t, err)
	assert.Equal(t, []content.SectionID{
		content.SectionCareer,
		content.SectionExpertise,
		content.SectionProjects,
		content.SectionTestimonials,
	}, moved.Order)

	clamped, err := sel.Move(content.SectionExpertise, 10)
	require.NoError(t, err)
	assert.Equal(t, content.SectionExpertise, clamped.Order[3])

	sel.Order = sel.Order[:2]
	_, err = sel.Move(content.SectionCareer, 1)
	assert.ErrorContains(t, err, "not selected")
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "sections.yaml")
	store := NewStore(path)

	sel, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSelection(), sel)

	want := Selection{
		Order: []content.SectionID{content.SectionTestimonials, content.SectionCareer},
	}.SetPageBreak(true)
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sections.yaml")
	store := NewStore(path)

	err := store.Save(Selection{Order: []content.SectionID{"career", "career"}})
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("order: [awards]\n"), 0644))
	_, err = store.Load()
	assert.ErrorContains(t, err, "invalid section preferences")

	require.NoError(t, os.WriteFile(path, []byte("order: {"), 0644))
	_, err = store.Load()
	assert.ErrorContains(t, err, "failed to parse")
}

func TestStore_LoadNormalizesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sections.yaml")
	require.NoError(t, os.WriteFile(path, []byte("order: [Career, ' Expertise ']\n"), 0644))

	sel, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []content.SectionID{content.SectionCareer, content.SectionExpertise}, sel.Order)
	assert.True(t, sel.Includes(content.SectionCareer))
}

func TestStore_SaveNormalizesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sections.yaml")
	store := NewStore(path)
	require.NoError(t, store.Save(Selection{Order: []content.SectionID{"Projects"}}))

	sel, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []content.SectionID{content.SectionProjects}, sel.Order)
}

func TestStore_PageBreakExplicitness(t *testing.T) {
	dir := t.TempDir()

	unset := filepath.Join(dir, "unset.yaml")
	require.NoError(t, os.WriteFile(unset, []byte("order: [career]\n"), 0644))
	sel, err := NewStore(unset).Load()
	require.NoError(t, err)
	assert.False(t, sel.PageBreakSet)

	off := filepath.Join(dir, "off.yaml")
	require.NoError(t, os.WriteFile(off, []byte("order: [career]\npageBreakBetweenSections: false\n"), 0644))
	sel, err = NewStore(off).Load()
	require.NoError(t, err)
	assert.True(t, sel.PageBreakSet)
	assert.False(t, sel.PageBreakBetweenSections)

	// an explicit false survives a save
	store := NewStore(filepath.Join(dir, "saved.yaml"))
	require.NoError(t, store.Save(DefaultSelection().SetPageBreak(false)))
	sel, err = store.Load()
	require.NoError(t, err)
	assert.True(t, sel.PageBreakSet)

	// edits keep the flag
	moved, err := sel.Move(content.SectionCareer, -1)
	require.NoError(t, err)
	assert.True(t, moved.PageBreakSet)
	toggled, err := sel.Toggle(content.SectionCareer)
	require.NoError(t, err)
	assert.True(t, toggled.PageBreakSet)
}
