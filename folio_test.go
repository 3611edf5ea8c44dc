package folio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/folio"
)

func TestFacade(t *testing.T) {
	c, err := folio.ParseContent([]byte(`{"name": "Dana", "career": {"timeline": [{"company": "Acme", "role": "Lead"}]}}`))
	require.NoError(t, err)
	th, err := folio.ThemePreset("professional")
	require.NoError(t, err)

	p := folio.New(folio.WithDebounce(0), folio.WithPageSizeLetter())
	defer p.Destroy()
	p.Update(c, &th, folio.Sections, folio.UpdateOptions{})
	assert.Equal(t, 1, p.TotalPages())

	var buf bytes.Buffer
	require.NoError(t, p.ExportPDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
