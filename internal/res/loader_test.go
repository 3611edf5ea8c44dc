package res

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"career":{}}`), 0644))

	l := NewLoader("")
	res, err := l.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, DocumentTypeJSON, res.Type)
	assert.Equal(t, "application/json", res.MimeType)
	assert.Equal(t, `{"career":{}}`, res.GetString())
}

func TestLoader_CachesUntilInvalidated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: a"), 0644))

	l := NewLoader("")
	first, err := l.Fetch(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("name: b"), 0644))
	cached, err := l.Fetch(path)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	l.Invalidate(path)
	fresh, err := l.Fetch(path)
	require.NoError(t, err)
	assert.Equal(t, "name: b", string(fresh))
}

func TestLoader_SearchPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "portfolio.json"), []byte(`{}`), 0644))

	l := NewLoader("")
	l.AddSearchPath(dir)
	res, err := l.Load(context.Background(), "missing/portfolio.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "portfolio.json"), res.URL)
}

func TestLoader_NotFound(t *testing.T) {
	l := NewLoader("")
	_, err := l.Fetch(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resource not found")
}

func TestLoader_RelativeToBase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "overrides.yml"), []byte("a: 1"), 0644))

	l := NewLoader(filepath.Join(dir, "config.yaml"))
	res, err := l.Load(context.Background(), "overrides.yml")
	require.NoError(t, err)
	assert.Equal(t, DocumentTypeYAML, res.Type)
}

func TestLoader_DataURL(t *testing.T) {
	l := NewLoader("")

	plain, err := l.Fetch("data:application/json,%7B%22name%22%3A%22x%22%7D")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"x"}`, string(plain))

	encoded := base64.StdEncoding.EncodeToString([]byte(`{"title":"t"}`))
	res, err := l.Load(context.Background(), "data:application/json;base64,"+encoded)
	require.NoError(t, err)
	assert.Equal(t, DocumentTypeJSON, res.Type)
	assert.Equal(t, `{"title":"t"}`, res.GetString())

	_, err = l.Fetch("data:application/json")
	assert.Error(t, err)
}

func TestLoader_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/portfolio.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"projects":{}}`))
	}))
	defer srv.Close()

	l := NewLoader(srv.URL + "/admin/")
	res, err := l.Load(context.Background(), "/portfolio.json")
	require.NoError(t, err)
	assert.Equal(t, DocumentTypeJSON, res.Type)
	assert.Equal(t, `{"projects":{}}`, res.GetString())

	_, err = l.Fetch(srv.URL + "/missing.json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP error")
}
