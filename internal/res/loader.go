package res

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DocumentType represents the encoding of a loaded document
type DocumentType int

const (
	// DocumentTypeUnknown is a document whose encoding could not be inferred
	DocumentTypeUnknown DocumentType = iota
	// DocumentTypeJSON is a JSON document (portfolio content, theme overrides)
	DocumentTypeJSON
	// DocumentTypeYAML is a YAML document (theme overrides, preferences)
	DocumentTypeYAML
	// DocumentTypeOther is any other payload
	DocumentTypeOther
)

// Resource represents a loaded document
type Resource struct {
	URL      string
	Type     DocumentType
	Data     []byte
	MimeType string
}

// Loader resolves content and theme locations to bytes. Local paths, http(s)
// URLs and data URLs are supported; results are cached by location.
type Loader struct {
	// Base URL or file path for resolving relative locations
	BaseURL string

	cache     map[string]*Resource
	cacheLock sync.RWMutex

	searchPaths []string

	client *http.Client
}

// NewLoader creates a new document loader
func NewLoader(baseURL string) *Loader {
	return &Loader{
		BaseURL:     baseURL,
		cache:       make(map[string]*Resource),
		searchPaths: []string{},
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

// AddSearchPath adds a directory to search for local documents
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// Fetch returns the raw bytes at location
func (l *Loader) Fetch(location string) ([]byte, error) {
	res, err := l.Load(context.Background(), location)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Invalidate drops a cached location so the next Load reads it again
func (l *Loader) Invalidate(location string) {
	l.cacheLock.Lock()
	delete(l.cache, location)
	l.cacheLock.Unlock()
}

// Load loads a document from a URL or file path
func (l *Loader) Load(ctx context.Context, urlStr string) (*Resource, error) {
	l.cacheLock.RLock()
	if res, ok := l.cache[urlStr]; ok {
		l.cacheLock.RUnlock()
		return res, nil
	}
	l.cacheLock.RUnlock()

	if strings.HasPrefix(urlStr, "data:") {
		res, err := parseDataURL(urlStr)
		if err != nil {
			return nil, err
		}
		l.store(urlStr, res)
		return res, nil
	}

	resolvedURL, err := l.resolveURL(urlStr)
	if err != nil {
		return nil, err
	}

	var res *Resource
	if isRemote(resolvedURL) {
		res, err = l.loadRemote(ctx, resolvedURL)
	} else {
		res, err = l.loadLocal(resolvedURL)
	}
	if err != nil {
		return nil, err
	}

	l.store(urlStr, res)
	return res, nil
}

func (l *Loader) store(key string, res *Resource) {
	l.cacheLock.Lock()
	l.cache[key] = res
	l.cacheLock.Unlock()
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// parseDataURL parses a data URL (RFC 2397) and returns a Resource.
// Examples:
//
//	data:application/json;base64,<base64>
//	data:application/json,%7B%7D
func parseDataURL(u string) (*Resource, error) {
	s := strings.TrimPrefix(u, "data:")
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid data URL")
	}
	meta := parts[0]
	dataPart := parts[1]

	mime := "application/octet-stream"
	isBase64 := false
	if meta != "" {
		comps := strings.Split(meta, ";")
		if comps[0] != "" {
			mime = comps[0]
		}
		for _, c := range comps[1:] {
			if strings.EqualFold(strings.TrimSpace(c), "base64") {
				isBase64 = true
			}
		}
	}

	var data []byte
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(dataPart)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 data URL: %w", err)
		}
		data = decoded
	} else if d, derr := url.QueryUnescape(dataPart); derr == nil {
		data = []byte(d)
	} else {
		data = []byte(dataPart)
	}

	r := &Resource{URL: u, Data: data, MimeType: mime}
	r.Type = determineDocumentType(mime, "")
	return r, nil
}

// resolveURL resolves a location relative to the base URL
func (l *Loader) resolveURL(urlStr string) (string, error) {
	if isRemote(urlStr) {
		return urlStr, nil
	}

	if isRemote(l.BaseURL) {
		baseURL, err := url.Parse(l.BaseURL)
		if err != nil {
			return "", err
		}
		relURL, err := url.Parse(urlStr)
		if err != nil {
			return "", err
		}
		return baseURL.ResolveReference(relURL).String(), nil
	}

	if filepath.IsAbs(urlStr) || l.BaseURL == "" {
		return urlStr, nil
	}
	return filepath.Join(filepath.Dir(l.BaseURL), urlStr), nil
}

// loadRemote loads a document from a remote URL
func (l *Loader) loadRemote(ctx context.Context, urlStr string) (*Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	res := &Resource{
		URL:      urlStr,
		Data:     data,
		MimeType: resp.Header.Get("Content-Type"),
	}
	res.Type = determineDocumentType(res.MimeType, urlStr)
	return res, nil
}

// loadLocal loads a document from a local file
func (l *Loader) loadLocal(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l.loadFromSearchPaths(path)
		}
		return nil, err
	}

	res := &Resource{URL: path, Data: data}
	res.MimeType = determineMimeType(path)
	res.Type = determineDocumentType(res.MimeType, path)
	return res, nil
}

// loadFromSearchPaths tries to load a document from the search paths
func (l *Loader) loadFromSearchPaths(filename string) (*Resource, error) {
	baseFilename := filepath.Base(filename)

	for _, searchPath := range l.searchPaths {
		path := filepath.Join(searchPath, baseFilename)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		res := &Resource{URL: path, Data: data}
		res.MimeType = determineMimeType(path)
		res.Type = determineDocumentType(res.MimeType, path)
		return res, nil
	}

	return nil, fmt.Errorf("resource not found: %s", filename)
}

// determineMimeType determines the MIME type of a file
func determineMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "application/json"
	case ".yaml", ".yml":
		return "application/yaml"
	default:
		return "application/octet-stream"
	}
}

// determineDocumentType determines the type of a document
func determineDocumentType(mimeType, path string) DocumentType {
	mimeType = strings.ToLower(mimeType)
	switch {
	case strings.Contains(mimeType, "json"):
		return DocumentTypeJSON
	case strings.Contains(mimeType, "yaml"):
		return DocumentTypeYAML
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DocumentTypeJSON
	case ".yaml", ".yml":
		return DocumentTypeYAML
	case "":
		return DocumentTypeUnknown
	}
	return DocumentTypeOther
}

// GetReader returns a reader for a resource
func (r *Resource) GetReader() *bytes.Reader {
	return bytes.NewReader(r.Data)
}

// GetString returns the resource data as a string
func (r *Resource) GetString() string {
	return string(r.Data)
}
