package content

import "fmt"

// Source fetches raw document bytes by location (path or URL)
type Source interface {
	Fetch(location string) ([]byte, error)
}

// Load fetches a document through src and parses it
func Load(src Source, location string) (*Content, error) {
	data, err := src.Fetch(location)
	if err != nil {
		return nil, fmt.Errorf("failed to load content %s: %w", location, err)
	}
	return Parse(data)
}
