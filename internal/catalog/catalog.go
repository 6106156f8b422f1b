// Package catalog loads the movie catalog from YAML. A six-title default
// catalog is compiled into the binary.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/lite/internal/domain"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed movies.yaml
var defaultCatalog []byte

var (
	ErrDuplicateID = errors.New("duplicate catalog id")
	ErrEmpty       = errors.New("catalog has no movies")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type document struct {
	Movies []domain.CatalogItem `yaml:"movies"`
}

// Default returns the embedded catalog.
func Default() (*domain.Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file. An empty path selects the embedded catalog.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*domain.Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(doc.Movies) == 0 {
		return nil, ErrEmpty
	}

	seen := make(map[string]bool, len(doc.Movies))
	for i := range doc.Movies {
		m := &doc.Movies[i]
		if err := validate.Struct(m); err != nil {
			return nil, fmt.Errorf("movie %d (%q): %w", i+1, m.ID, err)
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("movie %d: %w: %s", i+1, ErrDuplicateID, m.ID)
		}
		seen[m.ID] = true
	}

	return domain.NewCatalog(doc.Movies)
}
