package domain

import (
	"fmt"
	"sort"
)

type CastMember struct {
	Character string `json:"character" yaml:"character" validate:"required"`
	Actor     string `json:"actor" yaml:"actor" validate:"required"`
}

// CatalogItem is read-only reference data. Items are never mutated after
// the catalog is loaded.
type CatalogItem struct {
	ID          string       `json:"id" yaml:"id" validate:"required"`
	Title       string       `json:"title" yaml:"title" validate:"required"`
	Genres      []string     `json:"genres" yaml:"genres" validate:"dive,required"`
	Rating      float64      `json:"imdbRating" yaml:"imdb_rating" validate:"gte=0,lte=10"`
	Summary     string       `json:"summary" yaml:"summary"`
	Popularity  float64      `json:"watchedPercentage" yaml:"watched_percentage" validate:"gte=0,lte=100"`
	Keywords    []string     `json:"keywords" yaml:"keywords"`
	Director    string       `json:"director" yaml:"director"`
	Cast        []CastMember `json:"cast" yaml:"cast" validate:"dive"`
	TrailerURL  string       `json:"trailerUrl" yaml:"trailer_url" validate:"omitempty,url"`
	ExternalURL string       `json:"externalUrl" yaml:"external_url" validate:"omitempty,url"`
}

// HasGenre reports exact genre membership.
func (m *CatalogItem) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Catalog is an immutable, ordered collection of items indexed by ID.
type Catalog struct {
	items []CatalogItem
	index map[string]int
}

// NewCatalog builds a catalog preserving the given order. IDs must be unique.
func NewCatalog(items []CatalogItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]CatalogItem, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, item := range items {
		if _, dup := c.index[item.ID]; dup {
			return nil, fmt.Errorf("catalog item %q: duplicate id", item.ID)
		}
		c.index[item.ID] = i
		c.items[i] = cloneItem(item)
	}
	return c, nil
}

// Items returns the items in catalog order. Callers must not modify them.
func (c *Catalog) Items() []CatalogItem {
	return c.items
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Lookup returns the item with the given ID.
func (c *Catalog) Lookup(id string) (*CatalogItem, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return &c.items[i], true
}

func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Genres returns every distinct genre in the catalog, sorted.
func (c *Catalog) Genres() []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range c.items {
		for _, g := range item.Genres {
			if !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	}
	sort.Strings(out)
	return out
}

func cloneItem(m CatalogItem) CatalogItem {
	m.Genres = append([]string(nil), m.Genres...)
	m.Keywords = append([]string(nil), m.Keywords...)
	m.Cast = append([]CastMember(nil), m.Cast...)
	return m
}
