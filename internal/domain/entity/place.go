package entity

import (
	"sort"
	"strings"
)

// Place is a supported city, town or village name.
type Place string

// PlaceCatalog is the fixed, sorted set of places the lookup accepts.
type PlaceCatalog struct {
	places []Place
	index  map[string]Place
}

// NewPlaceCatalog builds a catalog from configured names. Blank and duplicate names are dropped.
func NewPlaceCatalog(names []string) *PlaceCatalog {
	catalog := &PlaceCatalog{index: make(map[string]Place, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, exists := catalog.index[key]; exists {
			continue
		}
		catalog.index[key] = Place(name)
		catalog.places = append(catalog.places, Place(name))
	}

	sort.Slice(catalog.places, func(i, j int) bool {
		return catalog.places[i] < catalog.places[j]
	})
	return catalog
}

// All returns a copy of the places in sorted order.
func (c *PlaceCatalog) All() []Place {
	places := make([]Place, len(c.places))
	copy(places, c.places)
	return places
}

// Find resolves a name, ignoring case and surrounding blanks, to its catalog entry.
func (c *PlaceCatalog) Find(name string) (Place, bool) {
	place, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	return place, ok
}

// Len returns the number of places in the catalog.
func (c *PlaceCatalog) Len() int {
	return len(c.places)
}
