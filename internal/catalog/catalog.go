package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Film is one canonical catalog entry. Title is the identity; the remaining
// fields are authoritative metadata carried through for display.
type Film struct {
	Title    string `json:"title"`
	Director string `json:"director,omitempty"`
	Country  string `json:"country,omitempty"`
	Year     int    `json:"year,omitempty"`
	Language string `json:"language,omitempty"`
	Runtime  int    `json:"runtime,omitempty"`
}

// Catalog is the loaded film reference table. It is immutable for the
// duration of a run and safe for concurrent readers.
type Catalog struct {
	films []Film
	byKey map[string]int
}

type catalogDocument struct {
	Films []Film `json:"films"`
}

// Load reads a catalog document from disk. The document is a JSON object
// with a "films" array; a missing or unreadable file is a fatal input error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return New(doc.Films), nil
}

// New builds a catalog from the given films. Lookup keys are normalized
// titles; when two films collide on a key the first insertion wins.
func New(films []Film) *Catalog {
	c := &Catalog{
		films: append([]Film(nil), films...),
		byKey: make(map[string]int, len(films)),
	}
	for i, film := range c.films {
		key := NormalizeTitle(film.Title)
		if key == "" {
			continue
		}
		if _, ok := c.byKey[key]; ok {
			continue
		}
		c.byKey[key] = i
	}
	return c
}

// Len reports the number of films in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.films)
}

// Films returns the catalog entries in load order.
func (c *Catalog) Films() []Film {
	if c == nil {
		return nil
	}
	return append([]Film(nil), c.films...)
}

func (c *Catalog) lookup(key string) (Film, bool) {
	if c == nil {
		return Film{}, false
	}
	idx, ok := c.byKey[key]
	if !ok {
		return Film{}, false
	}
	return c.films[idx], true
}
