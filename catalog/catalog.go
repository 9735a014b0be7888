package catalog

import (
	"iter"
	"maps"
	"path/filepath"
	"slices"
)

// pathSet is a set of real paths.
type pathSet map[string]struct{}

// Catalog is the immutable index of a scanned source tree.
type Catalog struct {
	root    string
	indices map[string]map[string]pathSet // category name -> value -> real paths
	aliases map[string]*TrackRecord       // virtual path -> track
	tracks  int
}

// Stats summarizes a catalog.
type Stats struct {
	Artists int
	Genres  int
	Years   int
	Tracks  int
	Aliases int
}

func newCatalog(root string) *Catalog {
	c := &Catalog{
		root:    root,
		indices: make(map[string]map[string]pathSet, len(Categories)),
		aliases: make(map[string]*TrackRecord),
	}
	for _, cat := range Categories {
		c.indices[cat.Name] = make(map[string]pathSet)
	}
	return c
}

// add registers rec under value in category cat and creates its alias. A
// later alias with the same virtual path replaces the earlier one while both
// real paths stay indexed.
func (c *Catalog) add(cat Category, value string, rec *TrackRecord) {
	index := c.indices[cat.Name]
	set, ok := index[value]
	if !ok {
		set = make(pathSet)
		index[value] = set
	}
	set[rec.RealPath] = struct{}{}
	c.aliases[AliasPath(cat, value, filepath.Base(rec.RealPath))] = rec
}

// Root returns the source directory the catalog was built from.
func (c *Catalog) Root() string {
	return c.root
}

// Alias returns the track registered at the exact virtual path vpath.
func (c *Catalog) Alias(vpath string) (*TrackRecord, bool) {
	rec, ok := c.aliases[vpath]
	return rec, ok
}

// Values returns the distinct tag values of a category in sorted order.
func (c *Catalog) Values(cat Category) []string {
	return slices.Sorted(maps.Keys(c.indices[cat.Name]))
}

// HasValue reports whether any track carries value in category cat.
func (c *Catalog) HasValue(cat Category, value string) bool {
	_, ok := c.indices[cat.Name][value]
	return ok
}

// Members returns the real paths carrying value in category cat, sorted.
func (c *Catalog) Members(cat Category, value string) []string {
	return slices.Sorted(maps.Keys(c.indices[cat.Name][value]))
}

// Aliases iterates over every virtual path and its track, in no particular
// order.
func (c *Catalog) Aliases() iter.Seq2[string, *TrackRecord] {
	return func(yield func(string, *TrackRecord) bool) {
		for vpath, rec := range c.aliases {
			if !yield(vpath, rec) {
				return
			}
		}
	}
}

// Stats returns the category, track and alias counts.
func (c *Catalog) Stats() Stats {
	return Stats{
		Artists: len(c.indices[Artists.Name]),
		Genres:  len(c.indices[Genres.Name]),
		Years:   len(c.indices[Years.Name]),
		Tracks:  c.tracks,
		Aliases: len(c.aliases),
	}
}
