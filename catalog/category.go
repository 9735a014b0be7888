package catalog

import "github.com/dendrascience/tagfs/tags"

// Category is a top-level grouping dimension of the virtual tree.
type Category struct {
	// Name is the directory name at the root, e.g. "Artists".
	Name string
	// values extracts the category's tag values from a track.
	values func(tags.TrackTags) []string
}

// Dir returns the category root path, e.g. "/Artists".
func (c Category) Dir() string {
	return "/" + c.Name
}

// prefix is the path prefix shared by everything below the category root.
func (c Category) prefix() string {
	return "/" + c.Name + "/"
}

var (
	Artists = Category{
		Name:   "Artists",
		values: func(t tags.TrackTags) []string { return []string{t.Artist} },
	}
	Genres = Category{
		Name:   "Genres",
		values: func(t tags.TrackTags) []string { return t.Genres },
	}
	Years = Category{
		Name:   "Years",
		values: func(t tags.TrackTags) []string { return []string{t.ReleaseYear} },
	}
)

// Categories lists the categories in root listing order.
var Categories = []Category{Artists, Genres, Years}

// CategoryByName returns the category whose directory is name.
func CategoryByName(name string) (Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// AliasPath returns the virtual path of a file with the given basename under
// value in category c.
func AliasPath(c Category, value, basename string) string {
	return c.prefix() + value + "/" + basename
}
