package catalog

import "strings"

// NodeKind classifies a virtual path.
type NodeKind int

const (
	NotFound NodeKind = iota
	Root
	CategoryRoot
	ValueDir
	TrackFile
)

func (k NodeKind) String() string {
	switch k {
	case Root:
		return "root"
	case CategoryRoot:
		return "category"
	case ValueDir:
		return "value"
	case TrackFile:
		return "track"
	default:
		return "not-found"
	}
}

// IsDir reports whether nodes of this kind are served as directories.
func (k NodeKind) IsDir() bool {
	return k == Root || k == CategoryRoot || k == ValueDir
}

// Node is the result of resolving a virtual path.
type Node struct {
	Kind NodeKind
	// Path is the normalized virtual path.
	Path string
	// Category is set for CategoryRoot and ValueDir nodes.
	Category Category
	// Value is the tag value of a ValueDir node.
	Value string
	// Track is set for TrackFile nodes.
	Track *TrackRecord
}

// route matches a normalized path against one category.
type route struct {
	category Category
	dir      string // "/Artists"
	prefix   string // "/Artists/"
}

var routes = func() []route {
	r := make([]route, 0, len(Categories))
	for _, c := range Categories {
		r = append(r, route{category: c, dir: c.Dir(), prefix: c.prefix()})
	}
	return r
}()

// NormalizePath strips trailing slashes; the root stays "/".
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}
	if trimmed := strings.TrimRight(p, "/"); trimmed != "" {
		return trimmed
	}
	return "/"
}

// Resolve classifies p. An exact alias wins over the prefix-based value
// directory classification; a file path always has one more segment than the
// value directory holding it, so the two never collide.
func (c *Catalog) Resolve(p string) Node {
	p = NormalizePath(p)
	if p == "/" {
		return Node{Kind: Root, Path: p}
	}
	if rec, ok := c.aliases[p]; ok {
		return Node{Kind: TrackFile, Path: p, Track: rec}
	}
	for _, r := range routes {
		switch {
		case p == r.dir:
			return Node{Kind: CategoryRoot, Path: p, Category: r.category}
		case strings.HasPrefix(p, r.prefix):
			return Node{Kind: ValueDir, Path: p, Category: r.category, Value: p[len(r.prefix):]}
		}
	}
	return Node{Kind: NotFound, Path: p}
}
