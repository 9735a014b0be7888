package tagfs

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/dendrascience/tagfs/catalog"
	"github.com/dendrascience/tagfs/util"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	dirMode  = os.ModeDir | 0o755
	dirNlink = 2

	accessModeMask = os.O_RDONLY | os.O_WRONLY | os.O_RDWR
)

// FS serves a catalog. It is safe for concurrent use.
type FS struct {
	catalog *catalog.Catalog
	source  afero.Fs
	mounted time.Time
}

// NewFS creates a filesystem over c that reads track contents from source.
// A nil source reads the host filesystem.
func NewFS(c *catalog.Catalog, source afero.Fs) *FS {
	if source == nil {
		source = afero.NewOsFs()
	}
	return &FS{
		catalog: c,
		source:  source,
		mounted: time.Now(),
	}
}

// Catalog returns the catalog being served.
func (f *FS) Catalog() *catalog.Catalog {
	return f.catalog
}

// Getattr returns the attributes of the node at vpath. Directories report
// fixed permissions and link count; tracks report the stat captured at scan
// time.
func (f *FS) Getattr(vpath string) (catalog.FileStat, error) {
	node := f.catalog.Resolve(vpath)
	switch {
	case node.Kind == catalog.TrackFile:
		return node.Track.Stat, nil
	case node.Kind.IsDir():
		return f.dirStat(node.Path), nil
	default:
		return catalog.FileStat{}, fmt.Errorf("%s: %w", vpath, ErrNotFound)
	}
}

func (f *FS) dirStat(vpath string) catalog.FileStat {
	return catalog.FileStat{
		Inode: util.DirInode(vpath),
		Mode:  dirMode,
		Nlink: dirNlink,
		Atime: f.mounted,
		Mtime: f.mounted,
		Ctime: f.mounted,
	}
}

// Readdir returns the entry names of the directory at vpath, starting with
// "." and "..". Paths that are not directories yield only those two.
func (f *FS) Readdir(vpath string) iter.Seq[string] {
	node := f.catalog.Resolve(vpath)
	return func(yield func(string) bool) {
		if !yield(".") || !yield("..") {
			return
		}
		for _, name := range f.entries(node) {
			if !yield(name) {
				return
			}
		}
	}
}

func (f *FS) entries(node catalog.Node) []string {
	switch node.Kind {
	case catalog.Root:
		names := make([]string, 0, len(catalog.Categories))
		for _, c := range catalog.Categories {
			names = append(names, c.Name)
		}
		return names
	case catalog.CategoryRoot:
		return f.catalog.Values(node.Category)
	case catalog.ValueDir:
		members := f.catalog.Members(node.Category, node.Value)
		names := make([]string, 0, len(members))
		for _, realPath := range members {
			names = append(names, filepath.Base(realPath))
		}
		slices.Sort(names)
		return slices.Compact(names)
	default:
		return nil
	}
}

// Open checks that vpath is a track and that flags request read-only access.
// No state is kept.
func (f *FS) Open(vpath string, flags int) error {
	if node := f.catalog.Resolve(vpath); node.Kind != catalog.TrackFile {
		return fmt.Errorf("%s: %w", vpath, ErrNotFound)
	}
	if flags&accessModeMask != os.O_RDONLY {
		return fmt.Errorf("%s: %w", vpath, ErrAccessDenied)
	}
	return nil
}

// Read returns up to size bytes of the track at vpath starting at offset.
// Reading at or past the end of the file returns no data and no error.
func (f *FS) Read(vpath string, size int, offset int64) ([]byte, error) {
	node := f.catalog.Resolve(vpath)
	if node.Kind != catalog.TrackFile {
		return nil, fmt.Errorf("%s: %w", vpath, ErrNotFound)
	}

	data, err := f.readRange(node.Track.RealPath, size, offset)
	if err != nil {
		log.Warn().Err(err).Str("path", vpath).Str("real_path", node.Track.RealPath).Msg("read failed")
		return nil, errors.Join(ErrIO, err)
	}
	return data, nil
}

func (f *FS) readRange(realPath string, size int, offset int64) ([]byte, error) {
	if size <= 0 || offset < 0 {
		return []byte{}, nil
	}

	file, err := f.source.Open(realPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", realPath, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", realPath, err)
	}
	fileSize := info.Size()
	if offset >= fileSize {
		return []byte{}, nil
	}
	n := min(int64(size), fileSize-offset)

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek %s: %w", realPath, err)
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("failed to read %s: %w", realPath, err)
	}
	return buf[:read], nil
}
