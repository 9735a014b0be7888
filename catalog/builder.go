package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/dendrascience/tagfs/tags"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// DefaultExtensions are the file extensions scanned when none are configured.
var DefaultExtensions = []string{".mp3"}

// Builder scans a source tree into a Catalog.
type Builder struct {
	fs         afero.Fs
	reader     tags.Reader
	extensions []string
}

// Option configures a Builder.
type Option func(*Builder)

// WithExtensions restricts the scan to files whose extension matches one of
// exts exactly (case-sensitive, including the leading dot).
func WithExtensions(exts ...string) Option {
	return func(b *Builder) {
		if len(exts) > 0 {
			b.extensions = slices.Clone(exts)
		}
	}
}

// WithReader replaces the tag reader. The default reads ID3v2 tags from the
// builder's filesystem.
func WithReader(r tags.Reader) Option {
	return func(b *Builder) {
		if r != nil {
			b.reader = r
		}
	}
}

// NewBuilder creates a builder over fs. A nil fs scans the host filesystem.
func NewBuilder(fs afero.Fs, opts ...Option) *Builder {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	b := &Builder{
		fs:         fs,
		extensions: slices.Clone(DefaultExtensions),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.reader == nil {
		b.reader = tags.NewID3Reader(fs)
	}
	return b
}

// Build walks root once and returns the catalog of every matching regular
// file beneath it. Entries that cannot be read are skipped; only a missing
// root or a cancelled context fails the build.
func (b *Builder) Build(ctx context.Context, root string) (*Catalog, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source directory %s: %w", root, err)
	}
	if _, err := b.fs.Stat(root); err != nil {
		return nil, fmt.Errorf("failed to stat source directory: %w", err)
	}

	c := newCatalog(root)
	err = afero.Walk(b.fs, root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}
		if !info.Mode().IsRegular() || !b.matches(path) {
			return nil
		}
		b.addTrack(c, path, info)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan of %s aborted: %w", root, err)
	}

	stats := c.Stats()
	log.Info().
		Int("artists", stats.Artists).
		Int("genres", stats.Genres).
		Int("years", stats.Years).
		Int("tracks", stats.Tracks).
		Int("aliases", stats.Aliases).
		Str("source", root).
		Msgf("found %d artists, %d genres, %d years", stats.Artists, stats.Genres, stats.Years)
	return c, nil
}

func (b *Builder) matches(path string) bool {
	return slices.Contains(b.extensions, filepath.Ext(path))
}

// addTrack indexes one file. The walk reports lstat information; the
// snapshot is taken with stat so that it matches what a reader would see.
func (b *Builder) addTrack(c *Catalog, path string, info os.FileInfo) {
	tt := b.reader.ReadTags(path)

	if fi, err := b.fs.Stat(path); err == nil {
		info = fi
	}
	rec := &TrackRecord{RealPath: path, Stat: statFromInfo(info)}

	for _, cat := range Categories {
		for _, value := range cat.values(tt) {
			c.add(cat, value, rec)
		}
	}
	c.tracks++
	log.Debug().
		Str("path", path).
		Str("artist", tt.Artist).
		Strs("genres", tt.Genres).
		Str("year", tt.ReleaseYear).
		Msg("indexed track")
}
