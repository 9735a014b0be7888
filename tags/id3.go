package tags

import (
	"github.com/bogem/id3v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ID3Reader reads ID3v2 tags from files on an afero filesystem.
type ID3Reader struct {
	fs afero.Fs
}

var _ Reader = (*ID3Reader)(nil)

// NewID3Reader creates a reader over fs. A nil fs reads the host filesystem.
func NewID3Reader(fs afero.Fs) *ID3Reader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &ID3Reader{fs: fs}
}

// ReadTags parses the artist, genre and year frames of path. Files that cannot
// be opened or parsed get Default() tags.
func (r *ID3Reader) ReadTags(path string) TrackTags {
	tt := Default()

	f, err := r.fs.Open(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("cannot open file for tag extraction")
		return tt
	}
	defer f.Close()

	tag, err := id3v2.ParseReader(f, id3v2.Options{
		Parse:       true,
		ParseFrames: []string{"Artist", "Content type", "Year"},
	})
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("cannot parse ID3 tag")
		return tt
	}

	tt.Artist = NormalizeArtist(tag.Artist())
	tt.Genres = SplitGenres(tag.Genre())
	tt.ReleaseYear = NormalizeYear(tag.Year())
	return tt
}
