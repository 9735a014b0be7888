package tags

import (
	"fmt"
	"io"

	"github.com/bogem/id3v2"
)

// RawTags are frame values written verbatim into a new ID3v2 tag. Empty
// fields produce no frame.
type RawTags struct {
	Artist string
	Genre  string
	Year   string
}

// IsZero reports whether no frame would be written.
func (r RawTags) IsZero() bool {
	return r == RawTags{}
}

// WriteTrack writes an ID3v2.4 tag holding raw followed by payload to w. A
// zero RawTags writes the payload alone, producing an untagged file.
func WriteTrack(w io.Writer, raw RawTags, payload []byte) error {
	if !raw.IsZero() {
		tag := id3v2.NewEmptyTag()
		tag.SetDefaultEncoding(id3v2.EncodingUTF8)
		if raw.Artist != "" {
			tag.SetArtist(raw.Artist)
		}
		if raw.Genre != "" {
			tag.SetGenre(raw.Genre)
		}
		if raw.Year != "" {
			tag.SetYear(raw.Year)
		}
		if _, err := tag.WriteTo(w); err != nil {
			return fmt.Errorf("failed to write ID3 tag: %w", err)
		}
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write audio payload: %w", err)
	}
	return nil
}
