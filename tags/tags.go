package tags

import (
	"strconv"
	"strings"
)

// Unknown is the tag value used whenever a file carries no usable value.
const Unknown = "Unknown"

// genreSeparators split a raw genre string. ID3v2.4 stores multiple values
// NUL-separated, older taggers use ';'.
const genreSeparators = ";\x00"

// TrackTags is the metadata of one audio file.
type TrackTags struct {
	Artist      string
	Genres      []string
	ReleaseYear string
}

// Default returns the tags of a file without any metadata.
func Default() TrackTags {
	return TrackTags{
		Artist:      Unknown,
		Genres:      []string{Unknown},
		ReleaseYear: Unknown,
	}
}

// Reader returns the tags of the file at path. Implementations never fail:
// unreadable or untagged files yield Default().
type Reader interface {
	ReadTags(path string) TrackTags
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(path string) TrackTags

func (f ReaderFunc) ReadTags(path string) TrackTags { return f(path) }

// SplitGenres splits a raw genre string on ';' (and NUL), resolves ID3v1
// genre references such as "(17)" or "17" to their names and drops empty
// segments. The result is never empty.
func SplitGenres(raw string) []string {
	var genres []string
	for _, segment := range strings.FieldsFunc(raw, isGenreSeparator) {
		for _, name := range expandGenre(segment) {
			if genre := cleanValue(name); genre != "" {
				genres = append(genres, genre)
			}
		}
	}
	if len(genres) == 0 {
		return []string{Unknown}
	}
	return genres
}

func isGenreSeparator(r rune) bool {
	return strings.ContainsRune(genreSeparators, r)
}

// NormalizeArtist returns the artist bucket for a raw artist frame.
func NormalizeArtist(raw string) string {
	if artist := cleanValue(raw); artist != "" {
		return artist
	}
	return Unknown
}

// NormalizeYear returns the decimal year held in the leading digits of raw,
// accepting both "2006" and recording times such as "2006-05-01".
func NormalizeYear(raw string) string {
	raw = cleanValue(raw)
	end := strings.IndexFunc(raw, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(raw)
	}
	year, err := strconv.Atoi(raw[:end])
	if err != nil || year <= 0 {
		return Unknown
	}
	return strconv.Itoa(year)
}

// cleanValue strips padding from a frame value and replaces what cannot name
// a virtual path segment: the separator, and the "." and ".." entries.
func cleanValue(raw string) string {
	v := strings.TrimSpace(strings.Trim(raw, "\x00"))
	if v == "." || v == ".." {
		return "-"
	}
	return strings.ReplaceAll(v, "/", "-")
}
