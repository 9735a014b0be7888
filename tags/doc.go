// Package tags extracts the artist, genre and release year of an audio file.
//
// The package defines the TrackTags triple that the catalog is keyed by and the
// defaulting rules applied when a file carries no usable metadata: every missing,
// blank or non-positive value falls back to the literal bucket "Unknown", and a
// genre string is split on ';' into one or more genres.
//
// ID3Reader is the production Reader. It parses ID3v2 frames through
// github.com/bogem/id3v2 and opens files through an afero.Fs so that tests can
// run against an in-memory filesystem.
package tags
