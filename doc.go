// Package main provides the tagfs command-line interface.
//
// tagfs mounts a read-only FUSE filesystem that presents a directory of
// audio files organized by their embedded tags. Every track appears under
// /Artists/<artist>/, under /Genres/<genre>/ for each of its genres and under
// /Years/<year>/, and every alias reads the bytes of the original file.
//
// The main binary supports these subcommands:
//   - mount: Mount the tag view of a source tree (also the default with two arguments)
//   - scan: Print the artists, genres and years a mount would expose
//   - seed: Generate a library of tagged test tracks
package main
