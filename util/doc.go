// Package util provides small helpers shared by the tagfs command line and
// filesystem packages.
//
// It derives stable inode numbers for synthetic directories, validates the
// source and mount directories given on the command line, and declares the
// sentinel errors for invalid startup paths.
package util
