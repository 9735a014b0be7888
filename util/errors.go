package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Startup path errors
	ErrExpectedDirectory = errors.New("expected directory but got file")
	ErrPathNotExist      = errors.New("path does not exist")
)
