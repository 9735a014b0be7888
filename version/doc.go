// Package version reports the tagfs release version and build metadata.
//
// Release builds inject Version, Commit and Date through -ldflags. Development
// builds fall back to the module version and VCS settings recorded by the Go
// toolchain in the binary's build info.
package version
