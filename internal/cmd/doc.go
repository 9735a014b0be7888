// Package cmd provides the command-line interface implementation for tagfs.
//
// It uses the Cobra library for command structure and Fang for styling.
// Flags are resolved through Viper so that every flag can also be given as a
// TAGFS_* environment variable.
//
// The package is organized into the following commands:
//   - root: Main command coordinator; with two arguments it mounts
//   - mount: FUSE filesystem mounting
//   - scan: Catalog statistics without mounting
//   - seed: Tagged test library generation
package cmd
