package cmd

import (
	"github.com/dendrascience/tagfs/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the tagfs CLI.
// Invoked with two arguments it mounts, like the mount subcommand.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tagfs SOURCE_DIR MOUNTPOINT",
		Short: "tagfs - A read-only FUSE view of a music tree organized by tags",
		Long: `tagfs mounts a read-only view of a directory of audio files, reorganized by
their embedded tags without copying or moving anything:

  /Artists/<artist>/<file>
  /Genres/<genre>/<file>
  /Years/<year>/<file>

The source tree is scanned once at startup. Changes made to it afterwards are
not visible until tagfs is restarted.

Use subcommands to perform different operations:
  - mount: Mount a tagfs filesystem (the default with two arguments)
  - scan: Print what a mount would contain without mounting
  - seed: Generate a tagged test library`,
		Version: version.GetFullVersion(),
		Args:    mountArgs,
		RunE:    runMount,
	}
	rootCmd.PersistentFlags().String(flagLogLevel, "info", "Log level (trace, debug, info, warn, error)")
	addMountFlags(rootCmd)

	groupUtilities := "utilities"
	groupFilesystem := "filesystem"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFilesystem,
		Title: "Filesystem Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	mountCmd := NewMountCmd()
	scanCmd := NewScanCmd()
	seedCmd := NewSeedCmd()

	mountCmd.GroupID = groupFilesystem
	scanCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
