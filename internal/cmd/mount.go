package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"github.com/dendrascience/tagfs/catalog"
	"github.com/dendrascience/tagfs/tagfs"
	"github.com/dendrascience/tagfs/util"
	"github.com/dendrascience/tagfs/version"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewMountCmd creates and returns the mount subcommand for the tagfs CLI.
func NewMountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mount SOURCE_DIR MOUNTPOINT",
		Short: "Mount a tagfs filesystem",
		Long: `Scan SOURCE_DIR for audio files and mount the tag view at MOUNTPOINT.

SOURCE_DIR is the directory tree holding the audio files.
MOUNTPOINT is an existing directory where the filesystem will be mounted.
The command blocks until the filesystem is unmounted or interrupted.`,
		Args: mountArgs,
		RunE: runMount,
	}
	addMountFlags(cmd)
	return cmd
}

func mountArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MinimumNArgs(2)(cmd, args); err != nil {
		return fmt.Errorf("%w\nusage: %s", err, cmd.UseLine())
	}
	return nil
}

// validateMountPaths checks the startup arguments. Any error is fatal.
func validateMountPaths(source, mountpoint string) error {
	if err := util.ValidateDirectory(source); err != nil {
		return fmt.Errorf("source directory is invalid or doesn't exist: %w", err)
	}
	if err := util.ValidateDirectory(mountpoint); err != nil {
		return fmt.Errorf("mount point is invalid or doesn't exist: %w", err)
	}
	return nil
}

// mountOptions returns the FUSE mount options for cfg. The mount is not
// flagged read-only so that write opens reach File.Open and fail with EACCES
// rather than EROFS.
func mountOptions(cfg Config) []fuse.MountOption {
	options := []fuse.MountOption{
		fuse.FSName("tagfs"),
		fuse.Subtype("tagfs"),
	}
	if cfg.AllowOther {
		options = append(options, fuse.AllowOther())
	}
	return options
}

func runMount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupLogging(cmd.ErrOrStderr(), cfg.LogLevel, cfg.FuseDebug); err != nil {
		return err
	}

	source, mountpoint := args[0], args[1]
	if err := validateMountPaths(source, mountpoint); err != nil {
		return err
	}
	if util.PathsOverlap(source, mountpoint) {
		log.Warn().Str("source", source).Str("mountpoint", mountpoint).
			Msg("mount point overlaps the source directory")
	}

	log.Info().Msgf("tagfs %s starting...", version.GetFullVersion())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cat, err := catalog.NewBuilder(nil, catalog.WithExtensions(cfg.Extensions...)).Build(ctx, source)
	if err != nil {
		return err
	}
	filesystem := tagfs.NewFS(cat, nil)

	log.Info().Str("mountpoint", mountpoint).Msg("mounting tag view")
	c, err := fuse.Mount(mountpoint, mountOptions(cfg)...)
	if err != nil {
		return fmt.Errorf("failed to mount %s: %w", mountpoint, err)
	}
	defer c.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		sig, ok := <-sigChan
		if !ok {
			return
		}
		log.Info().Str("signal", sig.String()).Msg("received signal, unmounting...")
		if err := fuse.Unmount(mountpoint); err != nil {
			log.Error().Err(err).Msg("unmount failed")
		}
	}()

	log.Info().Msgf("tagfs %s mounted at %s (source: %s)", version.GetVersion(), mountpoint, cat.Root())
	if err := fs.Serve(c, filesystem); err != nil {
		return fmt.Errorf("serving %s: %w", mountpoint, err)
	}
	log.Info().Msg("shutdown complete")
	return nil
}
