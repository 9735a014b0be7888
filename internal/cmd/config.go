package cmd

import (
	"fmt"
	"strings"

	"github.com/dendrascience/tagfs/catalog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix prefixes the environment overrides of every flag, e.g.
// TAGFS_LOG_LEVEL or TAGFS_ALLOW_OTHER.
const envPrefix = "TAGFS"

const (
	flagExt        = "ext"
	flagLogLevel   = "log-level"
	flagFuseDebug  = "fuse-debug"
	flagAllowOther = "allow-other"
)

// Config is the resolved configuration of a command invocation.
type Config struct {
	Extensions []string
	LogLevel   string
	FuseDebug  bool
	AllowOther bool
}

// addScanFlags registers the flags shared by every command that builds a
// catalog.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice(flagExt, catalog.DefaultExtensions, "Audio file extension to index, matched exactly (repeatable)")
}

// addMountFlags registers the FUSE mount flags.
func addMountFlags(cmd *cobra.Command) {
	addScanFlags(cmd)
	cmd.Flags().Bool(flagFuseDebug, false, "Log every FUSE request at trace level")
	cmd.Flags().Bool(flagAllowOther, false, "Allow other users to access the mount")
}

// loadConfig resolves the command's flags, letting TAGFS_* environment
// variables override defaults but not explicitly set flags.
func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := Config{
		Extensions: v.GetStringSlice(flagExt),
		LogLevel:   v.GetString(flagLogLevel),
		FuseDebug:  v.GetBool(flagFuseDebug),
		AllowOther: v.GetBool(flagAllowOther),
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = catalog.DefaultExtensions
	}
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return Config{}, fmt.Errorf("invalid extension %q: must start with '.'", ext)
		}
	}
	return cfg, nil
}
