package cmd

import (
	"context"
	"io"

	"github.com/dendrascience/tagfs/catalog"
	"github.com/dendrascience/tagfs/util"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewScanCmd creates and returns the scan subcommand for the tagfs CLI.
// It builds the catalog of a source tree and reports it without mounting.
func NewScanCmd() *cobra.Command {
	var showValues bool

	cmd := &cobra.Command{
		Use:   "scan SOURCE_DIR",
		Short: "Print what a mount of SOURCE_DIR would contain",
		Long: `Scan a directory tree exactly as mount would and print the number of
artists, genres, years, tracks and aliases found.

With --values, every tag value of every category is listed together with
the number of tracks carrying it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := setupLogging(cmd.ErrOrStderr(), cfg.LogLevel, false); err != nil {
				return err
			}
			return runScan(cmd.Context(), cmd.OutOrStdout(), args[0], cfg, showValues)
		},
	}

	addScanFlags(cmd)
	cmd.Flags().BoolVar(&showValues, "values", false, "List every category value and its track count")

	return cmd
}

func runScan(ctx context.Context, out io.Writer, source string, cfg Config, showValues bool) error {
	if err := util.ValidateDirectory(source); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cat, err := catalog.NewBuilder(nil, catalog.WithExtensions(cfg.Extensions...)).Build(ctx, source)
	if err != nil {
		return err
	}

	renderStats(out, cat)
	if showValues {
		renderValues(out, cat)
	}
	return nil
}

func renderStats(out io.Writer, cat *catalog.Catalog) {
	stats := cat.Stats()

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(cat.Root())
	t.AppendHeader(table.Row{"Artists", "Genres", "Years", "Tracks", "Aliases"})
	t.AppendRow(table.Row{stats.Artists, stats.Genres, stats.Years, stats.Tracks, stats.Aliases})
	t.Render()
}

func renderValues(out io.Writer, cat *catalog.Catalog) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Category", "Value", "Tracks"})
	for _, c := range catalog.Categories {
		for _, value := range cat.Values(c) {
			t.AppendRow(table.Row{c.Name, value, len(cat.Members(c, value))})
		}
		t.AppendSeparator()
	}
	t.Render()
}
