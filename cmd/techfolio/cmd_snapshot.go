package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/techfolio/app"
)

const (
	defaultSnapshotCols = 100
	defaultSnapshotRows = 30
)

func newSnapshotCmd(root *rootOptions) *cobra.Command {
	opts := app.SnapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames without a terminal and print the last one",
		Long: `snapshot steps the page on a simulated clock and writes the final frame
as text. Size defaults to the current terminal, or 100x30 when stdout is
not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			if logFile := setupLogging(cfg.Log.Dir, cfg.Log.Level, debugLogging(cfg.Log.Level)); logFile != nil {
				defer logFile.Close()
			}
			doc, err := loadContent(cfg)
			if err != nil {
				return err
			}

			cols, rows := snapshotSize(opts.Cols, opts.Rows)
			opts.Cols, opts.Rows = cols, rows
			return app.Snapshot(cfg, doc, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&opts.Cols, "cols", 0, "columns, terminal width when 0")
	cmd.Flags().IntVar(&opts.Rows, "rows", 0, "rows, terminal height when 0")
	cmd.Flags().IntVar(&opts.Frames, "frames", 60, "frames to step before printing")
	cmd.Flags().StringVar(&opts.Section, "section", "", "scroll to this section anchor first")
	cmd.Flags().BoolVar(&opts.ANSI, "ansi", false, "include 24-bit color escapes")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "random seed for the background")
	return cmd
}

// snapshotSize fills unset dimensions from the terminal, then from the defaults
func snapshotSize(cols, rows int) (int, int) {
	if cols > 0 && rows > 0 {
		return cols, rows
	}
	tc, tr := defaultSnapshotCols, defaultSnapshotRows
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			tc, tr = w, h
		}
	}
	if cols <= 0 {
		cols = tc
	}
	if rows <= 0 {
		rows = tr
	}
	return cols, rows
}
