package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/techfolio/config"
)

// Version is set via ldflags at build time
var Version = "dev"

// rootOptions are the persistent flags shared by every subcommand
type rootOptions struct {
	configPath string
	contentDir string
	color      string
	debug      bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	run := newRunCmd(opts)

	rootCmd := &cobra.Command{
		Use:   "techfolio",
		Short: "Terminal portfolio page with an animated network background",
		Long: `techfolio renders a personal portfolio in the terminal: a navbar,
a typed role line, project and blog cards that reveal as you scroll and
a contact form that composes a mailto link, all drawn over drifting
nodes, proximity lines and pulsing rings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          run.RunE,
	}
	rootCmd.Flags().AddFlagSet(run.Flags())

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().StringVar(&opts.contentDir, "content", "", "content directory (profile.yaml and sections/*.md), built-in when empty")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "", "color mode: auto, truecolor, 256")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write a debug log to the log directory")

	rootCmd.AddCommand(
		run,
		newSnapshotCmd(opts),
		newMailtoCmd(opts),
		newOutboxCmd(opts),
		newInitCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}
