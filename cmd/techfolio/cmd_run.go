package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/techfolio/app"
	"github.com/lixenwraith/techfolio/audio"
	"github.com/lixenwraith/techfolio/config"
	"github.com/lixenwraith/techfolio/outbox"
	"github.com/lixenwraith/techfolio/render"
)

type runOptions struct {
	profile    string
	profileDir string
	sound      bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the portfolio in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.profile, "profile", "", "record a profile: cpu, mem, block, trace")
	cmd.Flags().StringVar(&opts.profileDir, "profile-dir", ".", "directory for profile output")
	cmd.Flags().BoolVar(&opts.sound, "sound", false, "enable interface sounds")
	return cmd
}

func runPage(cmd *cobra.Command, root *rootOptions, opts *runOptions) error {
	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("sound") {
		cfg.Sound.Enabled = opts.sound
	}

	if logFile := setupLogging(cfg.Log.Dir, cfg.Log.Level, debugLogging(cfg.Log.Level)); logFile != nil {
		defer logFile.Close()
	}
	slog.Info(greeting, "version", Version)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use `techfolio snapshot` for headless output")
	}

	doc, err := loadContent(cfg)
	if err != nil {
		return err
	}

	if opts.profile != "" {
		mode, err := profileMode(opts.profile)
		if err != nil {
			return err
		}
		defer profile.Start(mode, profile.ProfilePath(opts.profileDir), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	store, closeStore := openOutbox(cfg)
	defer closeStore()

	player := audio.NewPlayer(audio.Config{Enabled: cfg.Sound.Enabled, Volume: cfg.Sound.Volume})
	if err := player.Init(); err != nil {
		slog.Warn("continuing without sound", "error", err)
	}
	defer player.Close()

	screen, err := app.NewScreen(cfg.Color)
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(ctx, cfg, doc, render.ScreenFlusher{Screen: screen}, app.Services{
		Opener: newOpener(cfg),
		Outbox: store,
		Player: player,
	})
	err = a.Run(screen)
	slog.Info("session ended", a.Stats().Attrs()...)
	return err
}

// openOutbox opens the configured outbox; a failure is logged and the page runs without one
func openOutbox(cfg *config.Config) (*outbox.Store, func()) {
	if cfg.OutboxPath == "" {
		return nil, func() {}
	}
	db, err := outbox.Open(cfg.OutboxPath)
	if err != nil {
		slog.Warn("outbox unavailable", "path", cfg.OutboxPath, "error", err)
		return nil, func() {}
	}
	return outbox.NewStore(db), func() { db.Close() }
}

func profileMode(name string) (func(*profile.Profile), error) {
	switch name {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "block":
		return profile.BlockProfile, nil
	case "trace":
		return profile.TraceProfile, nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", name)
	}
}
