package contact

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Opener hands a mailto link to the system mail client
type Opener interface {
	Open(ctx context.Context, link string) error
}

// CommandOpener launches an external command with the link as its only argument
// The command is started and not waited on
type CommandOpener struct {
	Command string
}

// DefaultOpenCommand returns the desktop open helper for the running OS
func DefaultOpenCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

func (o CommandOpener) Open(ctx context.Context, link string) error {
	if o.Command == "" {
		return fmt.Errorf("open %s: no open command configured", link)
	}
	cmd := exec.CommandContext(ctx, o.Command, link)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open mail client: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// NopOpener discards links; used when no mail client should be launched
type NopOpener struct{}

func (NopOpener) Open(context.Context, string) error { return nil }
