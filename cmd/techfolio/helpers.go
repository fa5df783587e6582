package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/techfolio/config"
	"github.com/lixenwraith/techfolio/contact"
	"github.com/lixenwraith/techfolio/content"
)

// loadConfig reads the config file and environment, then applies flags the user set
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.ContentDir = opts.contentDir
	}
	if flags.Changed("color") {
		cfg.Color = config.ColorMode(opts.color)
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadContent reads the configured content directory, or the built-in content when unset
func loadContent(cfg *config.Config) (*content.Document, error) {
	m := content.NewDefaultManager()
	if cfg.ContentDir != "" {
		m = content.NewDirManager(cfg.ContentDir)
	}
	doc, err := m.Load()
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return doc, nil
}

// newOpener maps the contact.opener setting to an Opener
func newOpener(cfg *config.Config) contact.Opener {
	switch cfg.Contact.Opener {
	case config.OpenerNone:
		return contact.NopOpener{}
	case "":
		return contact.CommandOpener{Command: contact.DefaultOpenCommand()}
	default:
		return contact.CommandOpener{Command: cfg.Contact.Opener}
	}
}

// recipient returns the configured recipient, falling back to the profile email
func recipient(cfg *config.Config, doc *content.Document) string {
	if cfg.Contact.Recipient != "" {
		return cfg.Contact.Recipient
	}
	return doc.Profile.Email
}
