package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/techfolio/contact"
)

func newMailtoCmd(root *rootOptions) *cobra.Command {
	var (
		msg  contact.Message
		to   string
		open bool
	)
	cmd := &cobra.Command{
		Use:   "mailto",
		Short: "Print the mailto link the contact form would compose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg = contact.Message{
				Name:    strings.TrimSpace(msg.Name),
				Email:   strings.TrimSpace(msg.Email),
				Subject: strings.TrimSpace(msg.Subject),
				Body:    strings.TrimSpace(msg.Body),
			}
			if err := contact.Validate(msg); err != nil {
				return err
			}

			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			addr := to
			if addr == "" {
				doc, err := loadContent(cfg)
				if err != nil {
					return err
				}
				addr = recipient(cfg, doc)
			}

			link := contact.BuildMailto(addr, msg)
			fmt.Fprintln(cmd.OutOrStdout(), link)
			if open {
				return newOpener(cfg).Open(cmd.Context(), link)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "recipient, profile email when empty")
	cmd.Flags().StringVar(&msg.Name, "name", "", "sender name")
	cmd.Flags().StringVar(&msg.Email, "email", "", "sender email")
	cmd.Flags().StringVar(&msg.Subject, "subject", "", "subject line")
	cmd.Flags().StringVar(&msg.Body, "message", "", "message body")
	cmd.Flags().BoolVar(&open, "open", false, "also hand the link to the configured opener")
	return cmd
}
