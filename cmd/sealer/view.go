// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/report-sealer/internal/guard"
	"github.com/MKhiriev/report-sealer/internal/tui"
)

var errNoTerminal = fmt.Errorf("%w: input and output must be a terminal", guard.ErrCapability)

func newViewCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "view <file.enc>",
		Short: "Unlock a sealed report in the guarded viewer",
		Long: `Opens a sealed report full screen. Every page carries a watermark with
your identity, printing and saving shortcuts are swallowed, and the page is
hidden while the terminal is out of focus. Nothing decrypted is written to
disk. These measures discourage casual copying; they do not stop a
determined viewer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errNoTerminal
			}

			w, err := c.wire(cmd.Context(), wireOptions{})
			if err != nil {
				return err
			}
			defer w.Close()

			ui := tui.New(w.services, w.codec, tui.Options{
				Identity:     c.cfg.Viewer.Identity,
				Organisation: c.cfg.Viewer.Organisation,
				Zoom:         guard.Zoom(c.cfg.Viewer.Zoom),
				IdleTimeout:  c.cfg.Viewer.IdleTimeout,
			}, c.logger)

			reason, err := ui.View(cmd.Context(), args[0])
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, mutedColor.Sprint("viewer "+reason))
			return nil
		},
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
