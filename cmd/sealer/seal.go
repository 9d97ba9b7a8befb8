// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/report-sealer/internal/app"
	"github.com/MKhiriev/report-sealer/models"
)

// There is no unseal command: decrypted bytes only ever go to the viewer.
func newSealCmd(c *cli) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "seal <file>",
		Short: "Seal an arbitrary file into a .enc container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := c.wire(cmd.Context(), wireOptions{})
			if err != nil {
				return err
			}
			defer w.Close()

			password, err := newPasswordPrompt(c.in, c.errOut).NewPassword()
			if err != nil {
				return err
			}

			stop := startSpinner(c.errOut, "Sealing...")
			res, err := w.services.ExportService.SealFile(cmd.Context(), args[0], out, password)
			stop()
			if err != nil {
				return err
			}

			c.printResults([]models.ExportResult{res})
			warnf(c.out, "%s", app.MsgPasswordWarning)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <file>.enc)")
	return cmd
}
