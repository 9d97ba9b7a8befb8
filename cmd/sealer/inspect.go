// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/report-sealer/internal/crypto"
	"github.com/MKhiriev/report-sealer/internal/service"
)

func newInspectCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.enc>",
		Short: "Print the frame of a sealed file without decrypting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := service.NewOpenService(c.logger).Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rows := [][2]string{
				{"size", fmt.Sprintf("%d bytes", info.Size)},
				{"kdf", fmt.Sprintf("PBKDF2-SHA256, %d iterations", crypto.Iterations)},
				{"cipher", "AES-256-GCM"},
				{"salt", info.SaltHex},
				{"nonce", info.NonceHex},
				{"ciphertext", fmt.Sprintf("%d bytes (tag %d)", info.CiphertextLen, crypto.TagSize)},
				{"payload", fmt.Sprintf("%d bytes", info.PayloadLen)},
			}
			for _, r := range rows {
				fmt.Fprintf(c.out, "%s %s\n", mutedColor.Sprint(padRight(r[0], 11)), r[1])
			}
			return nil
		},
	}
}
