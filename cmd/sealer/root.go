// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/report-sealer/internal/config"
	"github.com/MKhiriev/report-sealer/internal/logger"
	"github.com/MKhiriev/report-sealer/models"
)

const role = "report-sealer"

// cli carries what every subcommand shares. cfg and logger are set in the
// root's PersistentPreRunE.
type cli struct {
	buildInfo models.AppBuildInfo
	cfg       *config.StructuredConfig
	logger    *logger.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newCLI(info models.AppBuildInfo) *cli {
	return &cli{
		buildInfo: info,
		logger:    logger.Nop(),
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "sealer",
		Short: "Seal analysed reports and view them in a guarded terminal viewer",
		Long: `sealer exports analysed compliance reports as password protected .enc
files (PBKDF2-SHA256 and AES-256-GCM) and opens them again in a full-screen
viewer that watermarks every page and hides content while the terminal is
out of focus.

Decrypted reports are never written to disk.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newExportCmd(c),
		newViewCmd(c),
		newSealCmd(c),
		newInspectCmd(c),
		newHistoryCmd(c),
		newVersionCmd(c),
	)
	return root
}

// init loads the configuration from the parsed flags of cmd and opens the
// log file.
func (c *cli) init(cmd *cobra.Command) error {
	c.out = cmd.OutOrStdout()
	c.errOut = cmd.ErrOrStderr()
	c.in = cmd.InOrStdin()

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	c.cfg = cfg

	log, err := logger.NewFileLogger(role, cfg.Log.File, cfg.Log.Level)
	if err != nil {
		warnf(c.errOut, "logging disabled: %v", err)
	}
	c.logger = log
	c.logger.Debug().Str("command", cmd.Name()).Str("source", cfg.Source.Kind).Msg("starting")
	return nil
}
