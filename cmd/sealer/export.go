// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/report-sealer/internal/app"
	"github.com/MKhiriev/report-sealer/internal/guard"
	"github.com/MKhiriev/report-sealer/internal/tui"
	"github.com/MKhiriev/report-sealer/models"
)

func newExportCmd(c *cli) *cobra.Command {
	var all, form bool

	cmd := &cobra.Command{
		Use:   "export [document-id...]",
		Short: "Seal analysed reports into password protected .enc files",
		Long: `Fetches the analysis of a document from the configured source, renders
the report and seals it with a password. With --all every listed document,
or every document id given, is sealed with the same password.`,
		Example: `  sealer export 4f6c2d0a-...
  sealer export --all --source postgres --postgres-dsn "$DSN" --out-dir reports`,
		Args: func(_ *cobra.Command, args []string) error {
			if !all && len(args) != 1 {
				return errors.New("export takes one document id, or --all")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), args, all, form)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "export every document the source lists, or every id given")
	cmd.Flags().BoolVar(&form, "form", false, "ask for the password in a full-screen form with a passphrase generator")
	return cmd
}

func (c *cli) runExport(ctx context.Context, ids []string, all, form bool) error {
	w, err := c.wire(ctx, wireOptions{source: true})
	if err != nil {
		return err
	}
	defer w.Close()

	password, err := c.exportPassword(ctx, w, form)
	if err != nil {
		return err
	}
	req := models.ExportRequest{
		DocumentIDs:  ids,
		Password:     password,
		Confirmation: password,
		OutputDir:    c.cfg.Export.OutputDir,
		AnalystName:  c.cfg.Export.AnalystName,
		AnalystEmail: c.cfg.Export.AnalystEmail,
	}

	stop := startSpinner(c.errOut, "Sealing...")
	var results []models.ExportResult
	if all {
		results, err = w.services.ExportService.ExportAll(ctx, req)
	} else {
		var res models.ExportResult
		res, err = w.services.ExportService.Export(ctx, req)
		if res.DocumentID != "" {
			results = []models.ExportResult{res}
		}
	}
	stop()

	c.printResults(results)
	if len(results) > 0 && results[0].FilePath != "" {
		warnf(c.out, "%s", app.MsgPasswordWarning)
	}
	return err
}

func (c *cli) exportPassword(ctx context.Context, w *wiring, form bool) (string, error) {
	if !form {
		return newPasswordPrompt(c.in, c.errOut).NewPassword()
	}

	ui := tui.New(w.services, w.codec, tui.Options{Zoom: guard.DefaultZoom}, c.logger)
	return ui.ExportPassword(ctx, "SET EXPORT PASSWORD")
}

func (c *cli) printResults(results []models.ExportResult) {
	for _, r := range results {
		if r.Err != nil {
			failf(c.out, "%s: %s", r.DocumentID, app.UserMessage(r.Err))
			c.logger.Err(r.Err).Str("document_id", r.DocumentID).Msg("export failed")
			continue
		}
		successf(c.out, "%s %s", highlightColor.Sprint(r.FilePath), mutedColor.Sprint(fmt.Sprintf("(%s)", humanSize(r.Size))))
	}
}
