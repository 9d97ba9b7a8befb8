// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

func newHistoryCmd(c *cli) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List sealed exports",
		Long:  "Lists past exports, newest first. Only ids, names, paths and sizes are recorded.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := c.wire(cmd.Context(), wireOptions{requireHistory: true})
			if err != nil {
				return err
			}
			defer w.Close()

			records, err := w.services.ExportService.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(c.out, mutedColor.Sprint("no exports recorded"))
				return nil
			}

			for _, r := range records {
				fmt.Fprintf(c.out, "%s  %s  %s  %s  %s\n",
					mutedColor.Sprint(r.ID),
					r.CreatedAt.Local().Format("2006-01-02 15:04"),
					padRight(r.DocumentName, 24),
					highlightColor.Sprint(r.FilePath),
					humanSize(r.ContainerSize))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "number of records to show")

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <record-id>",
		Short: "Remove a record from the history (the sealed file is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := c.wire(cmd.Context(), wireOptions{requireHistory: true})
			if err != nil {
				return err
			}
			defer w.Close()

			if err = w.services.ExportService.ForgetExport(cmd.Context(), args[0]); err != nil {
				return err
			}
			successf(c.out, "removed %s", args[0])
			return nil
		},
	})
	return cmd
}
