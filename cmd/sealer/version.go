// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/report-sealer/internal/service"
)

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := service.NewAppInfoService(c.buildInfo, c.logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, info.GetBuildInfo(cmd.Context()).String())
			return nil
		},
	}
}
