// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command sealer exports analysed compliance reports as password sealed
// files and shows them in a guarded terminal viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/report-sealer/internal/app"
	"github.com/MKhiriev/report-sealer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// A signal that arrives outside the context below, or a second one,
	// still wipes every locked buffer before the process dies.
	memguard.CatchInterrupt()

	code := runMain()
	memguard.Purge()
	os.Exit(code)
}

func runMain() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(newCLI(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorColor.Sprint("✗"), app.UserMessage(err))
		return 1
	}
	return 0
}
