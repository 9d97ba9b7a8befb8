// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"os/user"
	"path/filepath"
	"time"
)

const (
	appDirName = "report-sealer"

	DefaultOrganisation   = "Fortiv Solutions"
	DefaultZoom           = 100
	DefaultIdleTimeout    = 8 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetries        = 2
	DefaultWorkers        = 4
	DefaultLogLevel       = "info"
)

func defaults() *StructuredConfig {
	dir := appDir()
	return &StructuredConfig{
		Source: Source{
			Kind:           SourceFile,
			RequestTimeout: DefaultRequestTimeout,
			Retries:        DefaultRetries,
		},
		Storage: Storage{
			HistoryDB: filepath.Join(dir, "history.db"),
		},
		Viewer: Viewer{
			Identity:     currentUser(),
			Organisation: DefaultOrganisation,
			Zoom:         DefaultZoom,
			IdleTimeout:  DefaultIdleTimeout,
		},
		Export: Export{
			OutputDir: ".",
			Workers:   DefaultWorkers,
		},
		Log: Log{
			Level: DefaultLogLevel,
			File:  filepath.Join(dir, "sealer.log"),
		},
	}
}

// appDir is the per-user directory holding the history database and log.
func appDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, appDirName)
}

func currentUser() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
