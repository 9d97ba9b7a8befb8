// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig         = "config"
	FlagSource         = "source"
	FlagSourceFile     = "source-file"
	FlagSupabaseURL    = "supabase-url"
	FlagSupabaseKey    = "supabase-key"
	FlagPostgresDSN    = "postgres-dsn"
	FlagRequestTimeout = "request-timeout"
	FlagRetries        = "retries"
	FlagHistoryDB      = "history-db"
	FlagIdentity       = "identity"
	FlagOrganisation   = "organisation"
	FlagZoom           = "zoom"
	FlagIdleTimeout    = "idle-timeout"
	FlagOutputDir      = "out-dir"
	FlagWorkers        = "workers"
	FlagAnalystName    = "analyst-name"
	FlagAnalystEmail   = "analyst-email"
	FlagLogLevel       = "log-level"
	FlagLogFile        = "log-file"
)

// RegisterFlags adds every configuration flag to fs. Defaults are left zero
// so that only flags the user sets take part in the merge.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagSource, "", "report source: file, supabase or postgres")
	fs.String(FlagSourceFile, "", "JSON report export used by the file source")
	fs.String(FlagSupabaseURL, "", "Supabase project URL")
	fs.String(FlagSupabaseKey, "", "Supabase API key")
	fs.String(FlagPostgresDSN, "", "analysis database DSN")
	fs.Duration(FlagRequestTimeout, 0, "source request timeout (e.g. 30s)")
	fs.Int(FlagRetries, 0, "retries for transient source failures")
	fs.String(FlagHistoryDB, "", "export history database path")
	fs.String(FlagIdentity, "", "viewer identity stamped into the watermark")
	fs.String(FlagOrganisation, "", "organisation stamped into the watermark")
	fs.Int(FlagZoom, 0, "initial viewer zoom in percent (50-250)")
	fs.Duration(FlagIdleTimeout, 0, "close the viewer after this long without input")
	fs.String(FlagOutputDir, "", "directory sealed reports are written to")
	fs.Int(FlagWorkers, 0, "concurrent seals during a batch export")
	fs.String(FlagAnalystName, "", "analyst name printed on the cover page")
	fs.String(FlagAnalystEmail, "", "analyst email printed on the cover page")
	fs.String(FlagLogLevel, "", "log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "log file used while the viewer runs")
}

// fromFlags collects the flags of fs the user explicitly set.
func fromFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	strs := map[string]*string{
		FlagConfig:       &cfg.JSONFilePath,
		FlagSource:       &cfg.Source.Kind,
		FlagSourceFile:   &cfg.Source.File,
		FlagSupabaseURL:  &cfg.Source.SupabaseURL,
		FlagSupabaseKey:  &cfg.Source.SupabaseKey,
		FlagPostgresDSN:  &cfg.Source.PostgresDSN,
		FlagHistoryDB:    &cfg.Storage.HistoryDB,
		FlagIdentity:     &cfg.Viewer.Identity,
		FlagOrganisation: &cfg.Viewer.Organisation,
		FlagOutputDir:    &cfg.Export.OutputDir,
		FlagAnalystName:  &cfg.Export.AnalystName,
		FlagAnalystEmail: &cfg.Export.AnalystEmail,
		FlagLogLevel:     &cfg.Log.Level,
		FlagLogFile:      &cfg.Log.File,
	}
	ints := map[string]*int{
		FlagRetries: &cfg.Source.Retries,
		FlagZoom:    &cfg.Viewer.Zoom,
		FlagWorkers: &cfg.Export.Workers,
	}
	durations := map[string]*time.Duration{
		FlagRequestTimeout: &cfg.Source.RequestTimeout,
		FlagIdleTimeout:    &cfg.Viewer.IdleTimeout,
	}

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch {
		case strs[f.Name] != nil:
			*strs[f.Name], err = fs.GetString(f.Name)
		case ints[f.Name] != nil:
			*ints[f.Name], err = fs.GetInt(f.Name)
		case durations[f.Name] != nil:
			*durations[f.Name], err = fs.GetDuration(f.Name)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return cfg, nil
}

func jsonPath(fs *pflag.FlagSet) string {
	if fs != nil {
		if f := fs.Lookup(FlagConfig); f != nil && f.Changed {
			return f.Value.String()
		}
	}
	return os.Getenv(EnvPrefix + "CONFIG")
}
