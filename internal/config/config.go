// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SEALER_"

// Report source kinds accepted in [Source.Kind].
const (
	SourceFile     = "file"
	SourceSupabase = "supabase"
	SourcePostgres = "postgres"
)

// StructuredConfig is the top-level configuration container for the sealer
// command. It is populated by merging defaults, an optional JSON file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Source selects and configures where analysed reports are read from.
	Source Source `envPrefix:"SOURCE_"`

	// Storage holds the local export history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Viewer holds the guarded viewer settings.
	Viewer Viewer `envPrefix:"VIEWER_"`

	// Export holds defaults for sealing reports.
	Export Export `envPrefix:"EXPORT_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: SEALER_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Source configures the report source. Only the fields of the selected
// Kind are used.
type Source struct {
	// Kind is one of "file", "supabase" or "postgres".
	// Env: SEALER_SOURCE_KIND
	Kind string `env:"KIND"`

	// File is the path of a JSON report export, used by the "file" kind.
	// Env: SEALER_SOURCE_FILE
	File string `env:"FILE"`

	// SupabaseURL is the project URL (e.g. "https://xyz.supabase.co").
	// Env: SEALER_SOURCE_SUPABASE_URL
	SupabaseURL string `env:"SUPABASE_URL"`

	// SupabaseKey is the API key sent in the apikey and bearer headers.
	// Env: SEALER_SOURCE_SUPABASE_KEY
	SupabaseKey string `env:"SUPABASE_KEY"`

	// PostgresDSN is the connection string of the analysis database.
	// Env: SEALER_SOURCE_POSTGRES_DSN
	PostgresDSN string `env:"POSTGRES_DSN"`

	// RequestTimeout bounds a single request to the source.
	// Env: SEALER_SOURCE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Retries is how many times a transient failure is retried.
	// Env: SEALER_SOURCE_RETRIES
	Retries int `env:"RETRIES"`
}

// Storage holds the export history settings.
type Storage struct {
	// HistoryDB is the path of the SQLite export history database.
	// Env: SEALER_STORAGE_HISTORY_DB
	HistoryDB string `env:"HISTORY_DB"`
}

// Viewer holds the guarded viewer settings.
type Viewer struct {
	// Identity is the viewer name stamped into the watermark.
	// Env: SEALER_VIEWER_IDENTITY
	Identity string `env:"IDENTITY"`

	// Organisation is appended to the watermark.
	// Env: SEALER_VIEWER_ORGANISATION
	Organisation string `env:"ORGANISATION"`

	// Zoom is the initial zoom in percent, between 50 and 250.
	// Env: SEALER_VIEWER_ZOOM
	Zoom int `env:"ZOOM"`

	// IdleTimeout closes the viewer after this long without input.
	// Env: SEALER_VIEWER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`
}

// Export holds defaults for sealing reports.
type Export struct {
	// OutputDir is where sealed files are written.
	// Env: SEALER_EXPORT_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`

	// Workers bounds concurrent seals during a batch export.
	// Env: SEALER_EXPORT_WORKERS
	Workers int `env:"WORKERS"`

	// AnalystName and AnalystEmail are printed on the cover page.
	// Env: SEALER_EXPORT_ANALYST_NAME, SEALER_EXPORT_ANALYST_EMAIL
	AnalystName  string `env:"ANALYST_NAME"`
	AnalystEmail string `env:"ANALYST_EMAIL"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: SEALER_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File receives the log while the full-screen viewer runs.
	// Env: SEALER_LOG_FILE
	File string `env:"FILE"`
}

// Load builds the configuration from defaults, the JSON file, the
// environment and the flags in fs that were explicitly set. fs may be nil.
//
// Returns the merged *StructuredConfig or an error if any source fails to
// load or the result fails validation.
func Load(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withJSON(fs).
		withEnv().
		withFlags(fs).
		build()
}
