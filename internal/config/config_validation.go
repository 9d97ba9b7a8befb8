// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const (
	minZoom = 50
	maxZoom = 250
)

// validate checks the merged configuration. Source settings are checked
// separately by [Source.Validate] because commands such as view and inspect
// never read a source.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.Source.Kind {
	case SourceFile, SourceSupabase, SourcePostgres:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown kind %q", ErrInvalidSourceConfigs, cfg.Source.Kind))
	}
	if cfg.Source.Retries < 0 || cfg.Source.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative retries or timeout", ErrInvalidSourceConfigs))
	}

	if strings.TrimSpace(cfg.Storage.HistoryDB) == "" || strings.Contains(cfg.Storage.HistoryDB, ":memory:") {
		errs = append(errs, fmt.Errorf("%w: history database path required", ErrInvalidStorageConfigs))
	}

	if cfg.Viewer.Zoom < minZoom || cfg.Viewer.Zoom > maxZoom {
		errs = append(errs, fmt.Errorf("%w: zoom %d outside %d-%d", ErrInvalidViewerConfigs, cfg.Viewer.Zoom, minZoom, maxZoom))
	}
	if cfg.Viewer.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative idle timeout", ErrInvalidViewerConfigs))
	}

	if cfg.Export.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: workers must be at least 1", ErrInvalidExportConfigs))
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err))
	}

	return errors.Join(errs...)
}

// Validate checks that the settings of the selected kind are present.
func (s Source) Validate() error {
	switch s.Kind {
	case SourceFile:
		if s.File == "" {
			return fmt.Errorf("%w: file source needs --%s", ErrInvalidSourceConfigs, FlagSourceFile)
		}
	case SourceSupabase:
		if s.SupabaseURL == "" || s.SupabaseKey == "" {
			return fmt.Errorf("%w: supabase source needs a URL and an API key", ErrInvalidSourceConfigs)
		}
	case SourcePostgres:
		if s.PostgresDSN == "" {
			return fmt.Errorf("%w: postgres source needs a DSN", ErrInvalidSourceConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidSourceConfigs, s.Kind)
	}
	return nil
}
