// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [Load] and [Source.Validate]. Several may be
// joined into one error.
var (
	// ErrInvalidSourceConfigs indicates an unknown source kind or a missing
	// setting the selected kind needs.
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidStorageConfigs indicates an unusable history database path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidViewerConfigs indicates a zoom outside 50-250 or a negative
	// idle timeout.
	ErrInvalidViewerConfigs = errors.New("invalid viewer configuration")
	// ErrInvalidExportConfigs indicates a non-positive worker count.
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
