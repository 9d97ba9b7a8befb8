// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the sealer command.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file (path from SEALER_CONFIG or --config)
//  3. Environment variables with the SEALER_ prefix
//  4. Command-line flags registered with [RegisterFlags]
//
// The main entry point is [Load].
package config
