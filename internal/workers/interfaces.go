// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs independent jobs with bounded concurrency.
//
// It is used by batch export, where every report is sealed on its own and one
// failure must not stop the rest.
package workers

import "context"

// Job is one unit of work. It should return promptly once ctx is done.
type Job func(ctx context.Context) error
