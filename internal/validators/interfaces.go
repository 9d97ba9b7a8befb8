// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks export requests and export passwords before any
// expensive work starts.
//
// Validation is field-scoped: callers may pass field names to Validate to
// check only part of a value, which the interactive export form uses to
// validate inputs as they are typed.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
