// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing wording of report-sealer.
//
// Error values carry detail for logs; the Msg* strings are what a person
// sees. [UserMessage] maps an error chain to one of them so the command line
// and the viewer word the same failure the same way.
package app
