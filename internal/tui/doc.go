// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal host of report-sealer.
//
// It holds two bubbletea programs: the guarded viewer, which unlocks a
// sealed report and shows it through a [guard.Session], and the export
// password form. The terminal implementation of [guard.Platform] lives here
// too. Terminal hooks are deterrents; a user with a screen reader, a
// terminal log or a camera can still copy what is shown.
package tui
