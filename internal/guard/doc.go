// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard implements the presentation policy applied to a decrypted
// report while it is on screen.
//
// A [Session] owns the decrypted bytes for the lifetime of one viewing. It
// moves through three states:
//
//	Closed -> Opening -> Viewing -> Closed
//	          Opening -> Closed        (decryption or decode failure)
//
// While Viewing, the host visibility drives a sub-state Visible <-> Obscured.
// Page content is only handed out while Visible.
//
// Host hooks (print, shortcuts, context menu, visibility) are reached through
// the [Platform] capability interface. Every hook is acquired on entering
// Viewing and returns a [Restore] handle that is called exactly once when the
// session closes or unmounts.
//
// These protections deter casual copying. They are not a security boundary:
// anyone controlling the host process can bypass them.
package guard
