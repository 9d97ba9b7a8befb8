// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

//go:generate mockgen -source=platform.go -destination=../mock/platform_mock.go -package=mock

// Restore undoes one acquired capability. Sessions call each Restore once.
type Restore func()

// Platform exposes the host hooks a [Session] overrides while it is viewing.
//
// Each method installs its override and returns the handle that removes it.
// An error means the capability could not be acquired; the session then
// refuses to enter Viewing.
type Platform interface {
	// SuppressPrint replaces the host print affordance with a refusal.
	SuppressPrint() (Restore, error)

	// SuppressShortcuts swallows the print and save key chords while the
	// viewer has focus.
	SuppressShortcuts() (Restore, error)

	// SuppressContextMenu disables the context menu and native drag or
	// selection over the content area.
	SuppressContextMenu() (Restore, error)

	// OnVisibilityChange registers fn to be called with hidden=true when the
	// host loses visibility and hidden=false when it regains it.
	OnVisibilityChange(fn func(hidden bool)) (Restore, error)
}
