// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import "errors"

var (
	// ErrNotClosed is returned by Open and Present on a session that is
	// already opening or viewing.
	ErrNotClosed = errors.New("session is not closed")

	// ErrNotViewing is returned when page content is requested outside
	// the Viewing state.
	ErrNotViewing = errors.New("session is not viewing")

	// ErrObscured is returned when page content is requested while the
	// host is hidden.
	ErrObscured = errors.New("content is obscured while the host is hidden")

	// ErrUnmounted is returned by every open attempt after Unmount.
	ErrUnmounted = errors.New("session is unmounted")

	// ErrCancelled is returned by a pending open when Close ran first.
	ErrCancelled = errors.New("session closed while opening")

	ErrPageOutOfRange = errors.New("page out of range")
	ErrEmptyDocument  = errors.New("document has no pages")
	ErrUndecodable    = errors.New("document is not valid UTF-8 text")

	// ErrCapability wraps a platform hook that could not be installed.
	ErrCapability = errors.New("platform capability unavailable")
)
