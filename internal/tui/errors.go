// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit is returned when the user leaves a screen without finishing
// it.
var ErrUserQuit = errors.New("quit by user")
