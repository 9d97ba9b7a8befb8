// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

// State is the lifecycle state of a [Session].
type State int

const (
	Closed State = iota
	Opening
	Viewing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Viewing:
		return "viewing"
	default:
		return "unknown"
	}
}

// Visibility is the sub-state of a viewing session.
type Visibility int

const (
	Visible Visibility = iota
	Obscured
)

func (v Visibility) String() string {
	if v == Obscured {
		return "obscured"
	}
	return "visible"
}

// Event is delivered to session subscribers after every transition.
type Event struct {
	State      State
	Visibility Visibility
	Zoom       Zoom
}
