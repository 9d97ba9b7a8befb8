// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import "fmt"

// Zoom is a display scale in whole percent. It never touches the decrypted
// bytes; hosts translate it into layout.
type Zoom int

const (
	MinZoom     Zoom = 50
	MaxZoom     Zoom = 250
	DefaultZoom Zoom = 100
	ZoomStep    Zoom = 15
)

// ClampZoom bounds z to [MinZoom, MaxZoom].
func ClampZoom(z Zoom) Zoom {
	switch {
	case z < MinZoom:
		return MinZoom
	case z > MaxZoom:
		return MaxZoom
	default:
		return z
	}
}

// In returns the next zoom level up, clamped.
func (z Zoom) In() Zoom { return ClampZoom(z + ZoomStep) }

// Out returns the next zoom level down, clamped.
func (z Zoom) Out() Zoom { return ClampZoom(z - ZoomStep) }

// WrapWidth scales a base line width inversely with the zoom level, so a
// higher zoom shows fewer, larger-spaced columns. The result is at least 1.
func (z Zoom) WrapWidth(base int) int {
	z = ClampZoom(z)
	w := base * int(DefaultZoom) / int(z)
	if w < 1 {
		return 1
	}
	return w
}

// LineGap is the number of blank lines a host inserts between text lines at
// this zoom level.
func (z Zoom) LineGap() int {
	switch z = ClampZoom(z); {
	case z >= 205:
		return 2
	case z >= 145:
		return 1
	default:
		return 0
	}
}

func (z Zoom) String() string {
	return fmt.Sprintf("%d%%", int(z))
}
