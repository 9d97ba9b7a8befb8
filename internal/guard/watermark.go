// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"strings"
	"unicode/utf8"
)

const (
	ConfidentialMarker = "CONFIDENTIAL"

	watermarkSeparator = "  ·  "
	watermarkGap       = "     "

	// watermarkShift is how far each row is offset from the one above,
	// giving the tiles a diagonal slant.
	watermarkShift = 7

	// StampInterval is how many content rows [Watermark.Overlay] lets pass
	// between two full stamp rows.
	StampInterval = 4
)

// Watermark is the identity stamp tiled over every rendered page.
type Watermark struct {
	text string
	unit []rune
}

// NewWatermark builds the stamp "<identity>  ·  CONFIDENTIAL" with an
// optional organisation suffix. A blank identity is rendered as "unknown
// viewer" so the stamp is never anonymous by accident.
func NewWatermark(identity, organisation string) Watermark {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		identity = "unknown viewer"
	}

	parts := []string{identity, ConfidentialMarker}
	if org := strings.TrimSpace(organisation); org != "" {
		parts = append(parts, strings.ToUpper(org))
	}

	text := strings.Join(parts, watermarkSeparator)
	return Watermark{
		text: text,
		unit: []rune(text + watermarkGap),
	}
}

// Text is the single stamp instance.
func (w Watermark) Text() string {
	return w.text
}

// Period is the horizontal repeat distance of the tiling, in cells.
func (w Watermark) Period() int {
	return len(w.unit)
}

// MinCropWidth is the narrowest window that is guaranteed to contain one
// whole stamp on every row of the tiling.
func (w Watermark) MinCropWidth() int {
	return w.Period() + utf8.RuneCountInString(w.text) - 1
}

// Tile returns height rows of width cells covered by repeated stamps. Row r
// is shifted r*watermarkShift cells to the left of row 0, so stamps run
// diagonally down the page and every row carries the identity.
func (w Watermark) Tile(width, height int) []string {
	if width <= 0 || height <= 0 || len(w.unit) == 0 {
		return nil
	}

	rows := make([]string, height)
	for r := range height {
		rows[r] = string(w.row(r, width))
	}
	return rows
}

func (w Watermark) row(r, width int) []rune {
	period := len(w.unit)
	offset := (r * watermarkShift) % period
	line := make([]rune, width)
	for c := range width {
		line[c] = w.unit[(c+offset)%period]
	}
	return line
}

// MinCropHeight is the fewest consecutive overlaid rows that always include
// a full stamp row.
func (w Watermark) MinCropHeight() int {
	return StampInterval + 1
}

// Overlay lays the tiling under content, width cells wide. Every cell of a
// content row is kept as is, spaces included. The cells past the end of a
// row and all of a blank row take the tiling. A full stamp row is placed
// before the first content row and after every StampInterval content rows,
// so a crop of MinCropWidth by MinCropHeight cells holds a whole stamp.
//
// marked reports, per output row, which cells came from the tiling so a host
// can style them faintly.
func (w Watermark) Overlay(content []string, width int) (rows []string, marked [][]bool) {
	if width <= 0 || len(w.unit) == 0 {
		rows = append(rows, content...)
		for _, line := range content {
			marked = append(marked, make([]bool, utf8.RuneCountInString(line)))
		}
		return rows, marked
	}

	r := 0
	for i, line := range content {
		if i%StampInterval == 0 {
			rows = append(rows, string(w.row(r, width)))
			marked = append(marked, filled(width))
			r++
		}

		cells := []rune(strings.TrimRight(line, " "))
		n := len(cells)
		mask := make([]bool, max(width, n))
		if n < width {
			cells = append(cells, w.row(r, width)[n:]...)
			for c := n; c < width; c++ {
				mask[c] = true
			}
		}
		rows = append(rows, string(cells))
		marked = append(marked, mask)
		r++
	}

	return rows, marked
}

func filled(n int) []bool {
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}
	return mask
}
