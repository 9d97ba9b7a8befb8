// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/MKhiriev/report-sealer/internal/guard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatermark_Text(t *testing.T) {
	assert.Equal(t, "a@b.c  ·  CONFIDENTIAL", guard.NewWatermark("a@b.c", "").Text())
	assert.Equal(t, "a@b.c  ·  CONFIDENTIAL  ·  ACME", guard.NewWatermark(" a@b.c ", "acme").Text())
	assert.Equal(t, "unknown viewer  ·  CONFIDENTIAL", guard.NewWatermark("  ", "").Text())
}

func TestWatermark_TileDimensions(t *testing.T) {
	w := guard.NewWatermark("analyst@example.com", "")
	rows := w.Tile(80, 24)

	require.Len(t, rows, 24)
	for _, r := range rows {
		assert.Equal(t, 80, utf8.RuneCountInString(r))
	}
	assert.Nil(t, w.Tile(0, 10))
	assert.Nil(t, w.Tile(10, 0))
}

func TestWatermark_RowsAreShifted(t *testing.T) {
	w := guard.NewWatermark("analyst@example.com", "")
	rows := w.Tile(120, 3)
	assert.NotEqual(t, rows[0], rows[1])
	assert.NotEqual(t, rows[1], rows[2])
}

// Any crop at least MinCropWidth wide holds a whole stamp on every row.
func TestWatermark_AnyCropContainsStamp(t *testing.T) {
	w := guard.NewWatermark("analyst@example.com", "Fortiv Solutions")
	width, height := 3*w.Period(), 12
	rows := w.Tile(width, height)
	crop := w.MinCropWidth()

	for r, row := range rows {
		cells := []rune(row)
		for x := 0; x+crop <= width; x++ {
			window := string(cells[x : x+crop])
			if !strings.Contains(window, w.Text()) {
				t.Fatalf("row %d window at %d has no stamp: %q", r, x, window)
			}
		}
	}
}

func TestOverlay_KeepsContentCells(t *testing.T) {
	w := guard.NewWatermark("a@b.c", "")
	width := w.Period()

	rows, marked := w.Overlay([]string{"ab  c   ", "", "Page one body"}, width)
	tile := w.Tile(width, 4)

	require.Len(t, rows, 4)
	assert.Equal(t, tile[0], rows[0], "a stamp row leads the content")
	assert.Equal(t, "ab  c"+string([]rune(tile[1])[5:]), rows[1])
	assert.Equal(t, tile[2], rows[2], "blank rows take the tiling")
	assert.True(t, strings.HasPrefix(rows[3], "Page one body"))

	assert.Equal(t, []bool{false, false, false, false, false}, marked[1][:5])
	for c := 5; c < width; c++ {
		assert.True(t, marked[1][c], "cell %d past the end is tiled", c)
	}
	assert.NotContains(t, marked[0], false)
}

func TestOverlay_StampRowEveryInterval(t *testing.T) {
	w := guard.NewWatermark("a@b.c", "")
	content := make([]string, 3*guard.StampInterval)
	for i := range content {
		content[i] = strings.Repeat("x", 40)
	}

	rows, _ := w.Overlay(content, 40)

	require.Len(t, rows, len(content)+3)
	for i, row := range rows {
		isStamp := i%(guard.StampInterval+1) == 0
		assert.Equal(t, isStamp, row != strings.Repeat("x", 40), "row %d", i)
	}
}

func TestOverlay_LongLinesAreNotCut(t *testing.T) {
	w := guard.NewWatermark("a@b.c", "")
	long := strings.Repeat("y", 30)

	rows, marked := w.Overlay([]string{long}, 10)

	require.Len(t, rows, 2)
	assert.Equal(t, long, rows[1])
	assert.Len(t, marked[1], 30)
	assert.NotContains(t, marked[1], true)
}

// A dense text area cropped to MinCropWidth x MinCropHeight still holds a
// whole stamp.
func TestOverlay_DenseCropContainsStamp(t *testing.T) {
	w := guard.NewWatermark("analyst@example.com", "Fortiv Solutions")
	width := 2 * w.MinCropWidth()
	content := make([]string, 30)
	for i := range content {
		content[i] = strings.Repeat("The lessee shall pay the rent. ", 8)[:width]
	}

	rows, _ := w.Overlay(content, width)

	cropW, cropH := w.MinCropWidth(), w.MinCropHeight()
	for top := 0; top+cropH <= len(rows); top++ {
		for x := 0; x+cropW <= width; x += 7 {
			found := false
			for _, row := range rows[top : top+cropH] {
				if strings.Contains(string([]rune(row)[x:x+cropW]), w.Text()) {
					found = true
					break
				}
			}
			require.True(t, found, "crop at row %d col %d has no stamp", top, x)
		}
	}
}

func TestOverlay_NoWidth(t *testing.T) {
	w := guard.NewWatermark("a@b.c", "")
	rows, marked := w.Overlay([]string{"abc"}, 0)
	assert.Equal(t, []string{"abc"}, rows)
	assert.Equal(t, [][]bool{{false, false, false}}, marked)
}
