// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/MKhiriev/report-sealer/internal/guard"
)

const uiDivider = "──────────────────────────────────────────────────────"

const statusTimeout = 2 * time.Second

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

// renderWatermarked lays the watermark tiling under body, width cells wide.
// Page text is kept cell for cell; cells taken from the tiling are drawn
// faint.
func renderWatermarked(body string, wm guard.Watermark, width int) string {
	lines := strings.Split(ansi.Strip(body), "\n")
	rows, marked := wm.Overlay(lines, width)

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeMarked(&b, []rune(row), marked[i])
	}
	return b.String()
}

func writeMarked(b *strings.Builder, row []rune, mask []bool) {
	for start := 0; start < len(row); {
		end := start
		for end < len(row) && mask[end] == mask[start] {
			end++
		}
		seg := string(row[start:end])
		if mask[start] {
			seg = watermarkStyle.Render(seg)
		}
		b.WriteString(seg)
		start = end
	}
}

// wrapPage reflows page text for a zoom level and spaces lines with the
// zoom's line gap. Only lines wider than the zoomed width are wrapped.
func wrapPage(text string, zoom guard.Zoom, maxWidth int) string {
	width := zoom.WrapWidth(pageColumns)
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	gap := strings.Repeat("\n", zoom.LineGap())

	var b strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
			b.WriteString(gap)
		}
		if ansi.StringWidth(line) <= width {
			b.WriteString(line)
			continue
		}
		b.WriteString(ansi.Wrap(line, width, ""))
	}
	return b.String()
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func fitText(v string, max int) string {
	if max <= 0 || len([]rune(v)) <= max {
		return v
	}
	r := []rune(v)
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
