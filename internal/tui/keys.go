// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	nextPage  key.Binding
	prevPage  key.Binding
	zoomIn    key.Binding
	zoomOut   key.Binding
	zoomReset key.Binding
	print     key.Binding
	enter     key.Binding
	tab       key.Binding
	backtab   key.Binding
	close     key.Binding
	esc       key.Binding
	quit      key.Binding
	generate  key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k", "pgup", "home")),
	down:      key.NewBinding(key.WithKeys("down", "j", "pgdown", "end")),
	nextPage:  key.NewBinding(key.WithKeys("right", "l", "n")),
	prevPage:  key.NewBinding(key.WithKeys("left", "h", "b")),
	zoomIn:    key.NewBinding(key.WithKeys("+", "=")),
	zoomOut:   key.NewBinding(key.WithKeys("-", "_")),
	zoomReset: key.NewBinding(key.WithKeys("0")),
	print:     key.NewBinding(key.WithKeys("p")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	close:     key.NewBinding(key.WithKeys("esc", "q")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	generate:  key.NewBinding(key.WithKeys("ctrl+g")),
}
