// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalPlatform_PrintIsRestored(t *testing.T) {
	printed := 0
	p := newTerminalPlatform(func(string) error {
		printed++
		return nil
	})

	require.NoError(t, p.Print("page"))

	restore, err := p.SuppressPrint()
	require.NoError(t, err)
	assert.ErrorIs(t, p.Print("page"), ErrPrintSuppressed)

	restore()
	require.NoError(t, p.Print("page"))
	assert.Equal(t, 2, printed)
}

func TestTerminalPlatform_DefaultPrinter(t *testing.T) {
	p := newTerminalPlatform(nil)
	assert.ErrorIs(t, p.Print("page"), ErrNoPrinter)
}

func TestTerminalPlatform_Shortcuts(t *testing.T) {
	p := newTerminalPlatform(nil)
	ctrlP := tea.KeyMsg{Type: tea.KeyCtrlP}
	ctrlS := tea.KeyMsg{Type: tea.KeyCtrlS}
	plain := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}

	assert.False(t, p.Intercept(ctrlP), "not blocked before acquire")

	restore, err := p.SuppressShortcuts()
	require.NoError(t, err)
	assert.True(t, p.Intercept(ctrlP))
	assert.True(t, p.Intercept(ctrlS))
	assert.False(t, p.Intercept(plain))

	restore()
	assert.False(t, p.Intercept(ctrlS))
}

func TestTerminalPlatform_MouseCapture(t *testing.T) {
	p := newTerminalPlatform(nil)
	rightClick := tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonRight, Action: tea.MouseActionPress}
	drag := tea.MouseMsg{X: 5, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}

	assert.False(t, p.Intercept(rightClick))

	restore, err := p.SuppressContextMenu()
	require.NoError(t, err)
	assert.True(t, p.Intercept(rightClick))
	assert.True(t, p.Intercept(drag))

	restore()
	assert.False(t, p.Intercept(drag))
}

func TestTerminalPlatform_Visibility(t *testing.T) {
	p := newTerminalPlatform(nil)
	var calls []bool

	restore, err := p.OnVisibilityChange(func(hidden bool) { calls = append(calls, hidden) })
	require.NoError(t, err)

	assert.True(t, p.Intercept(tea.BlurMsg{}))
	assert.True(t, p.Intercept(tea.FocusMsg{}))
	assert.Equal(t, []bool{true, false}, calls)

	restore()
	p.Intercept(tea.BlurMsg{})
	assert.Len(t, calls, 2, "no callback after restore")
}

func TestTerminalPlatform_IgnoresOtherMessages(t *testing.T) {
	p := newTerminalPlatform(nil)
	assert.False(t, p.Intercept(tea.WindowSizeMsg{Width: 80, Height: 24}))
	assert.False(t, p.Intercept(errors.New("not a message")))
}
