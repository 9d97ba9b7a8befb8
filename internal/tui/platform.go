// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/report-sealer/internal/guard"
)

var (
	// ErrPrintSuppressed is what the print hook returns while a report is
	// on screen.
	ErrPrintSuppressed = errors.New("printing is disabled for this document")

	// ErrNoPrinter is returned by the default print hook.
	ErrNoPrinter = errors.New("no printer configured")
)

// PrintFunc sends one page to the host printer.
type PrintFunc func(page string) error

// blockedChords are the key chords a terminal user would reach for to print
// or save. bubbletea reports ctrl+shift+s as ctrl+s.
var blockedChords = map[string]struct{}{
	"ctrl+p": {},
	"ctrl+s": {},
	"alt+p":  {},
	"alt+s":  {},
}

// terminalPlatform implements [guard.Platform] on top of a bubbletea
// program. The program must run with mouse capture and focus reporting
// enabled, see [ProgramOptions]. The viewer model feeds it key, mouse and
// focus messages and asks it what to do with them.
type terminalPlatform struct {
	mu sync.Mutex

	printer      PrintFunc
	savedPrinter PrintFunc
	blockChords  bool
	captureMouse bool
	onVisibility func(hidden bool)
}

func newTerminalPlatform(printer PrintFunc) *terminalPlatform {
	if printer == nil {
		printer = func(string) error { return ErrNoPrinter }
	}
	return &terminalPlatform{printer: printer}
}

var _ guard.Platform = (*terminalPlatform)(nil)

func (p *terminalPlatform) SuppressPrint() (guard.Restore, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.savedPrinter = p.printer
	p.printer = func(string) error { return ErrPrintSuppressed }

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.printer = p.savedPrinter
		p.savedPrinter = nil
	}, nil
}

func (p *terminalPlatform) SuppressShortcuts() (guard.Restore, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.blockChords = true
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.blockChords = false
	}, nil
}

// SuppressContextMenu relies on mouse cell motion being enabled for the
// program: with the mouse captured, right clicks and drags arrive as
// messages instead of reaching the terminal's own selection and menu.
// This deters casual copying and is not a protection boundary.
func (p *terminalPlatform) SuppressContextMenu() (guard.Restore, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.captureMouse = true
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.captureMouse = false
	}, nil
}

func (p *terminalPlatform) OnVisibilityChange(fn func(hidden bool)) (guard.Restore, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.onVisibility = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.onVisibility = nil
	}, nil
}

// Print runs the current print hook.
func (p *terminalPlatform) Print(page string) error {
	p.mu.Lock()
	printer := p.printer
	p.mu.Unlock()
	return printer(page)
}

// Intercept reports whether msg must be swallowed before any model sees it.
// Focus changes are forwarded to the visibility callback and also
// swallowed.
func (p *terminalPlatform) Intercept(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		p.mu.Lock()
		defer p.mu.Unlock()
		if !p.blockChords {
			return false
		}
		_, blocked := blockedChords[msg.String()]
		return blocked
	case tea.MouseMsg:
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.captureMouse
	case tea.FocusMsg:
		p.notify(false)
		return true
	case tea.BlurMsg:
		p.notify(true)
		return true
	}
	return false
}

// notify calls the visibility callback outside the platform lock; the
// session takes its own lock in the callback.
func (p *terminalPlatform) notify(hidden bool) {
	p.mu.Lock()
	fn := p.onVisibility
	p.mu.Unlock()
	if fn != nil {
		fn(hidden)
	}
}

// ProgramOptions are the bubbletea options the viewer depends on.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}
}
