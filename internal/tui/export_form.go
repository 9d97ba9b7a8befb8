// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/report-sealer/internal/app"
	"github.com/MKhiriev/report-sealer/internal/crypto"
	"github.com/MKhiriev/report-sealer/internal/validators"
)

const passphraseGroups = 5

// ExportFormModel collects the password a report is sealed with: a password
// and a confirmation, a strength meter, and an optional generated
// passphrase that is copied to the clipboard.
type ExportFormModel struct {
	title  string
	inputs []textinput.Model
	focus  int

	errMsg string
	status string

	copy     func(string) error
	generate func(groups int) (string, error)

	password   string
	done       bool
	quitByUser bool
}

func newExportFormModel(title string) *ExportFormModel {
	inputs := make([]textinput.Model, 2)
	for i, placeholder := range []string{"password", "confirm password"} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 256
		in.Width = 40
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
		inputs[i] = in
	}
	inputs[0].Focus()

	return &ExportFormModel{
		title:    title,
		inputs:   inputs,
		copy:     clipboard.WriteAll,
		generate: crypto.GeneratePassphrase,
	}
}

// Init implements [tea.Model].
func (m *ExportFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. enter on the first field moves to the
// confirmation; enter on the confirmation validates and finishes.
func (m *ExportFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(clearStatusMsg); ok {
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit), key.Matches(keyMsg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.generate):
			return m, m.generatePassphrase()
		case key.Matches(keyMsg, keys.enter):
			if m.focus == 0 {
				m.setFocus(1)
				return m, nil
			}
			if err := m.validate(); err != nil {
				m.errMsg = app.UserMessage(err)
				return m, nil
			}
			m.errMsg = ""
			m.password = m.inputs[0].Value()
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ExportFormModel) validate() error {
	pass, confirm := m.inputs[0].Value(), m.inputs[1].Value()
	if utf8.RuneCountInString(pass) < validators.MinPasswordLength {
		return validators.ErrPasswordTooShort
	}
	if pass != confirm {
		return validators.ErrPasswordMismatch
	}
	return nil
}

func (m *ExportFormModel) generatePassphrase() tea.Cmd {
	phrase, err := m.generate(passphraseGroups)
	if err != nil {
		m.errMsg = app.UserMessage(err)
		return nil
	}
	for i := range m.inputs {
		m.inputs[i].SetValue(phrase)
	}
	m.errMsg = ""

	if err = m.copy(phrase); err != nil {
		m.status = fmt.Sprintf("generated %s (clipboard unavailable, write it down)", phrase)
		return nil
	}
	m.status = "generated passphrase copied to the clipboard"
	return clearStatusAfter(4 * statusTimeout)
}

func (m *ExportFormModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// View implements [tea.Model].
func (m *ExportFormModel) View() string {
	var b strings.Builder
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Confirm  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n\n")

	b.WriteString(strengthMeter(m.inputs[0].Value()))
	b.WriteString("\n\n")
	b.WriteString(warningStyle.Render(app.MsgPasswordWarning))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+g: generate passphrase │ enter: seal │ esc: cancel")
}

const meterCells = 5

func strengthMeter(pw string) string {
	if pw == "" {
		return "Strength │ " + strings.Repeat("░", meterCells)
	}
	score := validators.PasswordScore(pw)
	return fmt.Sprintf("Strength │ %s%s %s",
		strings.Repeat("█", score),
		strings.Repeat("░", meterCells-score),
		validators.PasswordStrength(pw))
}
