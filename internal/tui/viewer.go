// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/report-sealer/internal/app"
	"github.com/MKhiriev/report-sealer/internal/guard"
)

const (
	// pageColumns is the width reports are rendered at.
	pageColumns = 80

	defaultWidth  = 100
	defaultHeight = 30

	// chromeLines is the number of lines the viewer draws around the page.
	chromeLines = 6

	idleCheckInterval = 30 * time.Second
)

type viewerPhase int

const (
	phaseLocked viewerPhase = iota
	phaseOpening
	phaseViewing
	phaseClosed
)

// ViewerModel asks for the password of a sealed report and shows it through
// a [guard.Session]. It never holds the decrypted bytes itself; every page is
// read back from the session so that an obscured or closed session shows
// nothing.
type ViewerModel struct {
	ctx       context.Context
	session   *guard.Session
	platform  *terminalPlatform
	container []byte
	fileName  string

	password textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	phase         viewerPhase
	loading       bool
	page          int
	width, height int
	errMsg        string
	status        string
	closeReason   string
	quitByUser    bool
}

func newViewerModel(ctx context.Context, session *guard.Session, platform *terminalPlatform, container []byte, fileName string) *ViewerModel {
	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &ViewerModel{
		ctx:       ctx,
		session:   session,
		platform:  platform,
		container: container,
		fileName:  fileName,
		password:  password,
		spinner:   spin,
		viewport:  viewport.New(defaultWidth, defaultHeight-chromeLines),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	return m
}

// Init implements [tea.Model].
func (m *ViewerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Platform interception runs first, so a
// blocked chord or a captured mouse event never reaches the page.
func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.platform.Intercept(msg) {
		switch msg.(type) {
		case tea.KeyMsg:
			return m, m.setStatus("printing and saving are disabled for this document")
		case tea.FocusMsg, tea.BlurMsg:
			m.refresh(false)
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case openedMsg:
		return m.handleOpened(msg)
	case idleCheckMsg:
		if m.phase != phaseViewing {
			return m, nil
		}
		if m.session.CloseIfIdle() {
			return m.finish("closed after inactivity")
		}
		return m, m.scheduleIdleCheck()
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m.finish("closed")
		}
		switch m.phase {
		case phaseLocked:
			return m.updateLocked(msg)
		case phaseViewing:
			return m.updateViewing(msg)
		}
		return m, nil
	}

	if m.phase == phaseLocked {
		var cmd tea.Cmd
		m.password, cmd = m.password.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ViewerModel) updateLocked(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.quitByUser = true
		return m.finish("cancelled")
	case key.Matches(msg, keys.enter):
		if m.loading {
			return m, nil
		}
		pass := m.password.Value()
		if pass == "" {
			m.errMsg = app.MsgEmptyPassword
			return m, nil
		}

		m.password.Reset()
		m.password.Blur()
		m.errMsg = ""
		m.loading = true
		m.phase = phaseOpening
		return m, tea.Batch(m.spinner.Tick, m.cmdOpen(pass))
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

func (m *ViewerModel) cmdOpen(pass string) tea.Cmd {
	ctx, session, container := m.ctx, m.session, m.container
	return func() tea.Msg {
		return openedMsg{err: session.Open(ctx, container, pass)}
	}
}

func (m *ViewerModel) handleOpened(msg openedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if m.phase != phaseOpening {
		// closed while decrypting
		if msg.err == nil {
			m.session.Close()
		}
		return m, nil
	}

	if msg.err != nil {
		m.phase = phaseLocked
		m.errMsg = app.UserMessage(msg.err)
		m.password.Focus()
		return m, textinput.Blink
	}

	m.phase = phaseViewing
	m.page = 0
	m.refresh(true)
	return m, m.scheduleIdleCheck()
}

func (m *ViewerModel) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.session.Touch()

	switch {
	case key.Matches(msg, keys.close):
		return m.finish("closed")
	case key.Matches(msg, keys.nextPage):
		if m.page < m.session.PageCount()-1 {
			m.page++
			m.refresh(true)
		}
	case key.Matches(msg, keys.prevPage):
		if m.page > 0 {
			m.page--
			m.refresh(true)
		}
	case key.Matches(msg, keys.zoomIn):
		m.session.ZoomIn()
		m.refresh(false)
	case key.Matches(msg, keys.zoomOut):
		m.session.ZoomOut()
		m.refresh(false)
	case key.Matches(msg, keys.zoomReset):
		m.session.ResetZoom()
		m.refresh(false)
	case key.Matches(msg, keys.print):
		text, err := m.session.Page(m.page)
		if err == nil {
			err = m.platform.Print(text)
		}
		if err != nil {
			return m, m.setStatus(err.Error())
		}
		return m, m.setStatus("page sent to printer")
	case key.Matches(msg, keys.up), key.Matches(msg, keys.down):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// refresh reloads the current page into the viewport. When the session
// will not hand out content the viewport is emptied.
func (m *ViewerModel) refresh(top bool) {
	text, err := m.session.Page(m.page)
	if err != nil {
		m.viewport.SetContent("")
		return
	}
	body := wrapPage(text, m.session.Zoom(), m.viewport.Width)
	m.viewport.SetContent(renderWatermarked(body, m.session.Watermark(), m.viewport.Width))
	if top {
		m.viewport.GotoTop()
	}
}

func (m *ViewerModel) resize(width, height int) {
	m.width, m.height = width, height
	m.viewport.Width = width
	m.viewport.Height = max(height-chromeLines, 1)
	if m.phase == phaseViewing {
		m.refresh(false)
	}
}

// finish closes the session and quits the program. Close is the single
// close signal sent back to the caller.
func (m *ViewerModel) finish(reason string) (tea.Model, tea.Cmd) {
	m.session.Close()
	m.viewport.SetContent("")
	m.phase = phaseClosed
	m.loading = false
	m.closeReason = reason
	return m, tea.Quit
}

func (m *ViewerModel) scheduleIdleCheck() tea.Cmd {
	return tea.Tick(idleCheckInterval, func(time.Time) tea.Msg {
		return idleCheckMsg{}
	})
}

func (m *ViewerModel) setStatus(s string) tea.Cmd {
	m.status = s
	return clearStatusAfter(statusTimeout)
}

// CloseReason describes how the viewer ended.
func (m *ViewerModel) CloseReason() string {
	return m.closeReason
}

// View implements [tea.Model].
func (m *ViewerModel) View() string {
	switch m.phase {
	case phaseClosed:
		return ""
	case phaseLocked, phaseOpening:
		return m.viewLocked()
	}

	if m.session.Obscured() {
		return obscuredStyle.Render("Content hidden\n\nThe report is hidden while this terminal is out of focus.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fitText(m.fileName, m.width-40)))
	b.WriteString("  ")
	b.WriteString(badgeStyle.Render(app.MsgViewerBadge))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Page %d / %d  │  Zoom %s", m.page+1, m.session.PageCount(), m.session.Zoom()))
	if m.status != "" {
		b.WriteString("  │  ")
		b.WriteString(warningStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ page │ ↑/↓ scroll │ +/- zoom │ 0 reset │ esc close"))

	return b.String()
}

func (m *ViewerModel) viewLocked() string {
	var b strings.Builder
	b.WriteString("File     │ ")
	b.WriteString(m.fileName)
	b.WriteString("\n")
	b.WriteString("Password │ [")
	b.WriteString(m.password.View())
	b.WriteString("]\n")

	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Decrypting...\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("UNLOCK REPORT", strings.TrimRight(b.String(), "\n"), "enter: open │ esc: cancel")
}
