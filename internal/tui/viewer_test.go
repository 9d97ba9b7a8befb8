// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/report-sealer/internal/app"
	"github.com/MKhiriev/report-sealer/internal/crypto"
	"github.com/MKhiriev/report-sealer/internal/guard"
	"github.com/MKhiriev/report-sealer/internal/report"
	"github.com/MKhiriev/report-sealer/models"
)

const (
	testIdentity = "alice@example.com"
	testPassword = "correct-horse"
	threePages   = "Page one body\fPage two body\fPage three body"
)

type viewerFixture struct {
	model    *ViewerModel
	session  *guard.Session
	platform *terminalPlatform

	mu        sync.Mutex
	resources []*guard.Resource
	now       time.Time
}

func newViewerFixture(t *testing.T, printer PrintFunc) *viewerFixture {
	t.Helper()
	return newViewerFixtureFor(t, printer, []byte(threePages))
}

func newViewerFixtureFor(t *testing.T, printer PrintFunc, document []byte) *viewerFixture {
	t.Helper()
	codec := crypto.NewCodec(crypto.WithIterations(1000))
	container, err := codec.Seal(context.Background(), document, testPassword)
	require.NoError(t, err)

	f := &viewerFixture{now: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
	f.platform = newTerminalPlatform(printer)
	f.session = guard.NewSession(f.platform, codec, testIdentity,
		guard.WithOrganisation("Fortiv Solutions"),
		guard.WithIdleTimeout(time.Hour),
		guard.WithClock(f.clock),
		guard.WithResourceObserver(func(r *guard.Resource) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.resources = append(f.resources, r)
		}),
	)
	f.model = newViewerModel(context.Background(), f.session, f.platform, container, "Murabaha_report.enc")
	f.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return f
}

func (f *viewerFixture) clock() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *viewerFixture) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func (f *viewerFixture) send(msg tea.Msg) tea.Cmd {
	_, cmd := f.model.Update(msg)
	return cmd
}

// unlock submits password and delivers the open result.
func (f *viewerFixture) unlock(t *testing.T, password string) {
	t.Helper()
	f.model.password.SetValue(password)
	cmd := f.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, f.model.loading)
	require.Equal(t, phaseOpening, f.model.phase)

	f.send(openResult(t, cmd))
	assert.False(t, f.model.loading, "loading flag is reset on every completion")
}

func (f *viewerFixture) view() string {
	return ansi.Strip(f.model.View())
}

func openResult(t *testing.T, cmd tea.Cmd) openedMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if opened, ok := msg.(openedMsg); ok {
			return opened
		}
	}
	t.Fatal("no openedMsg produced")
	return openedMsg{}
}

// collect runs cmd and flattens batches. Only use it on commands that do
// not wait on a timer.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewer_WrongPasswordStaysLocked(t *testing.T) {
	f := newViewerFixture(t, nil)

	f.unlock(t, "wrong-horse")

	assert.Equal(t, phaseLocked, f.model.phase)
	assert.Equal(t, app.MsgAuthenticationFailure, f.model.errMsg)
	assert.Equal(t, guard.Closed, f.session.State())
	assert.Empty(t, f.model.password.Value(), "password field is cleared")
	assert.Contains(t, f.view(), "incorrect password or corrupted file")

	// a second attempt works from the same screen
	f.unlock(t, testPassword)
	assert.Equal(t, phaseViewing, f.model.phase)
}

func TestViewer_EmptyPassword(t *testing.T) {
	f := newViewerFixture(t, nil)

	cmd := f.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, phaseLocked, f.model.phase)
	assert.Equal(t, app.MsgEmptyPassword, f.model.errMsg)
}

func TestViewer_TypedPassword(t *testing.T) {
	f := newViewerFixture(t, nil)
	for _, r := range testPassword {
		f.send(runes(string(r)))
	}
	assert.Equal(t, testPassword, f.model.password.Value())
	assert.NotContains(t, f.view(), testPassword)
}

func TestViewer_ShowsWatermarkedPages(t *testing.T) {
	f := newViewerFixture(t, nil)
	f.unlock(t, testPassword)

	v := f.view()
	assert.Contains(t, v, "Page 1 / 3")
	assert.Contains(t, v, "Zoom 100%")
	assert.Contains(t, v, "Page one body")
	assert.Contains(t, v, app.MsgViewerBadge)
	assert.Contains(t, v, testIdentity+"  ·  CONFIDENTIAL  ·  FORTIV SOLUTIONS")

	f.send(tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, f.view(), "Page 2 / 3")
	assert.Contains(t, f.view(), "Page two body")

	f.send(runes("l"))
	f.send(runes("l"))
	assert.Contains(t, f.view(), "Page 3 / 3", "stays on the last page")

	f.send(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Contains(t, f.view(), "Page 2 / 3")
}

func TestViewer_PageTextIsNotAltered(t *testing.T) {
	f := newViewerFixtureFor(t, nil, []byte("The lessee shall pay the rent\n\n  indented   spacing kept"))
	f.unlock(t, testPassword)

	v := f.view()
	assert.Contains(t, v, "The lessee shall pay the rent")
	assert.Contains(t, v, "  indented   spacing kept")
}

// Any crop of the page area over a dense clause page still shows a whole
// watermark stamp.
func TestViewer_DenseClausePageCropsHoldStamp(t *testing.T) {
	rep := models.Report{Document: models.Document{ID: "doc-1", DocumentName: "Ijara.pdf"}}
	for i := range 6 {
		rep.Clauses = append(rep.Clauses, models.ClauseAnalysis{
			ID:              fmt.Sprintf("c-%d", i),
			ClauseNumber:    fmt.Sprintf("%d.1", i+1),
			ClauseText:      strings.Repeat("The lessee shall pay the rent monthly in advance to the lessor. ", 4),
			Classification:  models.NonCompliant,
			Severity:        models.SeverityHigh,
			ConfidenceScore: 0.9,
			ShariahIssues:   []string{"Rent must be fixed for each period"},
			Findings:        "Rent is linked to an interest benchmark without a cap.",
			Remediation:     "Fix the rent for each period in the schedule.",
		})
	}
	doc, err := report.NewRenderer(
		report.WithNow(func() time.Time { return time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC) }),
		report.WithOrganisation("Fortiv Solutions"),
	).Render(rep, "Alice", testIdentity)
	require.NoError(t, err)

	f := newViewerFixtureFor(t, nil, doc)
	f.unlock(t, testPassword)
	f.send(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, f.model.page)

	lines := strings.Split(f.view(), "\n")
	var dividers []int
	for i, line := range lines {
		if line == uiDivider {
			dividers = append(dividers, i)
		}
	}
	require.Len(t, dividers, 2)
	body := lines[dividers[0]+1 : dividers[1]]
	require.Contains(t, strings.Join(body, "\n"), "Clause 1.1")

	wm := f.session.Watermark()
	cropW, cropH := wm.MinCropWidth(), wm.MinCropHeight()
	for top := 0; top+cropH <= len(body); top++ {
		for x := 0; x+cropW <= 120; x++ {
			found := false
			for _, row := range body[top : top+cropH] {
				cells := []rune(row)
				if len(cells) >= x+cropW && strings.Contains(string(cells[x:x+cropW]), wm.Text()) {
					found = true
					break
				}
			}
			require.True(t, found, "crop at row %d col %d has no stamp", top, x)
		}
	}
}

func TestViewer_ObscuredWhileUnfocused(t *testing.T) {
	f := newViewerFixture(t, nil)
	f.unlock(t, testPassword)
	f.send(tea.KeyMsg{Type: tea.KeyRight})

	f.send(tea.BlurMsg{})
	assert.True(t, f.session.Obscured())
	v := f.view()
	assert.Contains(t, v, "Content hidden")
	assert.NotContains(t, v, "Page two body")

	f.send(tea.FocusMsg{})
	assert.False(t, f.session.Obscured())
	assert.Contains(t, f.view(), "Page two body")
}

func TestViewer_PrintAndShortcutsSuppressed(t *testing.T) {
	printed := 0
	f := newViewerFixture(t, func(string) error {
		printed++
		return nil
	})
	f.unlock(t, testPassword)

	f.send(tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Contains(t, f.model.status, "disabled")

	f.send(runes("p"))
	assert.Equal(t, ErrPrintSuppressed.Error(), f.model.status)
	assert.Zero(t, printed)

	assert.True(t, f.platform.Intercept(tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress}))

	f.send(tea.KeyMsg{Type: tea.KeyEsc})
	require.NoError(t, f.platform.Print("after close"))
	assert.Equal(t, 1, printed, "print hook restored on close")
	assert.False(t, f.platform.Intercept(tea.KeyMsg{Type: tea.KeyCtrlP}))
}

func TestViewer_Zoom(t *testing.T) {
	f := newViewerFixture(t, nil)
	f.unlock(t, testPassword)

	f.send(runes("+"))
	assert.Equal(t, guard.Zoom(115), f.session.Zoom())
	assert.Contains(t, f.view(), "Zoom 115%")

	for range 20 {
		f.send(runes("+"))
	}
	assert.Equal(t, guard.MaxZoom, f.session.Zoom())
	assert.Contains(t, f.view(), "Page one body")

	f.send(runes("0"))
	assert.Equal(t, guard.DefaultZoom, f.session.Zoom())

	f.send(runes("-"))
	assert.Equal(t, guard.Zoom(85), f.session.Zoom())
}

func TestViewer_CloseReleasesOnce(t *testing.T) {
	f := newViewerFixture(t, nil)
	f.unlock(t, testPassword)

	cmd := f.send(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, phaseClosed, f.model.phase)
	assert.Equal(t, "closed", f.model.CloseReason())
	assert.False(t, f.model.quitByUser)
	assert.Empty(t, f.model.View())
	assert.Equal(t, guard.Closed, f.session.State())

	f.session.Unmount()
	require.Len(t, f.resources, 1)
	assert.Equal(t, 1, f.resources[0].Releases())
}

func TestViewer_IdleTimeoutCloses(t *testing.T) {
	f := newViewerFixture(t, nil)
	f.unlock(t, testPassword)

	f.advance(30 * time.Minute)
	cmd := f.send(idleCheckMsg{})
	assert.NotNil(t, cmd, "next check scheduled")
	assert.Equal(t, phaseViewing, f.model.phase)

	f.send(runes("l")) // activity
	f.advance(59 * time.Minute)
	f.send(idleCheckMsg{})
	assert.Equal(t, phaseViewing, f.model.phase)

	f.advance(2 * time.Minute)
	f.send(idleCheckMsg{})
	assert.Equal(t, phaseClosed, f.model.phase)
	assert.Equal(t, "closed after inactivity", f.model.CloseReason())
	require.Len(t, f.resources, 1)
	assert.Equal(t, 1, f.resources[0].Releases())
}

func TestViewer_QuitWhileDecrypting(t *testing.T) {
	f := newViewerFixture(t, nil)
	f.model.password.SetValue(testPassword)
	pending := f.send(tea.KeyMsg{Type: tea.KeyEnter})

	f.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, f.model.quitByUser)
	assert.Equal(t, phaseClosed, f.model.phase)

	// the decrypt finishes after the viewer was closed
	f.send(openResult(t, pending))
	assert.Equal(t, guard.Closed, f.session.State())
	require.Len(t, f.resources, 1)
	assert.Equal(t, 1, f.resources[0].Releases())
}
