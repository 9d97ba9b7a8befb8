// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/report-sealer/internal/crypto"
	"github.com/MKhiriev/report-sealer/internal/guard"
	"github.com/MKhiriev/report-sealer/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakePlatform records every hook so tests can drive visibility and count
// restorations.
type fakePlatform struct {
	mu       sync.Mutex
	notify   func(hidden bool)
	acquired map[string]int
	restored map[string]int
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{acquired: map[string]int{}, restored: map[string]int{}}
}

func (f *fakePlatform) hook(name string) (guard.Restore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acquired[name]++
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.restored[name]++
	}, nil
}

func (f *fakePlatform) SuppressPrint() (guard.Restore, error)       { return f.hook("print") }
func (f *fakePlatform) SuppressShortcuts() (guard.Restore, error)   { return f.hook("shortcuts") }
func (f *fakePlatform) SuppressContextMenu() (guard.Restore, error) { return f.hook("contextmenu") }

func (f *fakePlatform) OnVisibilityChange(fn func(hidden bool)) (guard.Restore, error) {
	f.mu.Lock()
	f.notify = fn
	f.mu.Unlock()
	restore, err := f.hook("visibility")
	return func() {
		f.mu.Lock()
		f.notify = nil
		f.mu.Unlock()
		restore()
	}, err
}

func (f *fakePlatform) setHidden(hidden bool) {
	f.mu.Lock()
	fn := f.notify
	f.mu.Unlock()
	if fn != nil {
		fn(hidden)
	}
}

func (f *fakePlatform) counts(m map[string]int) map[string]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

var allHooks = map[string]int{"print": 1, "shortcuts": 1, "contextmenu": 1, "visibility": 1}

func threePages() []byte {
	return []byte("cover page\fclause 1: compliant\fclause 2: needs review")
}

// ── Scenario B: visibility ───────────────────────────────────────────────────

func TestSession_ObscuredExactlyWhileHidden(t *testing.T) {
	platform := newFakePlatform()
	s := guard.NewSession(platform, nil, "analyst@example.com")

	require.NoError(t, s.Present(threePages()))
	require.Equal(t, guard.Viewing, s.State())
	require.Equal(t, 3, s.PageCount())
	assert.False(t, s.Obscured())

	page, err := s.Page(1)
	require.NoError(t, err)
	assert.Equal(t, "clause 1: compliant", page)

	platform.setHidden(true)
	assert.True(t, s.Obscured())
	assert.Equal(t, guard.Obscured, s.Visibility())
	assert.Equal(t, guard.Viewing, s.State(), "obscured is a sub-state of viewing")
	for i := range 3 {
		_, err = s.Page(i)
		assert.ErrorIs(t, err, guard.ErrObscured)
	}

	platform.setHidden(false)
	assert.False(t, s.Obscured())
	assert.Equal(t, guard.Visible, s.Visibility())
	page, err = s.Page(2)
	require.NoError(t, err)
	assert.Equal(t, "clause 2: needs review", page)
}

func TestSession_VisibilityEventsOrder(t *testing.T) {
	platform := newFakePlatform()
	s := guard.NewSession(platform, nil, "analyst@example.com")

	var events []guard.Event
	s.Subscribe(func(e guard.Event) { events = append(events, e) })

	require.NoError(t, s.Present(threePages()))
	platform.setHidden(true)
	platform.setHidden(true) // duplicate blur is ignored
	platform.setHidden(false)
	s.Close()

	var trace []string
	for _, e := range events {
		trace = append(trace, e.State.String()+"/"+e.Visibility.String())
	}
	assert.Equal(t, []string{
		"opening/visible",
		"viewing/visible",
		"viewing/obscured",
		"viewing/visible",
		"closed/visible",
	}, trace)
}

func TestSession_VisibilityIgnoredWhenNotViewing(t *testing.T) {
	platform := newFakePlatform()
	s := guard.NewSession(platform, nil, "analyst@example.com")

	require.NoError(t, s.Present(threePages()))
	notify := platform.notify
	s.Close()

	notify(true)
	assert.Equal(t, guard.Closed, s.State())
	assert.False(t, s.Obscured())
}

// ── Scenario C: release ──────────────────────────────────────────────────────

func TestSession_UnmountWithoutCloseReleasesOnce(t *testing.T) {
	platform := newFakePlatform()
	var res *guard.Resource
	s := guard.NewSession(platform, nil, "analyst@example.com", guard.WithResourceObserver(func(r *guard.Resource) { res = r }))

	require.NoError(t, s.Present(threePages()))
	require.NotNil(t, res)
	assert.Equal(t, 0, res.Releases())

	s.Unmount()
	assert.Equal(t, 1, res.Releases())
	assert.Nil(t, res.Bytes())

	s.Unmount()
	s.Close()
	assert.Equal(t, 1, res.Releases())

	assert.Equal(t, allHooks, platform.counts(platform.acquired))
	assert.Equal(t, allHooks, platform.counts(platform.restored))
	assert.ErrorIs(t, s.Present(threePages()), guard.ErrUnmounted)
}

func TestSession_CloseThenUnmountReleasesOnce(t *testing.T) {
	platform := newFakePlatform()
	var res *guard.Resource
	s := guard.NewSession(platform, nil, "a@b.c", guard.WithResourceObserver(func(r *guard.Resource) { res = r }))

	require.NoError(t, s.Present(threePages()))
	s.Close()
	s.Unmount()

	assert.Equal(t, 1, res.Releases())
	assert.Equal(t, allHooks, platform.counts(platform.restored))
}

func TestSession_ConcurrentTeardownReleasesOnce(t *testing.T) {
	platform := newFakePlatform()
	var res *guard.Resource
	s := guard.NewSession(platform, nil, "a@b.c", guard.WithResourceObserver(func(r *guard.Resource) { res = r }))
	require.NoError(t, s.Present(threePages()))

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				s.Close()
			} else {
				s.Unmount()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, res.Releases())
	assert.Equal(t, allHooks, platform.counts(platform.restored))
}

func TestSession_ReopenAfterClose(t *testing.T) {
	platform := newFakePlatform()
	s := guard.NewSession(platform, nil, "a@b.c")

	require.NoError(t, s.Present(threePages()))
	s.Close()
	require.NoError(t, s.Present([]byte("single page")))
	assert.Equal(t, 1, s.PageCount())
	s.Close()

	twice := map[string]int{"print": 2, "shortcuts": 2, "contextmenu": 2, "visibility": 2}
	assert.Equal(t, twice, platform.counts(platform.acquired))
	assert.Equal(t, twice, platform.counts(platform.restored))
}

// ── Open through the codec ───────────────────────────────────────────────────

func TestSession_OpenWithCodec(t *testing.T) {
	codec := crypto.NewCodec(crypto.WithIterations(1000))
	container, err := codec.Seal(context.Background(), threePages(), "correct-horse")
	require.NoError(t, err)

	platform := newFakePlatform()
	s := guard.NewSession(platform, codec, "a@b.c")

	err = s.Open(context.Background(), container, "wrong-horse")
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
	assert.Equal(t, guard.Closed, s.State())
	assert.Empty(t, platform.counts(platform.acquired), "no capability is taken before decryption succeeds")

	require.NoError(t, s.Open(context.Background(), container, "correct-horse"))
	assert.Equal(t, guard.Viewing, s.State())
	assert.Equal(t, 3, s.PageCount())
}

func TestSession_OpenFailureNeverViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	codec := mock.NewMockCodec(ctrl)
	platform := mock.NewMockPlatform(ctrl)

	codec.EXPECT().Open(gomock.Any(), []byte("blob"), "pw").Return(nil, crypto.ErrMalformedContainer)

	s := guard.NewSession(platform, codec, "a@b.c")
	var states []guard.State
	s.Subscribe(func(e guard.Event) { states = append(states, e.State) })

	err := s.Open(context.Background(), []byte("blob"), "pw")
	assert.ErrorIs(t, err, crypto.ErrMalformedContainer)
	assert.Equal(t, []guard.State{guard.Opening, guard.Closed}, states)
}

func TestSession_DecodeFailureNeverViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mock.NewMockPlatform(ctrl)
	var res *guard.Resource
	s := guard.NewSession(platform, nil, "a@b.c", guard.WithResourceObserver(func(r *guard.Resource) { res = r }))

	err := s.Present([]byte{0xff, 0xfe, 0xfd})
	assert.ErrorIs(t, err, guard.ErrUndecodable)
	assert.Equal(t, guard.Closed, s.State())
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Releases())

	err = s.Present([]byte("  \n "))
	assert.ErrorIs(t, err, guard.ErrEmptyDocument)
}

func TestSession_CapabilityFailureRestoresAcquired(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mock.NewMockPlatform(ctrl)

	var restored []string
	restoreOf := func(name string) guard.Restore {
		return func() { restored = append(restored, name) }
	}

	gomock.InOrder(
		platform.EXPECT().SuppressPrint().Return(restoreOf("print"), nil),
		platform.EXPECT().SuppressShortcuts().Return(restoreOf("shortcuts"), nil),
		platform.EXPECT().SuppressContextMenu().Return(nil, errors.New("no mouse support")),
	)

	var res *guard.Resource
	s := guard.NewSession(platform, nil, "a@b.c", guard.WithResourceObserver(func(r *guard.Resource) { res = r }))

	err := s.Present(threePages())
	assert.ErrorIs(t, err, guard.ErrCapability)
	assert.Equal(t, guard.Closed, s.State())
	assert.Equal(t, []string{"shortcuts", "print"}, restored)
	assert.Equal(t, 1, res.Releases())
}

func TestSession_CloseWhileOpening(t *testing.T) {
	ctrl := gomock.NewController(t)
	codec := mock.NewMockCodec(ctrl)
	platform := newFakePlatform()

	s := guard.NewSession(platform, codec, "a@b.c")
	codec.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, container []byte, password string) ([]byte, error) {
			assert.Equal(t, guard.Opening, s.State())
			s.Close()
			return threePages(), nil
		},
	)

	err := s.Open(context.Background(), []byte("blob"), "pw")
	assert.ErrorIs(t, err, guard.ErrCancelled)
	assert.Equal(t, guard.Closed, s.State())
	assert.Equal(t, platform.counts(platform.acquired), platform.counts(platform.restored))
}

func TestSession_UnmountWhileOpening(t *testing.T) {
	ctrl := gomock.NewController(t)
	codec := mock.NewMockCodec(ctrl)
	platform := newFakePlatform()

	var res *guard.Resource
	s := guard.NewSession(platform, codec, "a@b.c", guard.WithResourceObserver(func(r *guard.Resource) { res = r }))
	codec.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, []byte, string) ([]byte, error) {
			s.Unmount()
			return threePages(), nil
		},
	)

	err := s.Open(context.Background(), []byte("blob"), "pw")
	assert.ErrorIs(t, err, guard.ErrUnmounted)
	assert.Equal(t, guard.Closed, s.State())
	assert.Equal(t, 1, res.Releases())
}

func TestSession_OpenWhileViewing(t *testing.T) {
	s := guard.NewSession(newFakePlatform(), nil, "a@b.c")
	require.NoError(t, s.Present(threePages()))

	assert.ErrorIs(t, s.Present(threePages()), guard.ErrNotClosed)
}

func TestSession_OpenWithoutCodec(t *testing.T) {
	s := guard.NewSession(newFakePlatform(), nil, "a@b.c")
	assert.ErrorIs(t, s.Open(context.Background(), []byte("x"), "pw"), guard.ErrCapability)
}

// ── Pages, zoom, idle ────────────────────────────────────────────────────────

func TestSession_PageAccess(t *testing.T) {
	s := guard.NewSession(newFakePlatform(), nil, "a@b.c")

	_, err := s.Page(0)
	assert.ErrorIs(t, err, guard.ErrNotViewing)

	require.NoError(t, s.Present(threePages()))
	_, err = s.Page(3)
	assert.ErrorIs(t, err, guard.ErrPageOutOfRange)
	_, err = s.Page(-1)
	assert.ErrorIs(t, err, guard.ErrPageOutOfRange)

	s.Close()
	assert.Zero(t, s.PageCount())
	_, err = s.Page(0)
	assert.ErrorIs(t, err, guard.ErrNotViewing)
}

func TestSession_ZoomIsDisplayOnly(t *testing.T) {
	s := guard.NewSession(newFakePlatform(), nil, "a@b.c")
	require.NoError(t, s.Present(threePages()))
	before, err := s.Page(0)
	require.NoError(t, err)

	assert.Equal(t, guard.DefaultZoom, s.Zoom())
	for range 20 {
		s.ZoomIn()
	}
	assert.Equal(t, guard.MaxZoom, s.Zoom())
	for range 20 {
		s.ZoomOut()
	}
	assert.Equal(t, guard.MinZoom, s.Zoom())
	assert.Equal(t, guard.DefaultZoom, s.ResetZoom())

	after, err := s.Page(0)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSession_InitialZoomRestoredOnReopen(t *testing.T) {
	s := guard.NewSession(newFakePlatform(), nil, "a@b.c", guard.WithInitialZoom(130))
	assert.Equal(t, guard.Zoom(130), s.Zoom())

	require.NoError(t, s.Present(threePages()))
	s.ZoomIn()
	s.Close()
	assert.Equal(t, guard.Zoom(130), s.Zoom())
}

func TestSession_ResetZoomReturnsToInitial(t *testing.T) {
	s := guard.NewSession(newFakePlatform(), nil, "a@b.c", guard.WithInitialZoom(130))
	require.NoError(t, s.Present(threePages()))

	s.ZoomOut()
	s.ZoomOut()
	assert.Equal(t, guard.Zoom(100), s.Zoom())
	assert.Equal(t, guard.Zoom(130), s.ResetZoom())
}

func TestSession_IdleTimeout(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	s := guard.NewSession(newFakePlatform(), nil, "a@b.c",
		guard.WithIdleTimeout(8*time.Hour),
		guard.WithClock(clock),
	)
	require.NoError(t, s.Present(threePages()))

	now = now.Add(7 * time.Hour)
	assert.False(t, s.CloseIfIdle())
	s.Touch()

	now = now.Add(7 * time.Hour)
	assert.False(t, s.CloseIfIdle())

	now = now.Add(time.Hour)
	assert.True(t, s.CloseIfIdle())
	assert.Equal(t, guard.Closed, s.State())
	assert.False(t, s.CloseIfIdle())
}

func TestSession_WatermarkCarriesIdentity(t *testing.T) {
	s := guard.NewSession(newFakePlatform(), nil, "analyst@example.com", guard.WithOrganisation("Fortiv Solutions"))

	text := s.Watermark().Text()
	assert.True(t, strings.HasPrefix(text, "analyst@example.com"))
	assert.Contains(t, text, guard.ConfidentialMarker)
	assert.Contains(t, text, "FORTIV SOLUTIONS")
}
