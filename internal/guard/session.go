// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/report-sealer/internal/crypto"
	"github.com/MKhiriev/report-sealer/internal/logger"
)

// Session is one guarded viewing of a decrypted report.
//
// All methods are safe for concurrent use. Subscribers are called without
// the session lock held, in the goroutine that caused the transition.
type Session struct {
	mu sync.Mutex

	platform     Platform
	codec        crypto.Codec
	logger       *logger.Logger
	identity     string
	organisation string
	watermark    Watermark

	state       State
	visibility  Visibility
	zoom        Zoom
	initialZoom Zoom
	unmounted   bool
	cancelled   bool

	resource *Resource
	pages    []span
	restores []Restore

	listeners []func(Event)
	observe   func(*Resource)

	idleTimeout  time.Duration
	lastActivity time.Time
	now          func() time.Time
}

// SessionOption configures a [Session].
type SessionOption func(*Session)

// WithLogger attaches a logger. Only states, page counts and sizes are
// logged.
func WithLogger(l *logger.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithOrganisation adds an organisation name to the watermark.
func WithOrganisation(org string) SessionOption {
	return func(s *Session) {
		s.organisation = org
	}
}

// WithIdleTimeout closes a viewing session after d without [Session.Touch].
// Zero disables the timeout.
func WithIdleTimeout(d time.Duration) SessionOption {
	return func(s *Session) {
		s.idleTimeout = d
	}
}

// WithInitialZoom sets the zoom level a viewing starts at. Out of range
// values are clamped.
func WithInitialZoom(z Zoom) SessionOption {
	return func(s *Session) {
		s.initialZoom = ClampZoom(z)
	}
}

// WithResourceObserver is called with every resource the session creates,
// before it is used. Tests use it to account for releases.
func WithResourceObserver(fn func(*Resource)) SessionOption {
	return func(s *Session) {
		s.observe = fn
	}
}

// WithClock replaces time.Now for idle accounting.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession constructs a closed session for the viewer identified by
// identity. codec may be nil when the caller only uses [Session.Present].
func NewSession(platform Platform, codec crypto.Codec, identity string, opts ...SessionOption) *Session {
	s := &Session{
		platform:    platform,
		codec:       codec,
		logger:      logger.Nop(),
		identity:    identity,
		zoom:        DefaultZoom,
		initialZoom: DefaultZoom,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.zoom = s.initialZoom
	s.watermark = NewWatermark(s.identity, s.organisation)
	return s
}

// Subscribe registers fn for every subsequent [Event].
func (s *Session) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Open decrypts container with password and enters Viewing. Any failure
// leaves the session Closed with nothing retained; the returned error wraps
// the codec error so callers can match it with errors.Is.
func (s *Session) Open(ctx context.Context, container []byte, password string) error {
	if s.codec == nil {
		return fmt.Errorf("%w: no codec configured", ErrCapability)
	}
	if err := s.begin(); err != nil {
		return err
	}

	plaintext, err := s.codec.Open(ctx, container, password)
	if err != nil {
		s.abort(nil, nil)
		s.logger.Debug().Err(err).Int("container_size", len(container)).Msg("open failed")
		return fmt.Errorf("open container: %w", err)
	}

	return s.mount(plaintext)
}

// Present enters Viewing with bytes that were already decrypted. The slice
// is moved into a locked buffer and wiped.
func (s *Session) Present(plaintext []byte) error {
	if err := s.begin(); err != nil {
		return err
	}
	return s.mount(plaintext)
}

func (s *Session) begin() error {
	s.mu.Lock()
	switch {
	case s.unmounted:
		s.mu.Unlock()
		return ErrUnmounted
	case s.state != Closed:
		s.mu.Unlock()
		return ErrNotClosed
	}
	s.state = Opening
	s.cancelled = false
	ev := s.eventLocked()
	s.mu.Unlock()

	s.logger.Debug().Str("state", Opening.String()).Msg("session transition")
	s.emit(ev)
	return nil
}

func (s *Session) mount(plaintext []byte) error {
	res := NewResource(plaintext)
	if s.observe != nil {
		s.observe(res)
	}

	pages, err := decodeDocument(res.Bytes())
	if err != nil {
		s.abort(res, nil)
		return fmt.Errorf("decode document: %w", err)
	}

	restores, err := s.acquire()
	if err != nil {
		s.abort(res, restores)
		return err
	}

	s.mu.Lock()
	if s.unmounted || s.cancelled {
		unmounted := s.unmounted
		s.mu.Unlock()
		s.abort(res, restores)
		if unmounted {
			return ErrUnmounted
		}
		return ErrCancelled
	}
	s.resource = res
	s.pages = pages
	s.restores = restores
	s.state = Viewing
	s.visibility = Visible
	s.zoom = s.initialZoom
	s.lastActivity = s.now()
	ev := s.eventLocked()
	s.mu.Unlock()

	s.logger.Info().
		Str("state", Viewing.String()).
		Int("pages", len(pages)).
		Int("size", res.Size()).
		Msg("session transition")
	s.emit(ev)
	return nil
}

// acquire installs every platform capability. On error the handles acquired
// so far are returned so the caller can restore them.
func (s *Session) acquire() ([]Restore, error) {
	var restores []Restore

	steps := []struct {
		name string
		fn   func() (Restore, error)
	}{
		{"print", s.platform.SuppressPrint},
		{"shortcuts", s.platform.SuppressShortcuts},
		{"context menu", s.platform.SuppressContextMenu},
		{"visibility", func() (Restore, error) { return s.platform.OnVisibilityChange(s.setHidden) }},
	}

	for _, step := range steps {
		restore, err := step.fn()
		if err != nil {
			return restores, fmt.Errorf("%w: %s: %v", ErrCapability, step.name, err)
		}
		if restore != nil {
			restores = append(restores, restore)
		}
	}

	return restores, nil
}

// abort returns an Opening session to Closed, releasing whatever was set up.
func (s *Session) abort(res *Resource, restores []Restore) {
	restoreAll(restores)
	if res != nil {
		res.Release()
	}

	s.mu.Lock()
	s.state = Closed
	s.visibility = Visible
	ev := s.eventLocked()
	s.mu.Unlock()

	s.logger.Debug().Str("state", Closed.String()).Msg("session aborted")
	s.emit(ev)
}

// Close leaves Viewing, restoring every capability and releasing the
// decrypted bytes. Closing an Opening session makes the pending open fail.
// Close is idempotent.
func (s *Session) Close() {
	s.teardown(false)
}

// Unmount closes the session and refuses every later Open or Present. It is
// the teardown path for hosts that go away without an explicit close.
func (s *Session) Unmount() {
	s.teardown(true)
}

func (s *Session) teardown(unmount bool) {
	s.mu.Lock()
	if unmount {
		s.unmounted = true
	}
	switch s.state {
	case Opening:
		s.cancelled = true
		s.mu.Unlock()
		return
	case Closed:
		s.mu.Unlock()
		return
	}

	res, restores := s.resource, s.restores
	s.resource, s.pages, s.restores = nil, nil, nil
	s.state = Closed
	s.visibility = Visible
	s.zoom = s.initialZoom
	ev := s.eventLocked()
	s.mu.Unlock()

	restoreAll(restores)
	res.Release()

	s.logger.Info().Str("state", Closed.String()).Bool("unmount", unmount).Msg("session transition")
	s.emit(ev)
}

func restoreAll(restores []Restore) {
	for i := len(restores) - 1; i >= 0; i-- {
		restores[i]()
	}
}

func (s *Session) setHidden(hidden bool) {
	s.mu.Lock()
	if s.state != Viewing {
		s.mu.Unlock()
		return
	}
	next := Visible
	if hidden {
		next = Obscured
	}
	if s.visibility == next {
		s.mu.Unlock()
		return
	}
	s.visibility = next
	ev := s.eventLocked()
	s.mu.Unlock()

	s.logger.Debug().Str("visibility", next.String()).Msg("session visibility")
	s.emit(ev)
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Visibility returns the current visibility sub-state. It is Visible
// whenever the session is not Viewing.
func (s *Session) Visibility() Visibility {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibility
}

// Obscured reports whether content is currently hidden from the display.
func (s *Session) Obscured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == Viewing && s.visibility == Obscured
}

// Watermark returns the stamp tiled over this session's pages.
func (s *Session) Watermark() Watermark {
	return s.watermark
}

// PageCount is the number of pages while Viewing, otherwise 0.
func (s *Session) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// Page returns the text of page i (zero-based). Content is only returned
// while Viewing and Visible.
func (s *Session) Page(i int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.state != Viewing:
		return "", ErrNotViewing
	case s.visibility == Obscured:
		return "", ErrObscured
	case i < 0 || i >= len(s.pages):
		return "", fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, i+1, len(s.pages))
	}

	p := s.pages[i]
	return string(s.resource.Bytes()[p.start:p.end]), nil
}

// Zoom returns the current display zoom.
func (s *Session) Zoom() Zoom {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoom
}

// ZoomIn, ZoomOut and ResetZoom adjust the display zoom and return the new
// level. ResetZoom returns to the level set by [WithInitialZoom], which is
// [DefaultZoom] unless configured.
func (s *Session) ZoomIn() Zoom    { return s.setZoom(func(z Zoom) Zoom { return z.In() }) }
func (s *Session) ZoomOut() Zoom   { return s.setZoom(func(z Zoom) Zoom { return z.Out() }) }
func (s *Session) ResetZoom() Zoom { return s.setZoom(func(Zoom) Zoom { return s.initialZoom }) }

func (s *Session) setZoom(next func(Zoom) Zoom) Zoom {
	s.mu.Lock()
	s.zoom = next(s.zoom)
	z := s.zoom
	ev := s.eventLocked()
	s.mu.Unlock()

	s.emit(ev)
	return z
}

// Touch records viewer activity for the idle timeout.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = s.now()
}

// CloseIfIdle closes a viewing session that has been idle longer than the
// configured timeout and reports whether it did.
func (s *Session) CloseIfIdle() bool {
	s.mu.Lock()
	expired := s.state == Viewing && s.idleTimeout > 0 && s.now().Sub(s.lastActivity) >= s.idleTimeout
	s.mu.Unlock()

	if !expired {
		return false
	}
	s.logger.Info().Dur("idle_timeout", s.idleTimeout).Msg("closing idle session")
	s.Close()
	return true
}

func (s *Session) eventLocked() Event {
	return Event{State: s.state, Visibility: s.visibility, Zoom: s.zoom}
}

func (s *Session) emit(ev Event) {
	s.mu.Lock()
	listeners := append([]func(Event){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(ev)
	}
}
