// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/report-sealer/internal/crypto"
	"github.com/MKhiriev/report-sealer/internal/guard"
	"github.com/MKhiriev/report-sealer/internal/logger"
	"github.com/MKhiriev/report-sealer/internal/service"
)

// Options configure the viewer.
type Options struct {
	Identity     string
	Organisation string
	Zoom         guard.Zoom
	IdleTimeout  time.Duration

	// Print is the host print hook. It is replaced with a refusal while a
	// report is on screen.
	Print PrintFunc

	// ProgramOptions are appended to [ProgramOptions]; tests use them to
	// swap input and output.
	ProgramOptions []tea.ProgramOption
}

type TUI struct {
	open   service.OpenService
	codec  crypto.Codec
	opts   Options
	logger *logger.Logger
}

func New(services *service.Services, codec crypto.Codec, opts Options, log *logger.Logger) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{
		open:   services.OpenService,
		codec:  codec,
		opts:   opts,
		logger: log,
	}
}

func (t *TUI) newSession(platform guard.Platform) *guard.Session {
	return guard.NewSession(platform, t.codec, t.opts.Identity,
		guard.WithOrganisation(t.opts.Organisation),
		guard.WithInitialZoom(t.opts.Zoom),
		guard.WithIdleTimeout(t.opts.IdleTimeout),
		guard.WithLogger(t.logger),
	)
}

// View opens the sealed file at path in the guarded viewer and blocks until
// the viewer is closed. The session is unmounted on every return path, so
// the decrypted bytes never outlive the call.
func (t *TUI) View(ctx context.Context, path string) (closeReason string, err error) {
	container, err := t.open.Load(ctx, path)
	if err != nil {
		return "", err
	}

	platform := newTerminalPlatform(t.opts.Print)
	session := t.newSession(platform)
	defer session.Unmount()

	model := newViewerModel(ctx, session, platform, container, filepath.Base(path))
	opts := append(ProgramOptions(), tea.WithContext(ctx))
	opts = append(opts, t.opts.ProgramOptions...)

	finalModel, runErr := tea.NewProgram(model, opts...).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(*ViewerModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return result.CloseReason(), ErrUserQuit
	}
	return result.CloseReason(), nil
}

// ExportPassword runs the export password form and returns the confirmed
// password.
func (t *TUI) ExportPassword(ctx context.Context, title string) (string, error) {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.opts.ProgramOptions...)

	finalModel, runErr := tea.NewProgram(newExportFormModel(title), opts...).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(*ExportFormModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser || !result.done {
		return "", ErrUserQuit
	}
	return result.password, nil
}
