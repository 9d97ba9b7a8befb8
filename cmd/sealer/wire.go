// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/report-sealer/internal/adapter"
	"github.com/MKhiriev/report-sealer/internal/config"
	"github.com/MKhiriev/report-sealer/internal/crypto"
	"github.com/MKhiriev/report-sealer/internal/report"
	"github.com/MKhiriev/report-sealer/internal/service"
	"github.com/MKhiriev/report-sealer/internal/store"
	"github.com/MKhiriev/report-sealer/internal/utils"
	"github.com/MKhiriev/report-sealer/internal/workers"
)

// wiring is the assembled object graph for one command run.
type wiring struct {
	services *service.Services
	codec    crypto.Codec
	closers  []func() error
}

func (w *wiring) Close() error {
	var errs []error
	for i := len(w.closers) - 1; i >= 0; i-- {
		errs = append(errs, w.closers[i]())
	}
	return errors.Join(errs...)
}

type wireOptions struct {
	// source connects the configured report source.
	source bool
	// requireHistory fails the wiring when the history database cannot be
	// opened. Otherwise exports go unrecorded with a warning.
	requireHistory bool
}

func (c *cli) wire(ctx context.Context, opts wireOptions) (*wiring, error) {
	w := &wiring{codec: crypto.NewCodec()}

	var history store.HistoryRepository
	historyDB, err := store.NewConnectSQLite(ctx, c.cfg.Storage.HistoryDB, c.logger)
	switch {
	case err == nil:
		w.closers = append(w.closers, historyDB.Close)
		history = store.NewHistoryRepository(historyDB, utils.NewUUIDGenerator(), c.logger)
	case opts.requireHistory:
		return nil, err
	default:
		warnf(c.errOut, "export history unavailable: %v", err)
	}

	var source adapter.ReportSource
	if opts.source {
		source, err = c.connectSource(ctx, w)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	w.services, err = service.NewServices(service.Deps{
		Source:    source,
		History:   history,
		Codec:     w.codec,
		Renderer:  report.NewRenderer(report.WithOrganisation(c.cfg.Viewer.Organisation)),
		Pool:      workers.NewPool(c.cfg.Export.Workers),
		BuildInfo: c.buildInfo,
	}, c.logger)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}

func (c *cli) connectSource(ctx context.Context, w *wiring) (adapter.ReportSource, error) {
	src := c.cfg.Source
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", adapter.ErrInvalidSource, err)
	}

	switch src.Kind {
	case config.SourceFile:
		return adapter.NewFileSource(src.File)
	case config.SourceSupabase:
		return adapter.NewSupabaseSource(src, c.logger)
	case config.SourcePostgres:
		db, err := store.NewConnectPostgres(ctx, src.PostgresDSN, c.logger)
		if err != nil {
			return nil, err
		}
		w.closers = append(w.closers, db.Close)
		return store.NewPostgresReportSource(db, src.Retries, c.logger), nil
	}
	return nil, fmt.Errorf("%w: %q", adapter.ErrUnknownSource, src.Kind)
}
