// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/report-sealer/internal/logger"
	"github.com/MKhiriev/report-sealer/internal/utils"
	"github.com/MKhiriev/report-sealer/models"
)

// historyRepository is the SQLite-backed implementation of
// [HistoryRepository] over the export_history table.
type historyRepository struct {
	db     *DB
	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewHistoryRepository constructs a [HistoryRepository] on db. ids may be
// nil, in which case UUIDv7 identifiers are used.
func NewHistoryRepository(db *DB, ids utils.IDGenerator, log *logger.Logger) HistoryRepository {
	if ids == nil {
		ids = utils.NewUUIDGenerator()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &historyRepository{
		db:     db,
		ids:    ids,
		now:    func() time.Time { return time.Now().UTC() },
		logger: log,
	}
}

func (h *historyRepository) Record(ctx context.Context, rec models.ExportRecord) (models.ExportRecord, error) {
	if strings.TrimSpace(rec.DocumentID) == "" || strings.TrimSpace(rec.FilePath) == "" {
		return models.ExportRecord{}, ErrInvalidRecord
	}

	rec.ID = h.ids.Generate()
	rec.CreatedAt = h.now()

	query, args, err := buildInsertHistoryQuery(rec)
	if err != nil {
		return models.ExportRecord{}, err
	}

	res, err := h.db.ExecContext(ctx, query, args...)
	if err != nil {
		h.logger.Err(err).
			Str("func", "historyRepository.Record").
			Str("document_id", rec.DocumentID).
			Msg("failed to insert export record")
		return models.ExportRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ExportRecord{}, ErrRecordNotSaved
	}

	h.logger.Debug().
		Str("func", "historyRepository.Record").
		Str("id", rec.ID).
		Int64("size", rec.ContainerSize).
		Msg("export recorded")

	return rec, nil
}

func (h *historyRepository) List(ctx context.Context, limit int) ([]models.ExportRecord, error) {
	query, args, err := buildListHistoryQuery(limit)
	if err != nil {
		return nil, err
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		h.logger.Err(err).Str("func", "historyRepository.List").Msg("failed to query export history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.ExportRecord, 0, 16)
	for rows.Next() {
		var rec models.ExportRecord
		if err = rows.Scan(
			&rec.ID,
			&rec.DocumentID,
			&rec.DocumentName,
			&rec.FilePath,
			&rec.ContainerSize,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (h *historyRepository) Delete(ctx context.Context, id string) error {
	query, args, err := buildDeleteHistoryQuery(id)
	if err != nil {
		return err
	}

	res, err := h.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}

	return nil
}
