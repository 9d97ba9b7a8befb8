// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the SQL-backed parts of report-sealer: the local
// SQLite export history and a direct PostgreSQL reader for the analysis
// database.
//
// The PostgreSQL reader implements [adapter.ReportSource] and retries
// transient failures classified by [PostgresErrorClassifier]. The export
// history never stores passwords, keys or report content.
package store

import (
	"context"

	"github.com/MKhiriev/report-sealer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HistoryRepository records sealed exports.
type HistoryRepository interface {
	// Record stores rec with a fresh ID and creation time and returns the
	// stored record.
	Record(ctx context.Context, rec models.ExportRecord) (models.ExportRecord, error)

	// List returns up to limit records, newest first. A limit of zero or
	// less returns every record.
	List(ctx context.Context, limit int) ([]models.ExportRecord, error)

	// Delete removes the record with id. Returns [ErrRecordNotFound] when
	// nothing was deleted.
	Delete(ctx context.Context, id string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
