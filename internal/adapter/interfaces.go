// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides read-only sources of analysed reports.
//
// The primary abstraction is [ReportSource]. The package ships two
// implementations: a Supabase PostgREST client ([NewSupabaseSource]) and a
// JSON export reader ([NewFileSource]). A direct PostgreSQL source lives in
// the store package and satisfies the same interface.
//
// HTTP status codes are mapped to the sentinel errors in errors.go so callers
// can use [errors.Is] regardless of the source (e.g. [ErrNotFound] for a
// missing document).
package adapter

import (
	"context"

	"github.com/MKhiriev/report-sealer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/report_source_mock.go -package=mock

// ReportSource fetches analysed documents and their clauses.
type ReportSource interface {
	// FetchReport returns the document with documentID and all of its
	// clause analyses ordered by clause number. Returns [ErrNotFound]
	// (wrapped) when no such document exists.
	FetchReport(ctx context.Context, documentID string) (models.Report, error)

	// ListDocuments returns up to limit documents, newest first. A limit of
	// zero or less means the source default.
	ListDocuments(ctx context.Context, limit int) ([]models.Document, error)
}
