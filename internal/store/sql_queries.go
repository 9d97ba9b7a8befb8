// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/report-sealer/models"
)

const (
	documentsTable = "input_documents"
	clausesTable   = "clause_analyses"
	historyTable   = "export_history"
)

var (
	psqlBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	// Nullable analysis columns are coalesced so rows scan into plain Go
	// types. Issue lists are read as JSON whether stored as text[] or jsonb.
	documentColumns = []string{
		"id",
		"COALESCE(document_name, '')",
		"COALESCE(document_type, '')",
		"timestamp",
		"COALESCE(analysis_status, '')",
		"COALESCE(total_clauses, 0)",
		"COALESCE(analyzed_clauses, 0)",
		"COALESCE(uploaded_by::text, '')",
		"COALESCE(page_count, 0)",
		"COALESCE(language, '')",
		"COALESCE(critical_clauses, 0)",
	}

	clauseColumns = []string{
		"id",
		"document_id",
		"COALESCE(clause_number, '')",
		"COALESCE(clause_text, '')",
		"COALESCE(classification, '')",
		"COALESCE(severity, '')",
		"COALESCE(confidence_score, 0)",
		"COALESCE(to_jsonb(shariah_issues), '[]'::jsonb)",
		"COALESCE(to_jsonb(sama_issues), '[]'::jsonb)",
		"COALESCE(findings, '')",
		"COALESCE(remediation, '')",
		"COALESCE(is_critical_for_shariah, false)",
		"COALESCE(contains_arabic, false)",
		"created_at",
		"COALESCE(updated_at, created_at)",
	}

	historyColumns = []string{
		"id",
		"document_id",
		"document_name",
		"file_path",
		"container_size",
		"created_at",
	}
)

func buildSelectDocumentQuery(documentID string) (string, []any, error) {
	query, args, err := psqlBuilder.
		Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{"id": documentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectClausesQuery orders clause numbers that are plain integers
// numerically, so "10" sorts after "9".
func buildSelectClausesQuery(documentID string) (string, []any, error) {
	query, args, err := psqlBuilder.
		Select(clauseColumns...).
		From(clausesTable).
		Where(sq.Eq{"document_id": documentID}).
		OrderBy(
			"CASE WHEN clause_number ~ '^[0-9]+$' THEN clause_number::int END NULLS LAST",
			"clause_number ASC",
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListDocumentsQuery(limit int) (string, []any, error) {
	builder := psqlBuilder.
		Select(documentColumns...).
		From(documentsTable).
		OrderBy("timestamp DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertHistoryQuery(rec models.ExportRecord) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Insert(historyTable).
		Columns(historyColumns...).
		Values(rec.ID, rec.DocumentID, rec.DocumentName, rec.FilePath, rec.ContainerSize, rec.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListHistoryQuery(limit int) (string, []any, error) {
	builder := sqliteBuilder.
		Select(historyColumns...).
		From(historyTable).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteHistoryQuery(id string) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Delete(historyTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
