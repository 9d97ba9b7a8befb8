// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/report-sealer/internal/adapter"
	"github.com/MKhiriev/report-sealer/internal/logger"
	"github.com/MKhiriev/report-sealer/models"
)

const (
	defaultMaxRetries = 2
	retryBaseDelay    = 100 * time.Millisecond
)

// postgresReportSource reads reports straight from the analysis database.
type postgresReportSource struct {
	db         *DB
	logger     *logger.Logger
	maxRetries uint64
	baseDelay  time.Duration
}

// NewPostgresReportSource returns an [adapter.ReportSource] over db.
// Retryable failures are attempted up to maxRetries more times with
// exponential backoff; a negative maxRetries selects the default.
func NewPostgresReportSource(db *DB, maxRetries int, log *logger.Logger) adapter.ReportSource {
	if log == nil {
		log = logger.Nop()
	}
	retries := uint64(defaultMaxRetries)
	if maxRetries >= 0 {
		retries = uint64(maxRetries)
	}
	if db.errorClassificator == nil {
		db.errorClassificator = NewPostgresErrorClassifier()
	}
	return &postgresReportSource{
		db:         db,
		logger:     log,
		maxRetries: retries,
		baseDelay:  retryBaseDelay,
	}
}

func (p *postgresReportSource) FetchReport(ctx context.Context, documentID string) (models.Report, error) {
	var report models.Report

	err := p.withRetry(ctx, "postgresReportSource.FetchReport", func(ctx context.Context) error {
		doc, err := p.fetchDocument(ctx, documentID)
		if err != nil {
			return err
		}
		clauses, err := p.fetchClauses(ctx, documentID)
		if err != nil {
			return err
		}
		report = models.Report{Document: doc, Clauses: clauses}
		return nil
	})
	if err != nil {
		return models.Report{}, err
	}

	return report, nil
}

func (p *postgresReportSource) ListDocuments(ctx context.Context, limit int) ([]models.Document, error) {
	var docs []models.Document

	err := p.withRetry(ctx, "postgresReportSource.ListDocuments", func(ctx context.Context) error {
		query, args, err := buildListDocumentsQuery(limit)
		if err != nil {
			return err
		}

		rows, err := p.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		docs = docs[:0]
		for rows.Next() {
			doc, err := scanDocument(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			docs = append(docs, doc)
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (p *postgresReportSource) fetchDocument(ctx context.Context, documentID string) (models.Document, error) {
	query, args, err := buildSelectDocumentQuery(documentID)
	if err != nil {
		return models.Document{}, err
	}

	doc, err := scanDocument(p.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Document{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, documentID)
	case err != nil:
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return doc, nil
}

func (p *postgresReportSource) fetchClauses(ctx context.Context, documentID string) ([]models.ClauseAnalysis, error) {
	query, args, err := buildSelectClausesQuery(documentID)
	if err != nil {
		return nil, err
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clauses := make([]models.ClauseAnalysis, 0, 32)
	for rows.Next() {
		var (
			c             models.ClauseAnalysis
			shariah, sama []byte
		)
		if err = rows.Scan(
			&c.ID,
			&c.DocumentID,
			&c.ClauseNumber,
			&c.ClauseText,
			&c.Classification,
			&c.Severity,
			&c.ConfidenceScore,
			&shariah,
			&sama,
			&c.Findings,
			&c.Remediation,
			&c.IsCriticalForShariah,
			&c.ContainsArabic,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if c.ShariahIssues, err = decodeIssues(shariah); err != nil {
			return nil, fmt.Errorf("%w: shariah_issues: %w", ErrScanningRows, err)
		}
		if c.SamaIssues, err = decodeIssues(sama); err != nil {
			return nil, fmt.Errorf("%w: sama_issues: %w", ErrScanningRows, err)
		}
		clauses = append(clauses, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return clauses, nil
}

// withRetry runs fn, repeating it while the classifier reports the failure
// as retryable and attempts remain.
func (p *postgresReportSource) withRetry(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)
	attempt := 0

	backoff := retry.WithMaxRetries(p.maxRetries, retry.NewExponential(p.baseDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}

		class := p.db.errorClassificator.Classify(err)
		log.Err(err).
			Str("func", name).
			Int("attempt", attempt).
			Str("pg_code", postgresError(err)).
			Str("class", class.String()).
			Msg("database read failed")

		if class == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (models.Document, error) {
	var d models.Document
	err := row.Scan(
		&d.ID,
		&d.DocumentName,
		&d.DocumentType,
		&d.Timestamp,
		&d.AnalysisStatus,
		&d.TotalClauses,
		&d.AnalyzedClauses,
		&d.UploadedBy,
		&d.PageCount,
		&d.Language,
		&d.CriticalClauses,
	)
	return d, err
}

func decodeIssues(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var issues []string
	if err := json.Unmarshal(raw, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}
