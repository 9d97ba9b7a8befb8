// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/MKhiriev/report-sealer/models"
)

type fileSource struct {
	path string
}

// NewFileSource returns a [ReportSource] over a JSON export. The file holds
// either one report object ({"document": ..., "clauses": [...]}) or an array
// of them. It is read on every call so edits are picked up.
func NewFileSource(path string) (ReportSource, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: file path is required", ErrInvalidSource)
	}
	return &fileSource{path: path}, nil
}

func (f *fileSource) load(ctx context.Context) ([]models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var reports []models.Report
		if err = json.Unmarshal(data, &reports); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
		}
		return reports, nil
	}

	var report models.Report
	if err = json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	return []models.Report{report}, nil
}

func (f *fileSource) FetchReport(ctx context.Context, documentID string) (models.Report, error) {
	reports, err := f.load(ctx)
	if err != nil {
		return models.Report{}, err
	}

	for _, r := range reports {
		if r.Document.ID != documentID {
			continue
		}
		slices.SortStableFunc(r.Clauses, func(a, b models.ClauseAnalysis) int {
			return compareClauseNumbers(a.ClauseNumber, b.ClauseNumber)
		})
		return r, nil
	}

	return models.Report{}, fmt.Errorf("%w: %s", ErrNotFound, documentID)
}

func (f *fileSource) ListDocuments(ctx context.Context, limit int) ([]models.Document, error) {
	reports, err := f.load(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]models.Document, 0, len(reports))
	for _, r := range reports {
		docs = append(docs, r.Document)
	}
	slices.SortStableFunc(docs, func(a, b models.Document) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

// compareClauseNumbers orders "2" before "10" and falls back to a string
// comparison for labels such as "3.a".
func compareClauseNumbers(a, b string) int {
	var x, y int
	_, errA := fmt.Sscan(a, &x)
	_, errB := fmt.Sscan(b, &y)
	if errA == nil && errB == nil && x != y {
		return cmp.Compare(x, y)
	}
	return cmp.Compare(a, b)
}
