// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReportFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestNewFileSource_EmptyPath(t *testing.T) {
	_, err := NewFileSource("")
	assert.ErrorIs(t, err, ErrInvalidSource)
}

func TestFileSource_SingleReport(t *testing.T) {
	src, err := NewFileSource(writeReportFile(t, `{
		"document": {"id": "doc-1", "document_name": "Ijara.pdf"},
		"clauses": [
			{"id": "c10", "clause_number": "10"},
			{"id": "c2", "clause_number": "2"},
			{"id": "c1", "clause_number": "1"}
		]
	}`))
	require.NoError(t, err)

	rep, err := src.FetchReport(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Ijara.pdf", rep.Document.DocumentName)

	var order []string
	for _, c := range rep.Clauses {
		order = append(order, c.ClauseNumber)
	}
	assert.Equal(t, []string{"1", "2", "10"}, order)

	_, err = src.FetchReport(context.Background(), "doc-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileSource_ListNewestFirst(t *testing.T) {
	src, err := NewFileSource(writeReportFile(t, `[
		{"document": {"id": "old", "timestamp": "2025-01-01T00:00:00Z"}},
		{"document": {"id": "new", "timestamp": "2025-06-01T00:00:00Z"}},
		{"document": {"id": "mid", "timestamp": "2025-03-01T00:00:00Z"}}
	]`))
	require.NoError(t, err)

	docs, err := src.ListDocuments(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "new", docs[0].ID)
	assert.Equal(t, "mid", docs[1].ID)
}

func TestFileSource_Errors(t *testing.T) {
	missing, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	_, err = missing.ListDocuments(context.Background(), 0)
	assert.Error(t, err)

	broken, err := NewFileSource(writeReportFile(t, `{"document":`))
	require.NoError(t, err)
	_, err = broken.FetchReport(context.Background(), "x")
	assert.ErrorIs(t, err, ErrMalformedData)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = broken.FetchReport(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareClauseNumbers(t *testing.T) {
	assert.Negative(t, compareClauseNumbers("2", "10"))
	assert.Positive(t, compareClauseNumbers("10", "9"))
	assert.Negative(t, compareClauseNumbers("3.a", "3.b"))
	assert.Zero(t, compareClauseNumbers("4", "4"))
}
