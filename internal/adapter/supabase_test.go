// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/report-sealer/internal/config"
	"github.com/MKhiriev/report-sealer/internal/logger"
	"github.com/MKhiriev/report-sealer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "anon-key"

func newTestSource(t *testing.T, handler http.HandlerFunc) ReportSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	src, err := NewSupabaseSource(config.Source{
		SupabaseURL:    srv.URL + "/",
		SupabaseKey:    testKey,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return src
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestNewSupabaseSource_RequiresURLAndKey(t *testing.T) {
	_, err := NewSupabaseSource(config.Source{SupabaseURL: "https://x"}, nil)
	assert.ErrorIs(t, err, ErrInvalidSource)

	_, err = NewSupabaseSource(config.Source{SupabaseKey: "k"}, nil)
	assert.ErrorIs(t, err, ErrInvalidSource)
}

func TestSupabaseFetchReport_Success(t *testing.T) {
	var calls []string
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testKey, r.Header.Get("apikey"))
		assert.Equal(t, "Bearer "+testKey, r.Header.Get("Authorization"))
		calls = append(calls, r.URL.Path)

		switch r.URL.Path {
		case documentsPath:
			assert.Equal(t, "eq.doc-1", r.URL.Query().Get("id"))
			writeJSON(w, http.StatusOK, `[{"id":"doc-1","document_name":"Murabaha.pdf","total_clauses":2}]`)
		case clausesPath:
			assert.Equal(t, "eq.doc-1", r.URL.Query().Get("document_id"))
			assert.Equal(t, "clause_number.asc", r.URL.Query().Get("order"))
			writeJSON(w, http.StatusOK, `[
				{"id":"c1","document_id":"doc-1","clause_number":"1","classification":"compliant","confidence_score":0.9},
				{"id":"c2","document_id":"doc-1","clause_number":"2","classification":"non_compliant","shariah_issues":["riba"]}
			]`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	rep, err := src.FetchReport(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, []string{documentsPath, clausesPath}, calls)
	assert.Equal(t, "Murabaha.pdf", rep.Document.DocumentName)
	require.Len(t, rep.Clauses, 2)
	assert.Equal(t, models.Compliant, rep.Clauses[0].Classification)
	assert.Equal(t, []string{"riba"}, rep.Clauses[1].ShariahIssues)
}

func TestSupabaseFetchReport_EmptyResultIsNotFound(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})

	_, err := src.FetchReport(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSupabaseFetchReport_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"JWT expired","code":"PGRST301"}`, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, `{"message":"permission denied"}`, ErrForbidden},
		{"bad request", http.StatusBadRequest, `{"message":"bad filter"}`, ErrBadRequest},
		{"not found", http.StatusNotFound, ``, ErrNotFound},
		{"not acceptable", http.StatusNotAcceptable, `{"message":"no rows"}`, ErrNotFound},
		{"server error", http.StatusInternalServerError, `oops`, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := src.FetchReport(context.Background(), "doc-1")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSupabaseFetchReport_ClauseFailure(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == documentsPath {
			writeJSON(w, http.StatusOK, `[{"id":"doc-1"}]`)
			return
		}
		writeJSON(w, http.StatusForbidden, `{"message":"rls"}`)
	})

	_, err := src.FetchReport(context.Background(), "doc-1")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "fetch clauses")
}

func TestSupabaseListDocuments(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, documentsPath, r.URL.Path)
		assert.Equal(t, "timestamp.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, `[{"id":"b"},{"id":"a"}]`)
	})

	docs, err := src.ListDocuments(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].ID)
}

func TestSupabase_CanceledContext(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.ListDocuments(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestErrorDetail(t *testing.T) {
	assert.Equal(t, "PGRST301 JWT expired (refresh it)",
		errorDetail([]byte(`{"code":"PGRST301","message":"JWT expired","hint":"refresh it"}`)))
	assert.Equal(t, "plain text", errorDetail([]byte("  plain text \n")))
	assert.Equal(t, "", errorDetail(nil))
}
