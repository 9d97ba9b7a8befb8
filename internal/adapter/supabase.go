// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/report-sealer/internal/config"
	"github.com/MKhiriev/report-sealer/internal/logger"
	"github.com/MKhiriev/report-sealer/internal/utils"
	"github.com/MKhiriev/report-sealer/models"
)

const (
	documentsPath = "/rest/v1/input_documents"
	clausesPath   = "/rest/v1/clause_analyses"

	defaultListLimit = 10
)

type supabaseSource struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewSupabaseSource returns a [ReportSource] reading the input_documents and
// clause_analyses tables through the project's PostgREST endpoint.
func NewSupabaseSource(cfg config.Source, log *logger.Logger) (ReportSource, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("%w: supabase URL and key are required", ErrInvalidSource)
	}
	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClient(utils.HTTPClientConfig{
		BaseURL:   strings.TrimRight(cfg.SupabaseURL, "/"),
		Timeout:   cfg.RequestTimeout,
		Retries:   cfg.Retries,
		UserAgent: "report-sealer",
	})
	client.SetHeader("apikey", cfg.SupabaseKey).
		SetAuthToken(cfg.SupabaseKey).
		SetHeader("Accept", "application/json")

	return &supabaseSource{client: client, logger: log}, nil
}

func (s *supabaseSource) FetchReport(ctx context.Context, documentID string) (models.Report, error) {
	var docs []models.Document
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"id":     "eq." + documentID,
			"select": "*",
		}).
		SetResult(&docs).
		Get(documentsPath)
	if err != nil {
		s.logger.Err(err).Str("func", "supabaseSource.FetchReport").Msg("documents request failed")
		return models.Report{}, fmt.Errorf("fetch document: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Report{}, fmt.Errorf("fetch document: %w", err)
	}
	if len(docs) == 0 {
		return models.Report{}, fmt.Errorf("%w: %s", ErrNotFound, documentID)
	}

	var clauses []models.ClauseAnalysis
	resp, err = s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"document_id": "eq." + documentID,
			"select":      "*",
			"order":       "clause_number.asc",
		}).
		SetResult(&clauses).
		Get(clausesPath)
	if err != nil {
		s.logger.Err(err).Str("func", "supabaseSource.FetchReport").Msg("clauses request failed")
		return models.Report{}, fmt.Errorf("fetch clauses: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Report{}, fmt.Errorf("fetch clauses: %w", err)
	}

	s.logger.Debug().
		Str("document_id", documentID).
		Int("clauses", len(clauses)).
		Msg("report fetched")

	return models.Report{Document: docs[0], Clauses: clauses}, nil
}

func (s *supabaseSource) ListDocuments(ctx context.Context, limit int) ([]models.Document, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var docs []models.Document
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"select": "*",
			"order":  "timestamp.desc",
			"limit":  strconv.Itoa(limit),
		}).
		SetResult(&docs).
		Get(documentsPath)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}
