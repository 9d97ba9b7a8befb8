// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types shared between report sources, the
// renderer, export history and the command line.
//
// JSON tags follow the column names of the analysis database so rows from
// PostgREST, a direct SQL read or an exported JSON file decode the same way.
package models

import "time"

// Document is one analysed contract (table input_documents).
type Document struct {
	ID              string    `json:"id"`
	DocumentName    string    `json:"document_name"`
	DocumentType    string    `json:"document_type"`
	Timestamp       time.Time `json:"timestamp"`
	AnalysisStatus  string    `json:"analysis_status"`
	TotalClauses    int       `json:"total_clauses"`
	AnalyzedClauses int       `json:"analyzed_clauses"`
	UploadedBy      string    `json:"uploaded_by"`
	PageCount       int       `json:"page_count"`
	Language        string    `json:"language"`
	CriticalClauses int       `json:"critical_clauses"`
}

// Clause classifications.
const (
	Compliant    = "compliant"
	NeedsReview  = "needs_review"
	NonCompliant = "non_compliant"
)

// Clause severities.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// ClauseAnalysis is the analysis of one clause (table clause_analyses).
type ClauseAnalysis struct {
	ID                   string    `json:"id"`
	DocumentID           string    `json:"document_id"`
	ClauseNumber         string    `json:"clause_number"`
	ClauseText           string    `json:"clause_text"`
	Classification       string    `json:"classification"`
	Severity             string    `json:"severity"`
	ConfidenceScore      float64   `json:"confidence_score"`
	ShariahIssues        []string  `json:"shariah_issues"`
	SamaIssues           []string  `json:"sama_issues"`
	Findings             string    `json:"findings"`
	Remediation          string    `json:"remediation"`
	IsCriticalForShariah bool      `json:"is_critical_for_shariah"`
	ContainsArabic       bool      `json:"contains_arabic"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Report is a document together with all of its clause analyses, ordered
// by clause number.
type Report struct {
	Document Document         `json:"document"`
	Clauses  []ClauseAnalysis `json:"clauses"`
}

// Summary is computed from a report before rendering. ComplianceScore is
// round(compliant / total * 100), or 0 for a report without clauses.
type Summary struct {
	TotalClauses      int
	CompliantCount    int
	ReviewCount       int
	NonCompliantCount int
	ComplianceScore   int
	GeneratedAt       time.Time
	AnalystName       string
	AnalystEmail      string
}
