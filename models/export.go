// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ExportRecord is one row of the local export history. It never holds the
// password, a key or any report content.
type ExportRecord struct {
	ID            string
	DocumentID    string
	DocumentName  string
	FilePath      string
	ContainerSize int64
	CreatedAt     time.Time
}

// ExportRequest asks for one or more reports to be sealed into files.
type ExportRequest struct {
	DocumentIDs  []string
	Password     string
	Confirmation string
	OutputDir    string
	AnalystName  string
	AnalystEmail string
}

// ExportResult describes one sealed file.
type ExportResult struct {
	DocumentID string
	FilePath   string
	Size       int64
	Err        error
}
