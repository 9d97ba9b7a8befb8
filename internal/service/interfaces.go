// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service orchestrates report export and sealed file loading.
//
// Export fetches a report from an [adapter.ReportSource], renders it to
// paginated text, seals it with a [crypto.Codec] and writes the container to
// disk with owner-only permissions. Rendered plaintext exists only in memory
// and is wiped once sealed. Loading reads a sealed file back for the guarded
// viewer; nothing in this package ever writes decrypted bytes.
package service

import (
	"context"

	"github.com/MKhiriev/report-sealer/internal/crypto"
	"github.com/MKhiriev/report-sealer/models"
)

// ExportService seals analysed reports into password protected files.
type ExportService interface {
	// Export seals the single document in req.DocumentIDs.
	Export(ctx context.Context, req models.ExportRequest) (models.ExportResult, error)

	// ExportAll seals every document in req.DocumentIDs, or every document
	// the source lists when req.DocumentIDs is empty. Documents are sealed
	// independently; the returned results hold per-document errors and the
	// error is [ErrPartialExport] when any of them failed.
	ExportAll(ctx context.Context, req models.ExportRequest) ([]models.ExportResult, error)

	// SealFile seals an arbitrary input file into out. An empty out means
	// the input name with the container extension appended.
	SealFile(ctx context.Context, in, out, password string) (models.ExportResult, error)

	// History lists recorded exports, newest first.
	History(ctx context.Context, limit int) ([]models.ExportRecord, error)

	// ForgetExport removes one history record. The sealed file is left in
	// place.
	ForgetExport(ctx context.Context, id string) error
}

// OpenService reads sealed files for the viewer.
type OpenService interface {
	// Load returns the raw container bytes of the sealed file at path.
	Load(ctx context.Context, path string) ([]byte, error)

	// Inspect reports the frame lengths of the sealed file at path without
	// decrypting it.
	Inspect(ctx context.Context, path string) (crypto.ContainerInfo, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
