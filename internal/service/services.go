// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/report-sealer/internal/adapter"
	"github.com/MKhiriev/report-sealer/internal/crypto"
	"github.com/MKhiriev/report-sealer/internal/logger"
	"github.com/MKhiriev/report-sealer/internal/report"
	"github.com/MKhiriev/report-sealer/internal/store"
	"github.com/MKhiriev/report-sealer/internal/workers"
	"github.com/MKhiriev/report-sealer/models"
)

// Services groups the services used by the command line.
type Services struct {
	ExportService  ExportService
	OpenService    OpenService
	AppInfoService AppInfoService
}

// Deps are the collaborators [NewServices] wires together. Source and
// History may be nil.
type Deps struct {
	Source    adapter.ReportSource
	History   store.HistoryRepository
	Codec     crypto.Codec
	Renderer  *report.Renderer
	Pool      *workers.Pool
	BuildInfo models.AppBuildInfo
}

func NewServices(deps Deps, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(deps.BuildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ExportService:  NewExportService(deps.Source, deps.History, deps.Codec, deps.Renderer, deps.Pool, logger),
		OpenService:    NewOpenService(logger),
		AppInfoService: appInfo,
	}, nil
}
