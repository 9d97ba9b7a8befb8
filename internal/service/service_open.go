// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/report-sealer/internal/crypto"
	"github.com/MKhiriev/report-sealer/internal/logger"
)

type openService struct {
	logger *logger.Logger
}

// NewOpenService returns an [OpenService].
func NewOpenService(log *logger.Logger) OpenService {
	if log == nil {
		log = logger.Nop()
	}
	return &openService{logger: log}
}

// Load refuses anything but a .enc file, and a file too short to be a
// container is rejected before its bytes are returned.
func (s *openService) Load(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(path), crypto.FileExtension) {
		return nil, fmt.Errorf("%w: %s", ErrNotSealedFile, filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	if len(data) < crypto.MinContainerSize {
		return nil, fmt.Errorf("%w: %d bytes", crypto.ErrMalformedContainer, len(data))
	}

	s.logger.Debug().Str("file", filepath.Base(path)).Int("size", len(data)).Msg("sealed file loaded")
	return data, nil
}

func (s *openService) Inspect(ctx context.Context, path string) (crypto.ContainerInfo, error) {
	data, err := s.Load(ctx, path)
	if err != nil {
		return crypto.ContainerInfo{}, err
	}
	return crypto.Inspect(data)
}
