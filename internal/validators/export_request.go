// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/report-sealer/models"
)

const (
	FieldDocumentIDs  = "document_ids"
	FieldPassword     = "password"
	FieldConfirmation = "confirmation"
	FieldOutputDir    = "output_dir"
)

// ExportRequestValidator validates [models.ExportRequest].
type ExportRequestValidator struct{}

// NewExportRequestValidator returns a [Validator] for export requests.
func NewExportRequestValidator() Validator {
	return &ExportRequestValidator{}
}

// Validate implements [Validator]. With no fields, every field is checked in
// the order documents, password, confirmation and output directory, and the first failure is returned.
func (v *ExportRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ExportRequest:
		return v.validateExportRequest(ctx, value, fields...)
	case *models.ExportRequest:
		return v.validateExportRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ExportRequestValidator) validateExportRequest(_ context.Context, req models.ExportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDocumentIDs, FieldPassword, FieldConfirmation, FieldOutputDir}
	}

	for _, f := range fields {
		switch f {
		case FieldDocumentIDs:
			if err := validateDocumentIDs(req.DocumentIDs); err != nil {
				return err
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldConfirmation:
			if req.Password != req.Confirmation {
				return ErrPasswordMismatch
			}
		case FieldOutputDir:
			if err := validateOutputDir(req.OutputDir); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateDocumentIDs(ids []string) error {
	if len(ids) == 0 {
		return ErrNoDocuments
	}

	seen := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return fmt.Errorf("validation error at index %d: %w", i, ErrEmptyDocumentID)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateDocumentID)
		}
		seen[id] = struct{}{}
	}

	return nil
}

func validateOutputDir(dir string) error {
	if dir == "" {
		dir = "."
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrOutputDirMissing, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDirNotADir, dir)
	}

	return nil
}
