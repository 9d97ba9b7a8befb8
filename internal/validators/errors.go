// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoDocuments         = errors.New("at least one document id is required")
	ErrEmptyDocumentID     = errors.New("document id cannot be empty")
	ErrDuplicateDocumentID = errors.New("document id listed twice")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrOutputDirMissing    = errors.New("output directory does not exist")
	ErrOutputDirNotADir    = errors.New("output path is not a directory")
)
