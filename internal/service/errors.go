// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrSingleDocumentExpected = errors.New("exactly one document id expected")
	ErrPartialExport          = errors.New("some documents failed to export")
	ErrNothingToExport        = errors.New("the source lists no documents")
	ErrNotSealedFile          = errors.New("only .enc files can be opened")
	ErrEmptyInputFile         = errors.New("input file is empty")
	ErrWritingFile            = errors.New("failed to write sealed file")
	ErrReadingFile            = errors.New("failed to read file")
	ErrVersionIsNotSpecified  = errors.New("app version is not specified")
)
