// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("source unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("document not found")
	ErrTooManyRequests     = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrUnknownSource = errors.New("unknown report source")
	ErrInvalidSource = errors.New("invalid report source configuration")
	ErrMalformedData = errors.New("malformed report data")
)
