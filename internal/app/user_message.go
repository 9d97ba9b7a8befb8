// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/report-sealer/internal/adapter"
	"github.com/MKhiriev/report-sealer/internal/crypto"
	"github.com/MKhiriev/report-sealer/internal/guard"
	"github.com/MKhiriev/report-sealer/internal/service"
	"github.com/MKhiriev/report-sealer/internal/validators"
)

var messages = []struct {
	err error
	msg string
}{
	// codec classes first: they are the most specific cause in a chain
	{crypto.ErrAuthenticationFailure, MsgAuthenticationFailure},
	{crypto.ErrMalformedContainer, MsgMalformedContainer},
	{crypto.ErrCryptoUnavailable, MsgCryptoUnavailable},
	{crypto.ErrEncryptionFailure, MsgExportFailed},
	{crypto.ErrEmptyPassword, MsgEmptyPassword},

	{service.ErrNotSealedFile, MsgNotSealedFile},
	{service.ErrWritingFile, MsgExportFailed},
	{validators.ErrPasswordTooShort, MsgPasswordTooShort},
	{validators.ErrPasswordMismatch, MsgPasswordMismatch},

	{guard.ErrCapability, MsgViewerUnavailable},

	{adapter.ErrNotFound, MsgDocumentNotFound},
	{adapter.ErrUnauthorized, MsgSourceUnauthorized},
	{adapter.ErrForbidden, MsgSourceUnauthorized},
	{adapter.ErrTooManyRequests, MsgSourceUnavailable},
	{adapter.ErrInternalServerError, MsgSourceUnavailable},
	{adapter.ErrBadGateway, MsgSourceUnavailable},
	{adapter.ErrInvalidSource, MsgInvalidSource},
	{adapter.ErrUnknownSource, MsgInvalidSource},
}

// UserMessage returns the text to show for err. Errors without a dedicated
// message fall back to err's own text; nil gives "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	if errors.Is(err, context.Canceled) {
		return "cancelled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return MsgSourceUnavailable
	}
	return err.Error()
}
