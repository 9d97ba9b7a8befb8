// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/report-sealer/internal/adapter"
	"github.com/MKhiriev/report-sealer/internal/crypto"
	"github.com/MKhiriev/report-sealer/internal/guard"
	"github.com/MKhiriev/report-sealer/internal/service"
	"github.com/MKhiriev/report-sealer/internal/validators"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"crypto unavailable", crypto.ErrCryptoUnavailable, "cannot encrypt/decrypt on this device"},
		{"malformed", crypto.ErrMalformedContainer, "file is not a valid encrypted report"},
		{"auth", crypto.ErrAuthenticationFailure, "incorrect password or corrupted file"},
		{"encryption", crypto.ErrEncryptionFailure, "export failed, try again"},
		{"wrapped auth", fmt.Errorf("open container: %w", crypto.ErrAuthenticationFailure), MsgAuthenticationFailure},
		{"guard wraps codec", fmt.Errorf("%w: %w", guard.ErrCapability, crypto.ErrMalformedContainer), MsgMalformedContainer},
		{"write", fmt.Errorf("%w: disk full", service.ErrWritingFile), MsgExportFailed},
		{"not sealed", service.ErrNotSealedFile, MsgNotSealedFile},
		{"short password", validators.ErrPasswordTooShort, MsgPasswordTooShort},
		{"not found", fmt.Errorf("fetch report x: %w", adapter.ErrNotFound), MsgDocumentNotFound},
		{"gateway", adapter.ErrBadGateway, MsgSourceUnavailable},
		{"deadline", context.DeadlineExceeded, MsgSourceUnavailable},
		{"fallback", errors.New("plain failure"), "plain failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

// TestUserMessage_NoOracle makes sure a wrong password and a tampered file
// read the same.
func TestUserMessage_NoOracle(t *testing.T) {
	wrongPassword := fmt.Errorf("open container: %w", crypto.ErrAuthenticationFailure)
	tampered := fmt.Errorf("seal report: %w", fmt.Errorf("tag: %w", crypto.ErrAuthenticationFailure))

	assert.Equal(t, UserMessage(wrongPassword), UserMessage(tampered))
}
