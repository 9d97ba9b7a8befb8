// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrCryptoUnavailable is returned when the entropy source or the
	// cipher primitives cannot be used on this host.
	ErrCryptoUnavailable = errors.New("crypto primitives unavailable")

	// ErrMalformedContainer is returned when the input is too short to hold
	// a salt, a nonce and an authentication tag.
	ErrMalformedContainer = errors.New("malformed container")

	// ErrAuthenticationFailure is returned when the authentication tag does
	// not verify. A wrong password and a corrupted container are reported
	// with this same error.
	ErrAuthenticationFailure = errors.New("authentication failed")

	// ErrEncryptionFailure is returned when sealing fails after the key was
	// derived.
	ErrEncryptionFailure = errors.New("encryption failed")

	// ErrEmptyPayload is returned by Seal for a zero-length payload.
	ErrEmptyPayload = errors.New("empty payload")

	// ErrEmptyPassword is returned for a zero-length password.
	ErrEmptyPassword = errors.New("empty password")
)
