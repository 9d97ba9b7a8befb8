// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the password-based container codec used for
// exported reports.
//
// A container is a self-describing byte sequence:
//
//	salt (16) || nonce (12) || ciphertext || tag (16)
//
// The key is derived from the passphrase and the salt with PBKDF2-HMAC-SHA256
// at a fixed iteration count, and the payload is encrypted with AES-256-GCM.
// Nothing else is stored in the container: no header, no version byte and no
// file name. Containers produced here are interchangeable with the ones
// produced by the browser exporter.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec seals arbitrary payloads into password-protected containers and
// opens them back.
//
// Both operations run a deliberately slow key derivation, so callers on an
// interactive loop should invoke them off that loop. Implementations hold no
// mutable state between calls and are safe for concurrent use.
type Codec interface {
	// Seal encrypts payload under a key derived from password and returns a
	// new container. A fresh salt and nonce are drawn for every call.
	//
	// Returns [ErrEmptyPayload] or [ErrEmptyPassword] for empty inputs,
	// [ErrCryptoUnavailable] when the entropy source or the cipher cannot be
	// used, and [ErrEncryptionFailure] when the cipher itself fails.
	Seal(ctx context.Context, payload []byte, password string) ([]byte, error)

	// Open decrypts container with a key derived from password and returns
	// the original payload. The container is never modified.
	//
	// Returns [ErrMalformedContainer] for inputs shorter than
	// [MinContainerSize] without running the key derivation, and
	// [ErrAuthenticationFailure] for both a wrong password and a tampered
	// container.
	Open(ctx context.Context, container []byte, password string) ([]byte, error)
}
