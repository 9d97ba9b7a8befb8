// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/pbkdf2"
)

// codec is the private implementation of [Codec].
type codec struct {
	random     io.Reader
	iterations int

	// derive is swapped in tests to observe when key derivation runs.
	derive func(password, salt []byte, iterations int) []byte
}

// Option configures a [Codec] built by [NewCodec].
type Option func(*codec)

// WithRandom replaces the entropy source used for salts and nonces.
// Intended for tests; production code keeps [rand.Reader].
func WithRandom(r io.Reader) Option {
	return func(c *codec) {
		c.random = r
	}
}

// WithIterations overrides the PBKDF2 iteration count. Containers sealed with
// a non-default count can only be opened by a codec built with the same
// count, so this is meant for tests that need a fast KDF.
func WithIterations(n int) Option {
	return func(c *codec) {
		if n > 0 {
			c.iterations = n
		}
	}
}

// NewCodec constructs a [Codec] that reads entropy from the OS CSPRNG and
// derives keys with PBKDF2-HMAC-SHA256 at [Iterations] rounds.
func NewCodec(opts ...Option) Codec {
	c := &codec{
		random:     rand.Reader,
		iterations: Iterations,
		derive:     deriveKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Seal implements [Codec].
func (c *codec) Seal(ctx context.Context, payload []byte, password string) (container []byte, err error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	header := make([]byte, HeaderSize)
	if _, err = io.ReadFull(c.random, header); err != nil {
		return nil, fmt.Errorf("%w: read salt and nonce: %v", ErrCryptoUnavailable, err)
	}
	salt, nonce := header[:SaltSize], header[SaltSize:]

	aead, err := c.newAEAD(password, salt)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			container, err = nil, fmt.Errorf("%w: %v", ErrEncryptionFailure, r)
		}
	}()

	container = make([]byte, 0, HeaderSize+len(payload)+TagSize)
	container = append(container, header...)
	container = aead.Seal(container, nonce, payload, nil)
	if len(container) != HeaderSize+len(payload)+TagSize {
		return nil, fmt.Errorf("%w: unexpected output length %d", ErrEncryptionFailure, len(container))
	}

	return container, nil
}

// Open implements [Codec].
func (c *codec) Open(ctx context.Context, container []byte, password string) ([]byte, error) {
	if len(container) < MinContainerSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedContainer, len(container), MinContainerSize)
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	salt, nonce, sealed := split(container)

	aead, err := c.newAEAD(password, salt)
	if err != nil {
		return nil, err
	}

	payload, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailure
	}

	return payload, nil
}

// newAEAD derives the key for (password, salt) and wraps it in AES-256-GCM.
// The derived key and the password copy are wiped before returning; the
// cipher keeps its own expanded schedule.
func (c *codec) newAEAD(password string, salt []byte) (cipher.AEAD, error) {
	pw := []byte(password)
	key := c.derive(pw, salt, c.iterations)
	defer memguard.WipeBytes(key)
	memguard.WipeBytes(pw)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: aes: %v", ErrCryptoUnavailable, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: gcm: %v", ErrCryptoUnavailable, err)
	}

	return aead, nil
}

func deriveKey(password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, KeySize, sha256.New)
}
