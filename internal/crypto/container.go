// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// Container layout and protocol constants. Changing any of them breaks every
// container sealed before the change.
const (
	SaltSize   = 16
	NonceSize  = 12
	TagSize    = 16
	KeySize    = 32
	Iterations = 100000

	// HeaderSize is the offset of the ciphertext inside a container.
	HeaderSize = SaltSize + NonceSize

	// MinContainerSize is the smallest well-formed container: a header and
	// an authentication tag over an empty ciphertext.
	MinContainerSize = HeaderSize + TagSize

	// FileExtension is appended to containers persisted as local files.
	FileExtension = ".enc"
)

// ContainerInfo describes the frame of a container without decrypting it.
type ContainerInfo struct {
	Size          int
	SaltHex       string
	NonceHex      string
	CiphertextLen int
	PayloadLen    int
}

// Inspect splits container into its frame fields. No key is derived and no
// decryption is attempted, so the reported payload length is the length the
// payload would have if the container is authentic.
func Inspect(container []byte) (ContainerInfo, error) {
	if len(container) < MinContainerSize {
		return ContainerInfo{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedContainer, len(container), MinContainerSize)
	}

	salt, nonce, sealed := split(container)
	return ContainerInfo{
		Size:          len(container),
		SaltHex:       fmt.Sprintf("%x", salt),
		NonceHex:      fmt.Sprintf("%x", nonce),
		CiphertextLen: len(sealed),
		PayloadLen:    len(sealed) - TagSize,
	}, nil
}

func split(container []byte) (salt, nonce, sealed []byte) {
	return container[:SaltSize], container[SaltSize:HeaderSize], container[HeaderSize:]
}
