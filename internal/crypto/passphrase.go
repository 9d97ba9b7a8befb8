// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const passphraseAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GeneratePassphrase returns groups of random characters joined by dashes,
// e.g. "x7Kq-p2Mv-Tn9a-Rw4e". Ambiguous glyphs (0/O, 1/l/I) are excluded so
// the result can be read aloud or retyped.
func GeneratePassphrase(groups int) (string, error) {
	if groups <= 0 {
		groups = 4
	}

	const groupLen = 4
	max := big.NewInt(int64(len(passphraseAlphabet)))
	parts := make([]string, 0, groups)

	for range groups {
		var b strings.Builder
		for range groupLen {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrCryptoUnavailable, err)
			}
			b.WriteByte(passphraseAlphabet[n.Int64()])
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "-"), nil
}
