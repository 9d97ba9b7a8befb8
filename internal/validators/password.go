// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the shortest export password accepted.
const MinPasswordLength = 6

// Strength is a coarse rating of an export password.
type Strength int

const (
	Weak Strength = iota
	Fair
	Good
	Strong
)

func (s Strength) String() string {
	switch s {
	case Fair:
		return "Fair"
	case Good:
		return "Good"
	case Strong:
		return "Strong"
	default:
		return "Weak"
	}
}

// PasswordScore awards one point each for: at least 8 characters, at least
// 12 characters, an upper-case letter, a digit, and a character that is
// neither a letter nor a digit.
func PasswordScore(pw string) int {
	score := 0
	n := utf8.RuneCountInString(pw)
	if n >= 8 {
		score++
	}
	if n >= 12 {
		score++
	}

	var upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r):
			symbol = true
		}
	}
	for _, ok := range []bool{upper, digit, symbol} {
		if ok {
			score++
		}
	}

	return score
}

// PasswordStrength maps [PasswordScore] to a rating: 0–1 Weak, 2–3 Fair,
// 4 Good, 5 Strong.
func PasswordStrength(pw string) Strength {
	switch score := PasswordScore(pw); {
	case score <= 1:
		return Weak
	case score <= 3:
		return Fair
	case score == 4:
		return Good
	default:
		return Strong
	}
}
