// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/MKhiriev/report-sealer/internal/validators"
)

var errNoPassword = errors.New("no password given")

// passwordPrompt reads passwords without echo from a terminal. When input is
// not a terminal every password is one line of input, so scripts can pipe
// them in.
type passwordPrompt struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func newPasswordPrompt(in io.Reader, out io.Writer) *passwordPrompt {
	return &passwordPrompt{in: in, out: out}
}

func (p *passwordPrompt) read(label string) (string, error) {
	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(p.out, label)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		if line == "" {
			return "", errNoPassword
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// NewPassword asks for a password twice and checks the pair the way an
// export request is validated.
func (p *passwordPrompt) NewPassword() (string, error) {
	pass, err := p.read("New password: ")
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(pass) < validators.MinPasswordLength {
		return "", validators.ErrPasswordTooShort
	}

	confirm, err := p.read("Confirm password: ")
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", validators.ErrPasswordMismatch
	}
	return pass, nil
}
