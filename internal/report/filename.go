// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"strings"

	"github.com/MKhiriev/report-sealer/internal/crypto"
)

const exportSuffix = "_report"

// ExportFileName derives the container file name for a document:
// "Contract.pdf" becomes "Contract_report.enc". Path separators and other
// characters that are unsafe in file names are replaced with underscores.
func ExportFileName(documentName string) string {
	name := strings.TrimSpace(documentName)
	if len(name) >= 4 && strings.EqualFold(name[len(name)-4:], ".pdf") {
		name = name[:len(name)-4]
	}

	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', 0:
			return '_'
		}
		if r < 0x20 {
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, ". ")

	if name == "" {
		name = "document"
	}

	return name + exportSuffix + crypto.FileExtension
}
