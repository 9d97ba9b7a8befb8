// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"bytes"
	"unicode/utf8"
)

// PageSeparator splits pages in a rendered report.
const PageSeparator = '\f'

// span is a page boundary inside the resource. Pages are sliced out of the
// locked buffer on demand, so no copy of the text outlives a render.
type span struct {
	start, end int
}

// decodeDocument splits a rendered report into page spans. A trailing
// separator does not produce an empty last page.
func decodeDocument(data []byte) ([]span, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}
	if !utf8.Valid(data) {
		return nil, ErrUndecodable
	}

	var pages []span
	start := 0
	for i, b := range data {
		if b == PageSeparator {
			pages = append(pages, span{start, i})
			start = i + 1
		}
	}
	if start < len(data) {
		pages = append(pages, span{start, len(data)})
	}

	return pages, nil
}
