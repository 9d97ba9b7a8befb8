// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report turns a [models.Report] into the printable document that
// gets sealed.
//
// The rendered document is UTF-8 text with pages separated by a form feed.
// Page one is the cover with the summary, the following pages hold one block
// per clause, and the last page is the disclaimer. Every page carries the
// confidentiality footer and a "Page n of N" counter.
package report
