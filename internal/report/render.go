// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/report-sealer/models"
	"github.com/charmbracelet/x/ansi"
)

const (
	DefaultPageWidth  = 78
	DefaultPageHeight = 56

	// PageSeparator terminates every page but the last.
	PageSeparator = "\f"

	reportTitle  = "Shariah Compliance Report"
	productName  = "AI Shariah Compliance Screener"
	footerMarker = "Confidential"
	footerSep    = "  ·  "
	disclaimer   = "AI-generated analysis. It must be reviewed by a qualified Shariah scholar before execution. " +
		"The findings are indicative and do not constitute a fatwa or legal advice."
)

var ErrEmptyReport = errors.New("report has no document")

// Renderer lays a report out into fixed-size text pages.
type Renderer struct {
	width        int
	height       int
	organisation string
	now          func() time.Time
}

// RenderOption configures a [Renderer].
type RenderOption func(*Renderer)

// WithPageSize sets the page width in columns and height in lines. Values too
// small to hold a header, a footer and one body line are ignored.
func WithPageSize(width, height int) RenderOption {
	return func(r *Renderer) {
		if width >= 40 {
			r.width = width
		}
		if height >= headerLines+footerLines+1 {
			r.height = height
		}
	}
}

// WithOrganisation sets the name printed on the cover and in every footer.
func WithOrganisation(name string) RenderOption {
	return func(r *Renderer) {
		r.organisation = strings.TrimSpace(name)
	}
}

// WithNow replaces time.Now for the generation timestamp.
func WithNow(now func() time.Time) RenderOption {
	return func(r *Renderer) {
		r.now = now
	}
}

// NewRenderer constructs a [Renderer] with A4-like defaults.
func NewRenderer(opts ...RenderOption) *Renderer {
	r := &Renderer{
		width:  DefaultPageWidth,
		height: DefaultPageHeight,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

const (
	headerLines = 3
	footerLines = 3
)

// Render produces the printable document for rep, attributed to the
// analyst.
func (r *Renderer) Render(rep models.Report, analystName, analystEmail string) ([]byte, error) {
	if strings.TrimSpace(rep.Document.ID) == "" && strings.TrimSpace(rep.Document.DocumentName) == "" {
		return nil, ErrEmptyReport
	}

	summary := BuildSummary(rep, analystName, analystEmail, r.now())

	var pages [][]string
	pages = append(pages, r.paginate(r.cover(rep.Document, summary), rep.Document.DocumentName)...)
	if len(rep.Clauses) > 0 {
		var blocks [][]string
		for _, c := range rep.Clauses {
			blocks = append(blocks, r.clauseBlock(c))
		}
		pages = append(pages, r.paginateBlocks(blocks, rep.Document.DocumentName)...)
	}
	pages = append(pages, r.paginate(r.closing(summary), rep.Document.DocumentName)...)

	total := len(pages)
	out := make([]string, total)
	for i, body := range pages {
		out[i] = strings.Join(append(body, r.footer(i+1, total)...), "\n")
	}

	return []byte(strings.Join(out, PageSeparator)), nil
}

func (r *Renderer) bodyLines() int {
	return r.height - headerLines - footerLines
}

func (r *Renderer) header(documentName string) []string {
	left := reportTitle
	if r.organisation != "" {
		left = strings.ToUpper(r.organisation) + "  ·  " + reportTitle
	}
	return []string{
		fitLine(left, r.width),
		fitLine(clean(documentName), r.width),
		strings.Repeat("─", r.width),
	}
}

func (r *Renderer) footer(page, total int) []string {
	counter := fmt.Sprintf("Page %d of %d", page, total)
	brand := r.footerPrefix(r.width-ansi.StringWidth(footerMarker)-ansi.StringWidth(counter)-1) + footerMarker
	gap := max(r.width-ansi.StringWidth(brand)-ansi.StringWidth(counter), 1)

	return []string{
		strings.Repeat("─", r.width),
		brand + strings.Repeat(" ", gap) + counter,
		fitLine("AI-generated analysis. Review by a qualified Shariah scholar is required.", r.width),
	}
}

// footerPrefix names the organisation and product ahead of the marker in at
// most room cells. The product name goes first, then the organisation is
// truncated; the marker itself is never cut.
func (r *Renderer) footerPrefix(room int) string {
	if r.organisation == "" {
		return ""
	}
	if full := r.organisation + footerSep + productName + footerSep; ansi.StringWidth(full) <= room {
		return full
	}
	org := room - ansi.StringWidth(footerSep)
	if org < 2 {
		return ""
	}
	return fitLine(r.organisation, org) + footerSep
}

// paginate splits free-flowing lines into pages with headers, padding the
// last page so every page has the same height.
func (r *Renderer) paginate(lines []string, documentName string) [][]string {
	return r.paginateBlocks([][]string{lines}, documentName)
}

// paginateBlocks places blocks on pages, starting a block on a fresh page
// when it would otherwise be split and it fits on one page by itself.
func (r *Renderer) paginateBlocks(blocks [][]string, documentName string) [][]string {
	capacity := r.bodyLines()
	var pages [][]string
	var cur []string

	flush := func() {
		for len(cur) < capacity {
			cur = append(cur, "")
		}
		pages = append(pages, append(r.header(documentName), cur...))
		cur = nil
	}

	for _, block := range blocks {
		if len(cur) > 0 && len(cur)+len(block) > capacity && len(block) <= capacity {
			flush()
		}
		for _, line := range block {
			if len(cur) == capacity {
				flush()
			}
			cur = append(cur, line)
		}
	}
	if len(cur) > 0 || len(pages) == 0 {
		flush()
	}

	return pages
}

func (r *Renderer) cover(doc models.Document, s models.Summary) []string {
	lines := []string{
		"",
		centre("CONFIDENTIAL REPORT", r.width),
		"",
		centre(strings.ToUpper(reportTitle), r.width),
		centre(clean(doc.DocumentName), r.width),
		"",
	}

	lines = append(lines,
		fmt.Sprintf("  %-16s%-16s%-16s%-16s", "TOTAL CLAUSES", "COMPLIANT", "NEEDS REVIEW", "NON-COMPLIANT"),
		fmt.Sprintf("  %-16d%-16s%-16s%-16s",
			s.TotalClauses,
			fmt.Sprintf("%d (%s)", s.CompliantCount, percent(s.CompliantCount, s.TotalClauses)),
			fmt.Sprintf("%d (%s)", s.ReviewCount, percent(s.ReviewCount, s.TotalClauses)),
			fmt.Sprintf("%d (%s)", s.NonCompliantCount, percent(s.NonCompliantCount, s.TotalClauses)),
		),
		"",
		fmt.Sprintf("  Compliance score: %d%%", s.ComplianceScore),
		"",
		"Document Information",
	)

	info := [][2]string{
		{"Document type", doc.DocumentType},
		{"Uploaded by", doc.UploadedBy},
		{"Pages", itoaOrDash(doc.PageCount)},
		{"Language", doc.Language},
		{"Critical clauses", itoaOrDash(doc.CriticalClauses)},
		{"Analysed on", dateOrDash(doc.Timestamp)},
		{"Analyst", analyst(s.AnalystName, s.AnalystEmail)},
		{"Generated", s.GeneratedAt.Format("02 January 2006, 15:04")},
	}
	for _, kv := range info {
		lines = append(lines, r.wrapIndented(fmt.Sprintf("%-18s%s", kv[0]+":", orDash(kv[1])), 2)...)
	}

	lines = append(lines, "", "AI-GENERATED REPORT - DISCLAIMER")
	return append(lines, r.wrapIndented(disclaimer, 2)...)
}

func (r *Renderer) clauseBlock(c models.ClauseAnalysis) []string {
	head := fmt.Sprintf("Clause %s  [%s]  severity: %s  confidence: %d%%",
		orDash(c.ClauseNumber),
		classificationLabel(c.Classification),
		orDash(c.Severity),
		confidencePercent(c.ConfidenceScore),
	)

	lines := r.wrapIndented(head, 0)
	lines = append(lines, r.wrapIndented(c.ClauseText, 2)...)
	lines = append(lines, r.section("Shariah issues (AAOIFI)", c.ShariahIssues)...)
	lines = append(lines, r.section("SAMA issues", c.SamaIssues)...)
	if c.Findings != "" {
		lines = append(lines, "  Findings:")
		lines = append(lines, r.wrapIndented(c.Findings, 4)...)
	}
	if c.Remediation != "" {
		lines = append(lines, "  Remediation:")
		lines = append(lines, r.wrapIndented(c.Remediation, 4)...)
	}
	if c.IsCriticalForShariah {
		lines = append(lines, "  ! Critical for Shariah compliance")
	}

	return append(lines, strings.Repeat("·", r.width))
}

func (r *Renderer) section(title string, items []string) []string {
	if len(items) == 0 {
		return nil
	}
	lines := []string{"  " + title + ":"}
	for _, item := range items {
		wrapped := r.wrapIndented(item, 6)
		if len(wrapped) > 0 {
			wrapped[0] = "    - " + strings.TrimLeft(wrapped[0], " ")
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

func (r *Renderer) closing(s models.Summary) []string {
	lines := []string{
		"",
		"Disclaimer & Acknowledgement",
		"",
	}
	lines = append(lines, r.wrapIndented(disclaimer, 2)...)
	lines = append(lines,
		"",
		r.fitIndented(fmt.Sprintf("Prepared for: %s", analyst(s.AnalystName, s.AnalystEmail)), 2),
		r.fitIndented(fmt.Sprintf("Clauses reviewed: %d  ·  Compliance score: %d%%", s.TotalClauses, s.ComplianceScore), 2),
		"",
		"  Reviewer signature: ______________________    Date: ____________",
	)
	return lines
}

// wrapIndented word-wraps text to the page width with a left indent. Page
// separators and carriage returns in source text are flattened.
func (r *Renderer) wrapIndented(text string, indent int) []string {
	text = clean(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	pad := strings.Repeat(" ", indent)
	wrapped := ansi.Wrap(text, r.width-indent, "")

	var out []string
	for _, line := range strings.Split(wrapped, "\n") {
		out = append(out, pad+strings.TrimRight(line, " "))
	}
	return out
}

func (r *Renderer) fitIndented(text string, indent int) string {
	return strings.Repeat(" ", indent) + fitLine(text, r.width-indent)
}

func clean(s string) string {
	return strings.NewReplacer(PageSeparator, " ", "\r", "", "\t", "    ").Replace(s)
}

func fitLine(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}

func centre(s string, width int) string {
	s = fitLine(s, width)
	pad := (width - ansi.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func classificationLabel(c string) string {
	switch c {
	case models.Compliant:
		return "COMPLIANT"
	case models.NeedsReview:
		return "NEEDS REVIEW"
	case models.NonCompliant:
		return "NON-COMPLIANT"
	default:
		return "UNCLASSIFIED"
	}
}

// confidencePercent shows a 0.0–1.0 score as a whole percentage, clamped.
func confidencePercent(score float64) int {
	switch {
	case score <= 0:
		return 0
	case score >= 1:
		return 100
	default:
		return int(score*100 + 0.5)
	}
}

func analyst(name, email string) string {
	switch {
	case name != "" && email != "":
		return fmt.Sprintf("%s <%s>", name, email)
	case email != "":
		return email
	default:
		return name
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func itoaOrDash(n int) string {
	if n <= 0 {
		return "-"
	}
	return fmt.Sprint(n)
}

func dateOrDash(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 January 2006")
}
