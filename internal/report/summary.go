// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"math"
	"strconv"
	"time"

	"github.com/MKhiriev/report-sealer/models"
)

// BuildSummary counts clause classifications and computes the compliance
// score. Clauses with an unknown classification count toward the total only.
func BuildSummary(r models.Report, analystName, analystEmail string, now time.Time) models.Summary {
	s := models.Summary{
		TotalClauses: len(r.Clauses),
		GeneratedAt:  now,
		AnalystName:  analystName,
		AnalystEmail: analystEmail,
	}

	for _, c := range r.Clauses {
		switch c.Classification {
		case models.Compliant:
			s.CompliantCount++
		case models.NeedsReview:
			s.ReviewCount++
		case models.NonCompliant:
			s.NonCompliantCount++
		}
	}

	if s.TotalClauses > 0 {
		s.ComplianceScore = int(math.Round(float64(s.CompliantCount) / float64(s.TotalClauses) * 100))
	}

	return s
}

// percent formats part/total the way the cover page does.
func percent(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return strconv.Itoa(int(math.Round(float64(part)/float64(total)*100))) + "%"
}
