package survey

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fullSections() ReportSections {
	return ReportSections{
		ExecutiveSummary: "Summary body",
		DetailedReport:   "Detailed body",
		GapAnalysis:      "Gap body",
		Recommendations:  "Recommendation body",
	}
}

func TestFormatDocumentLayout(t *testing.T) {
	s := Submission{
		Organization: "Acme Bank",
		Contact:      "cto@acme.test",
		SubmittedBy:  "user",
		SubmittedAt:  time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC),
	}
	generated := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)

	doc := FormatDocument(fullSections(), s, generated)

	assert.True(t, strings.HasPrefix(doc, "# Data Infrastructure Assessment Report\n"))
	assert.Contains(t, doc, "**Organization:** Acme Bank")
	assert.Contains(t, doc, "**Contact:** cto@acme.test")
	assert.Contains(t, doc, "**Submitted by:** user")
	assert.Contains(t, doc, "**Report Date:** 2025-03-04 10:30:00")
	assert.Contains(t, doc, "**Report Generated:** 2025-03-05 09:00:00")

	headings := []string{
		"## Table of Contents",
		"## 1. Executive Summary\n\nSummary body",
		"## 2. Detailed Assessment Report\n\nDetailed body",
		"## 3. Gap Analysis\n\nGap body",
		"## 4. Recommendations & Roadmap\n\nRecommendation body",
		"**Report Generated:**",
	}
	last := -1
	for _, h := range headings {
		idx := strings.Index(doc, h)
		assert.Greater(t, idx, last, h)
		last = idx
	}
}

func TestFormatDocumentIsStableExceptTimestamp(t *testing.T) {
	s := Submission{Organization: "Acme Bank", SubmittedAt: time.Unix(1700000000, 0)}
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	a := FormatDocument(fullSections(), s, t1)
	b := FormatDocument(fullSections(), s, t1)
	c := FormatDocument(fullSections(), s, t2)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t,
		strings.Replace(a, "2025-01-01 00:00:00", "TS", 1),
		strings.Replace(c, "2026-06-01 12:00:00", "TS", 1))
}

func TestFormatDocumentMissingValues(t *testing.T) {
	doc := FormatDocument(ReportSections{ExecutiveSummary: "only this"}, Submission{Role: "admin"}, time.Now())

	assert.Contains(t, doc, "**Organization:** N/A")
	assert.Contains(t, doc, "**Contact:** N/A")
	assert.Contains(t, doc, "**Submitted by:** admin")
	assert.Contains(t, doc, "**Report Date:** N/A")
	assert.Contains(t, doc, "## 2. Detailed Assessment Report\n\nN/A")
	assert.Contains(t, doc, "## 4. Recommendations & Roadmap\n\nN/A")
}
