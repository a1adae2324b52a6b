package survey

import (
	"fmt"
	"strings"
	"time"

	"uobsurvey/pkg/utils"
)

const (
	DocumentTitle = "Data Infrastructure Assessment Report"
	documentRule  = "\n---\n\n"
)

// FormatDocument renders the report sections and submission metadata as one
// Markdown document. The output depends only on its arguments.
func FormatDocument(sections ReportSections, s Submission, generatedAt time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", DocumentTitle)
	fmt.Fprintf(&sb, "**Organization:** %s  \n", orNA(s.Organization))
	fmt.Fprintf(&sb, "**Contact:** %s  \n", orNA(s.Contact))
	fmt.Fprintf(&sb, "**Submitted by:** %s  \n", orNA(firstNonEmpty(s.SubmittedBy, s.Role)))
	fmt.Fprintf(&sb, "**Report Date:** %s  \n", orNA(utils.FormatTimestamp(s.SubmittedAt)))
	sb.WriteString(documentRule)

	sb.WriteString("## Table of Contents\n")
	sb.WriteString("1. Executive Summary\n")
	sb.WriteString("2. Detailed Assessment Report\n")
	sb.WriteString("3. Gap Analysis\n")
	sb.WriteString("4. Recommendations & Roadmap\n")
	sb.WriteString(documentRule)

	writeDocumentSection(&sb, "1. Executive Summary", sections.ExecutiveSummary)
	writeDocumentSection(&sb, "2. Detailed Assessment Report", sections.DetailedReport)
	writeDocumentSection(&sb, "3. Gap Analysis", sections.GapAnalysis)
	writeDocumentSection(&sb, "4. Recommendations & Roadmap", sections.Recommendations)

	fmt.Fprintf(&sb, "**Report Generated:** %s  \n", utils.FormatTimestamp(generatedAt))
	sb.WriteString("**Confidentiality:** This report contains confidential information and should be treated as such.\n")

	return sb.String()
}

func writeDocumentSection(sb *strings.Builder, heading, body string) {
	fmt.Fprintf(sb, "## %s\n\n%s\n", heading, orNA(strings.TrimSpace(body)))
	sb.WriteString(documentRule)
}
