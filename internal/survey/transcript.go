package survey

import (
	"fmt"
	"strings"
)

const (
	labelBaseline = "STEP 1: BASELINE ASSESSMENT"
	labelDynamic  = "STEP 2: DEEP DIVE (DYNAMIC QUESTIONS)"
	labelAI       = "STEP 3: AI/GENAI DISCOVERY"
)

// FormatTranscript renders a submission as the labelled question/answer text
// every report prompt embeds.
func FormatTranscript(s Submission) string {
	var sb strings.Builder
	sb.WriteString("SURVEY RESPONSES:\n\n")
	writeTranscriptSection(&sb, labelBaseline, 1, s.Baseline)
	writeTranscriptSection(&sb, labelDynamic, 2, s.Dynamic)
	writeTranscriptSection(&sb, labelAI, 3, s.AI)
	return sb.String()
}

func writeTranscriptSection(sb *strings.Builder, label string, step int, records []AnswerRecord) {
	fmt.Fprintf(sb, "=== %s ===\n\n", label)
	if len(records) == 0 {
		fmt.Fprintf(sb, "No Step %d answers found.\n\n", step)
		return
	}
	for i, r := range records {
		fmt.Fprintf(sb, "Q%d: %s\n", i+1, orNA(firstNonEmpty(r.QuestionText, r.QuestionID)))
		fmt.Fprintf(sb, "A%d: %s\n\n", i+1, orNA(r.Answer))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
