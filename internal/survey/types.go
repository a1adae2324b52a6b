package survey

import "time"

// ConversationTurn is one answered step of the dynamic flow.
type ConversationTurn struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AnswerRecord is a single answered question inside a submission section.
type AnswerRecord struct {
	QuestionID   string `json:"question_id"`
	QuestionText string `json:"question_text"`
	Answer       string `json:"answer"`
}

const StatusCompleted = "Completed"

// Submission aggregates the three answer sections and their metadata.
type Submission struct {
	ID           string
	Role         string
	SubmittedBy  string
	Organization string
	Contact      string
	Status       string
	SubmittedAt  time.Time
	Baseline     []AnswerRecord
	Dynamic      []AnswerRecord
	AI           []AnswerRecord
}

// ReportSections holds the four generated narrative sections.
type ReportSections struct {
	ExecutiveSummary string `json:"executive_summary"`
	DetailedReport   string `json:"detailed_report"`
	GapAnalysis      string `json:"gap_analysis"`
	Recommendations  string `json:"recommendations"`
}

// Complete reports whether every section has text.
func (r ReportSections) Complete() bool {
	return r.ExecutiveSummary != "" && r.DetailedReport != "" && r.GapAnalysis != "" && r.Recommendations != ""
}
