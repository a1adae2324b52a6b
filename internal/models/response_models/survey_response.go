package response_models

import (
	"time"

	"uobsurvey/internal/survey"
)

type SessionResponse struct {
	ID               string    `json:"id"`
	Role             string    `json:"role"`
	Organization     string    `json:"organization"`
	Contact          string    `json:"contact"`
	SubmittedBy      string    `json:"submitted_by"`
	Step             int       `json:"step"`
	BaselineAnswered int       `json:"baseline_answered"`
	DynamicAnswered  int       `json:"dynamic_answered"`
	AIAnswered       int       `json:"ai_answered"`
	BaselineComplete bool      `json:"baseline_complete"`
	DynamicComplete  bool      `json:"dynamic_complete"`
	AIComplete       bool      `json:"ai_complete"`
	SubmissionID     string    `json:"submission_id,omitempty"`
	Saved            bool      `json:"saved"`
	CreatedAt        time.Time `json:"created_at"`
}

type SectionResult struct {
	Answered int      `json:"answered"`
	Warnings []string `json:"warnings,omitempty"`
}

// FlowView is the dynamic step as the client renders it.
type FlowView struct {
	Position       int                       `json:"position"`
	Total          int                       `json:"total"`
	Question       string                    `json:"question,omitempty"`
	QuestionSource survey.QuestionSource     `json:"question_source,omitempty"`
	PreviousAnswer string                    `json:"previous_answer,omitempty"`
	ProgressPct    int                       `json:"progress_pct"`
	CanGoBack      bool                      `json:"can_go_back"`
	Complete       bool                      `json:"complete"`
	History        []survey.ConversationTurn `json:"history"`
}

type TooltipResponse struct {
	Question string                `json:"question"`
	Tooltip  string                `json:"tooltip"`
	Source   survey.QuestionSource `json:"source"`
}

type SummaryResponse struct {
	Summary string                `json:"summary"`
	Source  survey.QuestionSource `json:"source"`
}

type SubmitResponse struct {
	SubmissionID string `json:"submission_id"`
	Saved        bool   `json:"saved"`
	Warning      string `json:"warning,omitempty"`
}

type SubmissionSummary struct {
	ID            string    `json:"id"`
	Role          string    `json:"role"`
	SubmittedBy   string    `json:"submitted_by"`
	Organization  string    `json:"organization"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submitted_at"`
	BaselineCount int       `json:"baseline_count"`
	DynamicCount  int       `json:"dynamic_count"`
	AICount       int       `json:"ai_count"`
}

type SubmissionDetail struct {
	SubmissionSummary
	Contact  string                `json:"contact"`
	Baseline []survey.AnswerRecord `json:"baseline"`
	Dynamic  []survey.AnswerRecord `json:"dynamic"`
	AI       []survey.AnswerRecord `json:"ai"`
}

type ReportResponse struct {
	ID           string                `json:"id"`
	SubmissionID string                `json:"submission_id"`
	Provider     string                `json:"provider,omitempty"`
	Sections     survey.ReportSections `json:"sections"`
	Markdown     string                `json:"markdown"`
	GeneratedAt  time.Time             `json:"generated_at"`
}
