package survey

import (
	"fmt"
	"time"

	"uobsurvey/pkg/utils"
)

const (
	StepBaseline = 1
	StepDynamic  = 2
	StepAI       = 3
	StepSubmit   = 4
)

var stepLabels = map[int]string{
	StepBaseline: "Baseline",
	StepDynamic:  "Dynamic Questions",
	StepAI:       "AI/GenAI Discovery",
}

func StepLabel(step int) string {
	return stepLabels[step]
}

// Session is one respondent's progress through the three survey steps. It
// is stored as a whole in the session store between requests.
type Session struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
	Contact      string `json:"contact"`
	SubmittedBy  string `json:"submitted_by"`

	Baseline map[string]string `json:"baseline"`
	Flow     FlowState         `json:"flow"`
	AI       map[string]string `json:"ai"`

	BaselineComplete bool `json:"baseline_complete"`
	DynamicComplete  bool `json:"dynamic_complete"`
	AIComplete       bool `json:"ai_complete"`

	// SubmissionID is fixed on the first submit attempt so retries write the
	// same record. Saved is set once persistence succeeded.
	SubmissionID string    `json:"submission_id,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at,omitempty"`
	Saved        bool      `json:"saved"`

	CreatedAt time.Time `json:"created_at"`
}

func NewSession(id, userID string, now time.Time) Session {
	return Session{
		ID:        id,
		UserID:    userID,
		Baseline:  map[string]string{},
		Flow:      NewFlowState(),
		AI:        map[string]string{},
		CreatedAt: now.UTC(),
	}
}

// Step is the first step still open, or StepSubmit once all three are done.
func (s Session) Step() int {
	switch {
	case !s.BaselineComplete:
		return StepBaseline
	case !s.DynamicComplete:
		return StepDynamic
	case !s.AIComplete:
		return StepAI
	default:
		return StepSubmit
	}
}

// RequireStep reports ErrStepIncomplete naming the earliest open step that
// precedes step.
func (s Session) RequireStep(step int) error {
	if open := s.Step(); open < step {
		return &StepError{Step: open}
	}
	return nil
}

// StepError names the step that has to be finished first.
type StepError struct {
	Step int
}

func (e *StepError) Error() string {
	return fmt.Sprintf("Please complete Step %d (%s) first", e.Step, StepLabel(e.Step))
}

func (e *StepError) UserMessage() string { return e.Error() }

func (e *StepError) Unwrap() error { return utils.ErrStepIncomplete }

// BuildSubmission assembles the submission document from the session
// answers. Baseline and AI records follow question table order and skip
// unanswered questions. Dynamic turns become DQ1..DQn.
func BuildSubmission(s Session, baseline QuestionSet, submittedAt time.Time) Submission {
	return Submission{
		ID:           s.SubmissionID,
		Role:         s.Role,
		SubmittedBy:  s.SubmittedBy,
		Organization: s.Organization,
		Contact:      s.Contact,
		Status:       StatusCompleted,
		SubmittedAt:  submittedAt.UTC(),
		Baseline:     sectionRecords(baseline, s.Baseline),
		Dynamic:      DynamicRecords(s.Flow.History),
		AI:           sectionRecords(AIQuestions, s.AI),
	}
}

func DynamicRecords(history []ConversationTurn) []AnswerRecord {
	records := make([]AnswerRecord, 0, len(history))
	for i, turn := range history {
		records = append(records, AnswerRecord{
			QuestionID:   fmt.Sprintf("DQ%d", i+1),
			QuestionText: turn.Question,
			Answer:       turn.Answer,
		})
	}
	return records
}

func sectionRecords(questions QuestionSet, answers map[string]string) []AnswerRecord {
	records := make([]AnswerRecord, 0, len(answers))
	for _, q := range questions {
		answer, ok := answers[q.ID]
		if !ok || answer == "" {
			continue
		}
		records = append(records, AnswerRecord{QuestionID: q.ID, QuestionText: q.Text, Answer: answer})
	}
	return records
}
