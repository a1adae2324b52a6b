package survey

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uobsurvey/pkg/utils"
)

func TestSessionSteps(t *testing.T) {
	s := NewSession("s1", "user", time.Now())
	assert.Equal(t, StepBaseline, s.Step())
	assert.NoError(t, s.RequireStep(StepBaseline))

	err := s.RequireStep(StepAI)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrStepIncomplete))
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepBaseline, stepErr.Step)
	assert.Equal(t, "Please complete Step 1 (Baseline) first", stepErr.UserMessage())

	s.BaselineComplete = true
	assert.Equal(t, StepDynamic, s.Step())
	s.DynamicComplete = true
	assert.Equal(t, StepAI, s.Step())
	s.AIComplete = true
	assert.Equal(t, StepSubmit, s.Step())
	assert.NoError(t, s.RequireStep(StepSubmit))
}

func TestBuildSubmission(t *testing.T) {
	baseline := QuestionSet{
		{ID: "B1", Text: "First baseline"},
		{ID: "B2", Text: "Second baseline"},
		{ID: "B3", Text: "Third baseline"},
	}

	s := NewSession("s1", "user", time.Now())
	s.Role = "Data Engineer"
	s.Organization = "Acme"
	s.SubmissionID = "sub-1"
	s.Baseline = map[string]string{"B3": "third answer", "B1": "first answer"}
	s.Flow.History = []ConversationTurn{{Question: "Q1", Answer: "answer one"}, {Question: "Q2", Answer: "answer two"}}
	s.AI = map[string]string{"AI_Q2": "models", "AI_Q1": "gpus"}

	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	sub := BuildSubmission(s, baseline, at)

	assert.Equal(t, "sub-1", sub.ID)
	assert.Equal(t, StatusCompleted, sub.Status)
	assert.Equal(t, at, sub.SubmittedAt)
	assert.Equal(t, []AnswerRecord{
		{QuestionID: "B1", QuestionText: "First baseline", Answer: "first answer"},
		{QuestionID: "B3", QuestionText: "Third baseline", Answer: "third answer"},
	}, sub.Baseline)
	assert.Equal(t, []AnswerRecord{
		{QuestionID: "DQ1", QuestionText: "Q1", Answer: "answer one"},
		{QuestionID: "DQ2", QuestionText: "Q2", Answer: "answer two"},
	}, sub.Dynamic)
	require.Len(t, sub.AI, 2)
	assert.Equal(t, "AI_Q1", sub.AI[0].QuestionID)
	assert.Equal(t, AIQuestions.Text("AI_Q1"), sub.AI[0].QuestionText)
	assert.Equal(t, "AI_Q2", sub.AI[1].QuestionID)
}
