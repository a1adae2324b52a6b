package survey

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBaselineQuestions(t *testing.T) {
	qs, err := LoadBaselineQuestions("")
	require.NoError(t, err)

	assert.Len(t, qs, 18)
	seen := map[string]bool{}
	for i, q := range qs {
		assert.False(t, seen[q.ID], q.ID)
		seen[q.ID] = true
		assert.Equal(t, i+1, q.Num)
		assert.NotEmpty(t, q.Text)
		if q.Type == QuestionTypeMultipleChoice {
			assert.NotEmpty(t, q.Options, q.ID)
		}
	}
}

func TestLoadBaselineQuestionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"text":"Only question","required":true}]`), 0o600))

	qs, err := LoadBaselineQuestions(path)
	require.NoError(t, err)

	require.Len(t, qs, 1)
	assert.Equal(t, "Q1", qs[0].ID)
	assert.Equal(t, QuestionTypeText, qs[0].Type)
}

func TestParseBaselineQuestionsErrors(t *testing.T) {
	tests := map[string]string{
		"not json":       `{`,
		"empty":          `[]`,
		"duplicate":      `[{"id":"A","text":"x"},{"id":"A","text":"y"}]`,
		"no text":        `[{"id":"A"}]`,
		"choice no opts": `[{"id":"A","text":"x","type":"multiple_choice"}]`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBaselineQuestions([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestAIQuestionTable(t *testing.T) {
	require.Len(t, AIQuestions, 15)

	categories := map[string]int{}
	for i, q := range AIQuestions {
		assert.Equal(t, i+1, q.Num)
		assert.True(t, q.Required)
		categories[q.Category]++
	}
	assert.Equal(t, map[string]int{CategoryInfrastructure: 5, CategoryGovernance: 5, CategoryFrameworks: 5}, categories)

	assert.Equal(t, AIQuestions[6].Text, AIQuestions.Text("AI_Q7"))
	assert.Equal(t, "AI_Q99", AIQuestions.Text("AI_Q99"))
}

func TestFallbackListSize(t *testing.T) {
	assert.Len(t, FallbackQuestions, TotalQuestions)
}
