package survey

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uobsurvey/pkg/utils"
)

func TestValidateAnswer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRule string
		wantMsg  string
		want     string
	}{
		{name: "empty", input: "", wantRule: RuleEmpty, wantMsg: "Answer cannot be empty"},
		{name: "whitespace only", input: " \n\t ", wantRule: RuleEmpty, wantMsg: "Answer cannot be empty"},
		{name: "nine characters", input: "123456789", wantRule: RuleTooShort, wantMsg: "Answer must be at least 10 characters"},
		{name: "nine characters padded", input: "   123456789   ", wantRule: RuleTooShort, wantMsg: "Answer must be at least 10 characters"},
		{name: "exactly ten", input: "1234567890", want: "1234567890"},
		{name: "trimmed", input: "  we use Airflow daily  ", want: "we use Airflow daily"},
		{name: "max length", input: strings.Repeat("a", 5000), want: strings.Repeat("a", 5000)},
		{name: "too long", input: strings.Repeat("a", 5001), wantRule: RuleTooLong, wantMsg: "Answer cannot exceed 5000 characters"},
		{name: "multibyte counted as characters", input: "éééééééééé", want: "éééééééééé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAnswer(tt.input)
			if tt.wantRule == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantRule, verr.Rule)
			assert.Equal(t, tt.wantMsg, verr.Error())
			assert.True(t, errors.Is(err, utils.ErrValidation))
		})
	}
}

func sectionFixture() QuestionSet {
	return QuestionSet{
		{ID: "Q1", Text: "Describe the stack", Type: QuestionTypeText, Required: true},
		{ID: "Q2", Text: "Deployment model", Type: QuestionTypeMultipleChoice, Options: []string{"Cloud", "On-premises"}, Required: true},
		{ID: "Q3", Text: "Anything else", Type: QuestionTypeText},
	}
}

func TestValidateSectionAcceptsAnswers(t *testing.T) {
	cleaned, warnings, err := ValidateSection(sectionFixture(), map[string]string{
		"Q1": "  Oracle and Teradata warehouses  ",
		"Q2": "Cloud",
		"Q3": "short",
	})

	require.NoError(t, err)
	assert.Equal(t, "Oracle and Teradata warehouses", cleaned["Q1"])
	assert.Equal(t, "Cloud", cleaned["Q2"])
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Q3")
}

func TestValidateSectionMissingRequired(t *testing.T) {
	_, _, err := ValidateSection(sectionFixture(), map[string]string{"Q1": "   ", "Q3": "optional answer"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, RuleMissing, verr.Rule)
	assert.Equal(t, []string{"Q1", "Q2"}, verr.Missing)
}

func TestValidateSectionRejectsUnknownOption(t *testing.T) {
	_, _, err := ValidateSection(sectionFixture(), map[string]string{"Q1": "a detailed answer", "Q2": "Mainframe"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, RuleInvalidOption, verr.Rule)
	assert.Equal(t, "Q2", verr.QuestionID)
}

func TestValidateSectionRejectsUnknownQuestion(t *testing.T) {
	_, _, err := ValidateSection(sectionFixture(), map[string]string{"Q9": "who knows"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, RuleUnknown, verr.Rule)
}
