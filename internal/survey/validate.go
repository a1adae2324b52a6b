package survey

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"uobsurvey/pkg/utils"
)

const (
	MinAnswerLength = 10
	MaxAnswerLength = 5000
)

const (
	RuleEmpty         = "empty"
	RuleTooShort      = "too_short"
	RuleTooLong       = "too_long"
	RuleMissing       = "required"
	RuleInvalidOption = "invalid_option"
	RuleUnknown       = "unknown_question"
)

// ValidationError names the rule an answer broke. It matches utils.ErrValidation.
type ValidationError struct {
	Rule       string
	Message    string
	QuestionID string
	Missing    []string
}

func (e *ValidationError) Error() string {
	if e.QuestionID != "" {
		return fmt.Sprintf("%s: %s", e.QuestionID, e.Message)
	}
	return e.Message
}

func (e *ValidationError) UserMessage() string { return e.Message }

func (e *ValidationError) Unwrap() error { return utils.ErrValidation }

// ValidateAnswer checks a free text answer and returns it stripped of
// surrounding whitespace. Lengths count characters, not bytes.
func ValidateAnswer(raw string) (string, error) {
	answer := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(answer)

	switch {
	case n == 0:
		return "", &ValidationError{Rule: RuleEmpty, Message: "Answer cannot be empty"}
	case n < MinAnswerLength:
		return "", &ValidationError{Rule: RuleTooShort, Message: fmt.Sprintf("Answer must be at least %d characters", MinAnswerLength)}
	case n > MaxAnswerLength:
		return "", &ValidationError{Rule: RuleTooLong, Message: fmt.Sprintf("Answer cannot exceed %d characters", MaxAnswerLength)}
	}
	return answer, nil
}

// ValidateSection checks answers to a fixed question table. Required questions
// must be answered, multiple choice answers must be one of the options and
// every answer is capped at MaxAnswerLength. Short text answers are accepted
// but reported as warnings.
func ValidateSection(questions QuestionSet, answers map[string]string) (map[string]string, []string, error) {
	cleaned := make(map[string]string, len(answers))
	for id := range answers {
		if _, ok := questions.ByID(id); !ok {
			return nil, nil, &ValidationError{Rule: RuleUnknown, QuestionID: id, Message: fmt.Sprintf("Unknown question %s", id)}
		}
	}

	var missing, warnings []string
	for _, q := range questions {
		answer := strings.TrimSpace(answers[q.ID])
		if answer == "" {
			if q.Required {
				missing = append(missing, q.ID)
			}
			continue
		}

		if utf8.RuneCountInString(answer) > MaxAnswerLength {
			return nil, nil, &ValidationError{Rule: RuleTooLong, QuestionID: q.ID,
				Message: fmt.Sprintf("Answer to %s cannot exceed %d characters", q.ID, MaxAnswerLength)}
		}

		if q.Type == QuestionTypeMultipleChoice {
			if !containsOption(q.Options, answer) {
				return nil, nil, &ValidationError{Rule: RuleInvalidOption, QuestionID: q.ID,
					Message: fmt.Sprintf("Answer to %s must be one of: %s", q.ID, strings.Join(q.Options, ", "))}
			}
		} else if utf8.RuneCountInString(answer) < MinAnswerLength {
			warnings = append(warnings, fmt.Sprintf("Answer to %s should be at least %d characters", q.ID, MinAnswerLength))
		}

		cleaned[q.ID] = answer
	}

	if len(missing) > 0 {
		return nil, nil, &ValidationError{
			Rule:    RuleMissing,
			Missing: missing,
			Message: "Please answer all required questions before proceeding: " + strings.Join(missing, ", "),
		}
	}
	return cleaned, warnings, nil
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
