package survey

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uobsurvey/pkg/utils"
)

func reportSubmission() Submission {
	return Submission{
		ID:           "sub-1",
		Organization: "Acme Bank",
		Baseline:     []AnswerRecord{{QuestionID: "ARCH_Q1", QuestionText: "Stack?", Answer: "Oracle and Informatica"}},
		Dynamic:      []AnswerRecord{{QuestionID: "DQ1", QuestionText: "Objectives?", Answer: "Faster regulatory reporting"}},
	}
}

func TestAssembleGeneratesFourSections(t *testing.T) {
	gen := &scriptedGenerator{}
	a := NewAssembler(gen, nil)

	sections, err := a.Assemble(context.Background(), reportSubmission())
	require.NoError(t, err)

	assert.True(t, sections.Complete())
	assert.Equal(t, "section 1 text", sections.ExecutiveSummary)
	assert.Equal(t, "section 2 text", sections.DetailedReport)
	assert.Equal(t, "section 3 text", sections.GapAnalysis)
	assert.Equal(t, "section 4 text", sections.Recommendations)

	require.Len(t, gen.prompts, 4)
	transcript := FormatTranscript(reportSubmission())
	wantTokens := []int{1500, 4000, 2000, 3000}
	for i, p := range gen.prompts {
		assert.Contains(t, p.User, transcript)
		assert.Equal(t, float32(0.3), p.Temperature)
		assert.Equal(t, wantTokens[i], p.MaxTokens)
		assert.NotEmpty(t, p.System)
	}
	assert.Contains(t, gen.prompts[0].User, "from Acme Bank")
}

func TestAssembleFailsWholeOperation(t *testing.T) {
	gen := &scriptedGenerator{textErrs: map[int]error{2: utils.ErrGeneratorError}}
	a := NewAssembler(gen, nil)

	sections, err := a.Assemble(context.Background(), reportSubmission())

	require.Error(t, err)
	assert.Equal(t, ReportSections{}, sections)

	var serr *SectionError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, StageGapAnalysis, serr.Stage)
	assert.True(t, errors.Is(err, utils.ErrReportGeneration))
	assert.True(t, errors.Is(err, utils.ErrGeneratorError))
	assert.Contains(t, err.Error(), "gap_analysis")
	assert.Len(t, gen.prompts, 3)
}

func TestAssembleTreatsEmptySectionAsFailure(t *testing.T) {
	gen := &scriptedGenerator{texts: map[int]string{0: "   "}}

	_, err := NewAssembler(gen, nil).Assemble(context.Background(), reportSubmission())

	var serr *SectionError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, StageExecutiveSummary, serr.Stage)
}

func TestAssembleWithoutGenerator(t *testing.T) {
	_, err := NewAssembler(nil, nil).Assemble(context.Background(), reportSubmission())

	assert.ErrorIs(t, err, utils.ErrGeneratorUnavailable)
}
