package services

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"uobsurvey/internal/survey"
	"uobsurvey/pkg/events"
	"uobsurvey/pkg/utils"
)

type reportFixture struct {
	svc       ReportServiceInterface
	subs      *fakeSubmissionRepo
	reports   *fakeReportRepo
	gen       *sectionGenerator
	publisher *fakePublisher
}

func newReportFixture() reportFixture {
	f := reportFixture{
		subs:      newFakeSubmissionRepo(),
		reports:   &fakeReportRepo{},
		gen:       &sectionGenerator{},
		publisher: &fakePublisher{},
	}
	f.svc = NewReportService(f.subs, f.reports, survey.NewAssembler(f.gen, zap.NewNop()), f.publisher, "openai", zap.NewNop())
	return f
}

func TestGenerateReport(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()
	id := storedSubmission(f.subs, "Acme Bank")

	report, err := f.svc.GenerateReport(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, 4, f.gen.calls)
	assert.True(t, report.Sections.Complete())
	assert.Equal(t, "openai", report.Provider)
	assert.Contains(t, report.Markdown, "# "+survey.DocumentTitle)
	assert.Contains(t, report.Markdown, "Acme Bank")
	assert.Contains(t, report.Markdown, report.Sections.GapAnalysis)

	latest, err := f.svc.LatestReport(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, report.ID, latest.ID)

	assert.Equal(t, []string{events.TopicReportGenerated}, f.publisher.topics())
}

func TestGenerateReportFailures(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	_, err := f.svc.GenerateReport(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrSubmissionNotFound)
	_, err = f.svc.GenerateReport(ctx, uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrSubmissionNotFound)

	id := storedSubmission(f.subs, "Acme")

	f.gen.err = fmt.Errorf("boom: %w", utils.ErrGeneratorError)
	_, err = f.svc.GenerateReport(ctx, id.String())
	require.ErrorIs(t, err, utils.ErrReportGeneration)
	var sectionErr *survey.SectionError
	require.ErrorAs(t, err, &sectionErr)
	assert.Equal(t, survey.StageExecutiveSummary, sectionErr.Stage)

	f.gen.err = utils.ErrGeneratorUnavailable
	_, err = f.svc.GenerateReport(ctx, id.String())
	assert.ErrorIs(t, err, utils.ErrGeneratorUnavailable)

	assert.Empty(t, f.reports.reports)
	assert.Empty(t, f.publisher.topics())

	_, err = f.svc.LatestReport(ctx, id.String())
	assert.ErrorIs(t, err, utils.ErrReportNotFound)
}

func TestExportReport(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()
	id := storedSubmission(f.subs, "Acme")

	_, err := f.svc.ExportReport(ctx, id.String(), "markdown")
	assert.ErrorIs(t, err, utils.ErrReportNotFound)

	_, err = f.svc.GenerateReport(ctx, id.String())
	require.NoError(t, err)

	md, err := f.svc.ExportReport(ctx, id.String(), "markdown")
	require.NoError(t, err)
	assert.Equal(t, ReportFileName(id.String(), "md"), md.FileName)
	assert.Contains(t, string(md.Data), survey.DocumentTitle)

	pdf, err := f.svc.ExportReport(ctx, id.String(), "pdf")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf.Data, []byte("%PDF-")))

	_, err = f.svc.ExportReport(ctx, id.String(), "docx")
	assert.ErrorIs(t, err, utils.ErrInvalidFormat)
}

func TestReportFileName(t *testing.T) {
	assert.Equal(t, "assessment_report_12345678.pdf", ReportFileName("12345678-aaaa", "pdf"))
	assert.Equal(t, "assessment_report_abc.md", ReportFileName("abc", "md"))
}
