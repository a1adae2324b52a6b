package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"uobsurvey/internal/config"
	"uobsurvey/internal/infra"
	dbm "uobsurvey/internal/models/db_models"
	"uobsurvey/internal/survey"
	"uobsurvey/pkg/utils"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	url := os.Getenv("POSTGRES_URL")
	if url == "" {
		t.Skip("POSTGRES_URL not set")
	}
	db, err := infra.InitPostgresql(config.DatabaseConfig{Connection: url, AutoMigrate: true}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { infra.ClosePostgresql(db, zap.NewNop()) })
	return db
}

func newSubmission(org string, at time.Time) *dbm.SurveySubmission {
	return &dbm.SurveySubmission{
		Role:         "Data Engineer",
		Organization: org,
		Status:       survey.StatusCompleted,
		SubmittedAt:  at.Unix(),
		Dynamic: datatypes.JSONSlice[survey.AnswerRecord]{
			{QuestionID: "DQ1", QuestionText: "Q1", Answer: "answer one"},
		},
	}
}

func TestSubmissionRepositoryLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubmissionRepository(db)
	reports := NewReportRepository(db)
	ctx := context.Background()

	org := "repo-test-" + uuid.NewString()
	older, err := repo.Save(ctx, newSubmission(org, time.Now().Add(-time.Hour)))
	require.NoError(t, err)
	newer, err := repo.Save(ctx, newSubmission(org, time.Now()))
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, newer)
	require.NoError(t, err)
	assert.Equal(t, org, got.Organization)
	require.Len(t, got.Dynamic, 1)
	assert.Equal(t, "answer one", got.Dynamic[0].Answer)

	list, err := repo.List(ctx, 100, true)
	require.NoError(t, err)
	idxNewer, idxOlder := -1, -1
	for i, s := range list {
		switch s.ID {
		case newer:
			idxNewer = i
		case older:
			idxOlder = i
		}
	}
	require.NotEqual(t, -1, idxNewer)
	require.NotEqual(t, -1, idxOlder)
	assert.Less(t, idxNewer, idxOlder)

	require.NoError(t, reports.SaveReport(ctx, &dbm.AssessmentReport{
		SubmissionID: newer,
		Sections:     datatypes.NewJSONType(survey.ReportSections{ExecutiveSummary: "s"}),
		Markdown:     "# Report",
		GeneratedAt:  time.Now().Unix(),
	}))
	latest, err := reports.LatestReport(ctx, newer)
	require.NoError(t, err)
	assert.Equal(t, "s", latest.Sections.Data().ExecutiveSummary)

	require.NoError(t, repo.Delete(ctx, newer))
	_, err = repo.FindByID(ctx, newer)
	assert.ErrorIs(t, err, utils.ErrSubmissionNotFound)
	_, err = reports.LatestReport(ctx, newer)
	assert.ErrorIs(t, err, utils.ErrReportNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, newer), utils.ErrSubmissionNotFound)

	require.NoError(t, repo.Delete(ctx, older))
}

func TestDateTrunc(t *testing.T) {
	assert.Equal(t, "date_trunc(?, to_timestamp(submitted_at))", dateTrunc("", "submitted_at"))
	assert.Equal(t, "date_trunc(?, timezone(?, to_timestamp(generated_at)))", dateTrunc("UTC", "generated_at"))
	assert.Equal(t, []interface{}{"day"}, truncArgs("day", ""))
	assert.Equal(t, []interface{}{"week", "UTC"}, truncArgs("week", "UTC"))
}
