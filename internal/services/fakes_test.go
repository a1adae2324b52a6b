package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	dbm "uobsurvey/internal/models/db_models"
	"uobsurvey/internal/repositories"
	"uobsurvey/internal/survey"
	"uobsurvey/pkg/utils"
)

type fakeSubmissionRepo struct {
	mu       sync.Mutex
	rows     map[uuid.UUID]dbm.SurveySubmission
	saveErr  error
	saves    int
	listArgs []interface{}
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{rows: map[uuid.UUID]dbm.SurveySubmission{}}
}

func (f *fakeSubmissionRepo) Save(_ context.Context, s *dbm.SurveySubmission) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return uuid.Nil, f.saveErr
	}
	f.rows[s.ID] = *s
	return s.ID, nil
}

func (f *fakeSubmissionRepo) List(_ context.Context, limit int, newestFirst bool) ([]dbm.SurveySubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listArgs = []interface{}{limit, newestFirst}
	out := make([]dbm.SurveySubmission, 0, len(f.rows))
	for _, r := range f.rows {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeSubmissionRepo) FindByID(_ context.Context, id uuid.UUID) (*dbm.SurveySubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok {
		return nil, utils.ErrSubmissionNotFound
	}
	return &r, nil
}

func (f *fakeSubmissionRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return utils.ErrSubmissionNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeSubmissionRepo) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows)), nil
}

func (f *fakeSubmissionRepo) CountByStatus(context.Context) ([]repositories.StatusRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := map[string]int64{}
	for _, r := range f.rows {
		counts[r.Status]++
	}
	var rows []repositories.StatusRow
	for status, n := range counts {
		rows = append(rows, repositories.StatusRow{Status: status, Count: n})
	}
	return rows, nil
}

type fakeReportRepo struct {
	mu      sync.Mutex
	reports []dbm.AssessmentReport
	saveErr error
}

func (f *fakeReportRepo) SaveReport(_ context.Context, r *dbm.AssessmentReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.reports = append(f.reports, *r)
	return nil
}

func (f *fakeReportRepo) LatestReport(_ context.Context, submissionID uuid.UUID) (*dbm.AssessmentReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.reports) - 1; i >= 0; i-- {
		if f.reports[i].SubmissionID == submissionID {
			r := f.reports[i]
			return &r, nil
		}
	}
	return nil, utils.ErrReportNotFound
}

type published struct {
	topic   string
	payload any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []published
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, topic string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, published{topic: topic, payload: payload})
	return nil
}

func (f *fakePublisher) topics() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, e := range f.events {
		out = append(out, e.topic)
	}
	return out
}

// sectionGenerator answers every section prompt with a canned text naming
// the system prompt it was given.
type sectionGenerator struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (g *sectionGenerator) NextQuestion(context.Context, []survey.ConversationTurn) (string, error) {
	return "", utils.ErrGeneratorUnavailable
}

func (g *sectionGenerator) Generate(_ context.Context, p survey.Prompt) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return fmt.Sprintf("Section %d: %s", g.calls, strings.SplitN(p.System, ".", 2)[0]), nil
}

func storedSubmission(repo *fakeSubmissionRepo, org string) uuid.UUID {
	id := uuid.New()
	model := &dbm.SurveySubmission{
		Role:         "Data Engineer",
		Organization: org,
		Status:       survey.StatusCompleted,
		SubmittedAt:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC).Unix(),
		Dynamic:      []survey.AnswerRecord{{QuestionID: "DQ1", QuestionText: "Q1", Answer: "answer one"}},
	}
	model.ID = id
	_, _ = repo.Save(context.Background(), model)
	return id
}
