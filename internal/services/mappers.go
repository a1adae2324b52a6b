package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	dbm "uobsurvey/internal/models/db_models"
	resp "uobsurvey/internal/models/response_models"
	"uobsurvey/internal/survey"
	"uobsurvey/pkg/utils"
)

// parseSubmissionID treats a malformed id as an unknown submission.
func parseSubmissionID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%q: %w", id, utils.ErrSubmissionNotFound)
	}
	return parsed, nil
}

func toSubmissionModel(s survey.Submission) (*dbm.SurveySubmission, error) {
	id, err := uuid.Parse(s.ID)
	if err != nil {
		return nil, fmt.Errorf("submission id %q: %w", s.ID, err)
	}
	model := &dbm.SurveySubmission{
		Role:         s.Role,
		SubmittedBy:  s.SubmittedBy,
		Organization: s.Organization,
		Contact:      s.Contact,
		Status:       s.Status,
		SubmittedAt:  s.SubmittedAt.Unix(),
		Baseline:     datatypes.JSONSlice[survey.AnswerRecord](s.Baseline),
		Dynamic:      datatypes.JSONSlice[survey.AnswerRecord](s.Dynamic),
		AI:           datatypes.JSONSlice[survey.AnswerRecord](s.AI),
	}
	model.ID = id
	return model, nil
}

func toSubmission(m *dbm.SurveySubmission) survey.Submission {
	return survey.Submission{
		ID:           m.ID.String(),
		Role:         m.Role,
		SubmittedBy:  m.SubmittedBy,
		Organization: m.Organization,
		Contact:      m.Contact,
		Status:       m.Status,
		SubmittedAt:  utils.FromUnixSeconds(m.SubmittedAt),
		Baseline:     []survey.AnswerRecord(m.Baseline),
		Dynamic:      []survey.AnswerRecord(m.Dynamic),
		AI:           []survey.AnswerRecord(m.AI),
	}
}

func toSubmissionSummary(m *dbm.SurveySubmission) resp.SubmissionSummary {
	return resp.SubmissionSummary{
		ID:            m.ID.String(),
		Role:          m.Role,
		SubmittedBy:   m.SubmittedBy,
		Organization:  m.Organization,
		Status:        m.Status,
		SubmittedAt:   utils.FromUnixSeconds(m.SubmittedAt),
		BaselineCount: len(m.Baseline),
		DynamicCount:  len(m.Dynamic),
		AICount:       len(m.AI),
	}
}

func toSubmissionDetail(m *dbm.SurveySubmission) resp.SubmissionDetail {
	return resp.SubmissionDetail{
		SubmissionSummary: toSubmissionSummary(m),
		Contact:           m.Contact,
		Baseline:          nonNilRecords(m.Baseline),
		Dynamic:           nonNilRecords(m.Dynamic),
		AI:                nonNilRecords(m.AI),
	}
}

func nonNilRecords(records []survey.AnswerRecord) []survey.AnswerRecord {
	if records == nil {
		return []survey.AnswerRecord{}
	}
	return records
}

func toReportResponse(m *dbm.AssessmentReport) resp.ReportResponse {
	return resp.ReportResponse{
		ID:           m.ID.String(),
		SubmissionID: m.SubmissionID.String(),
		Provider:     m.Provider,
		Sections:     m.Sections.Data(),
		Markdown:     m.Markdown,
		GeneratedAt:  utils.FromUnixSeconds(m.GeneratedAt),
	}
}

func toSessionResponse(s survey.Session) resp.SessionResponse {
	return resp.SessionResponse{
		ID:               s.ID,
		Role:             s.Role,
		Organization:     s.Organization,
		Contact:          s.Contact,
		SubmittedBy:      s.SubmittedBy,
		Step:             s.Step(),
		BaselineAnswered: len(s.Baseline),
		DynamicAnswered:  len(s.Flow.History),
		AIAnswered:       len(s.AI),
		BaselineComplete: s.BaselineComplete,
		DynamicComplete:  s.DynamicComplete,
		AIComplete:       s.AIComplete,
		SubmissionID:     s.SubmissionID,
		Saved:            s.Saved,
		CreatedAt:        s.CreatedAt,
	}
}

func toFlowView(f survey.FlowState, source survey.QuestionSource) resp.FlowView {
	question, _ := f.CurrentQuestion()
	history := f.History
	if history == nil {
		history = []survey.ConversationTurn{}
	}
	return resp.FlowView{
		Position:       f.Position,
		Total:          survey.TotalQuestions,
		Question:       question,
		QuestionSource: source,
		PreviousAnswer: f.PreviousAnswer(),
		ProgressPct:    f.Position * 100 / survey.TotalQuestions,
		CanGoBack:      f.Position > 0,
		Complete:       f.IsComplete(),
		History:        history,
	}
}

// ReportFileName names report downloads after the submission id prefix.
func ReportFileName(submissionID, ext string) string {
	prefix := submissionID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("assessment_report_%s.%s", prefix, ext)
}
