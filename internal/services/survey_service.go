package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uobsurvey/internal/models/request_models"
	resp "uobsurvey/internal/models/response_models"
	"uobsurvey/internal/repositories"
	"uobsurvey/internal/survey"
	"uobsurvey/pkg/events"
	"uobsurvey/pkg/memcache"
	"uobsurvey/pkg/utils"
)

const persistenceWarning = "Your survey could not be saved right now. Your answers are kept in this session; please try submitting again."

type SurveyServiceInterface interface {
	BaselineQuestions() survey.QuestionSet
	AIQuestions() survey.QuestionSet

	StartSession(ctx context.Context, userID string, req request_models.StartSessionRequest) (*resp.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*resp.SessionResponse, error)
	ResetSession(ctx context.Context, sessionID string) error

	SaveBaseline(ctx context.Context, sessionID string, answers map[string]string) (*resp.SectionResult, error)

	GetFlow(ctx context.Context, sessionID string) (*resp.FlowView, error)
	SubmitDynamicAnswer(ctx context.Context, sessionID, answer string) (*resp.FlowView, error)
	GoBack(ctx context.Context, sessionID string) (*resp.FlowView, error)
	Tooltip(ctx context.Context, sessionID string) (*resp.TooltipResponse, error)
	Summary(ctx context.Context, sessionID string) (*resp.SummaryResponse, error)
	CompleteDynamic(ctx context.Context, sessionID string) (*resp.SessionResponse, error)

	SaveAI(ctx context.Context, sessionID string, answers map[string]string) (*resp.SectionResult, error)

	Submit(ctx context.Context, sessionID string) (*resp.SubmitResponse, error)
}

type SurveyService struct {
	sessions    memcache.Store[survey.Session]
	flow        *survey.Controller
	guide       *survey.Guide
	baseline    survey.QuestionSet
	submissions repositories.SubmissionRepository
	publisher   events.PublisherInterface
	logger      *zap.Logger
	now         func() time.Time
}

func NewSurveyService(
	sessions memcache.Store[survey.Session],
	flow *survey.Controller,
	guide *survey.Guide,
	baseline survey.QuestionSet,
	submissions repositories.SubmissionRepository,
	publisher events.PublisherInterface,
	logger *zap.Logger,
) SurveyServiceInterface {
	return &SurveyService{
		sessions:    sessions,
		flow:        flow,
		guide:       guide,
		baseline:    baseline,
		submissions: submissions,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *SurveyService) BaselineQuestions() survey.QuestionSet {
	return s.baseline
}

func (s *SurveyService) AIQuestions() survey.QuestionSet {
	return survey.AIQuestions
}

func (s *SurveyService) StartSession(ctx context.Context, userID string, req request_models.StartSessionRequest) (*resp.SessionResponse, error) {
	sess := survey.NewSession(uuid.NewString(), userID, s.now())
	sess.Role = req.Role
	sess.Organization = req.Organization
	sess.Contact = req.Contact
	sess.SubmittedBy = req.SubmittedBy
	if sess.SubmittedBy == "" {
		sess.SubmittedBy = userID
	}

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	s.logger.Info("survey session started", zap.String("session_id", sess.ID), zap.String("role", sess.Role))

	out := toSessionResponse(sess)
	return &out, nil
}

func (s *SurveyService) GetSession(ctx context.Context, sessionID string) (*resp.SessionResponse, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := toSessionResponse(sess)
	return &out, nil
}

func (s *SurveyService) ResetSession(ctx context.Context, sessionID string) error {
	if _, err := s.load(ctx, sessionID); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: deleting session: %w", utils.ErrDatabaseError, err)
	}
	s.logger.Info("survey session reset", zap.String("session_id", sessionID))
	return nil
}

func (s *SurveyService) SaveBaseline(ctx context.Context, sessionID string, answers map[string]string) (*resp.SectionResult, error) {
	sess, err := s.loadEditable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cleaned, warnings, err := survey.ValidateSection(s.baseline, answers)
	if err != nil {
		return nil, err
	}
	sess.Baseline = cleaned
	sess.BaselineComplete = true

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return &resp.SectionResult{Answered: len(cleaned), Warnings: warnings}, nil
}

func (s *SurveyService) GetFlow(ctx context.Context, sessionID string) (*resp.FlowView, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.RequireStep(survey.StepDynamic); err != nil {
		return nil, err
	}
	view := toFlowView(sess.Flow, survey.SourceNone)
	return &view, nil
}

func (s *SurveyService) SubmitDynamicAnswer(ctx context.Context, sessionID, answer string) (*resp.FlowView, error) {
	sess, err := s.loadEditable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.RequireStep(survey.StepDynamic); err != nil {
		return nil, err
	}

	next, source, err := s.flow.SubmitAnswer(ctx, sess.Flow, answer)
	if err != nil {
		return nil, err
	}
	sess.Flow = next

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	s.logger.Debug("dynamic answer recorded",
		zap.String("session_id", sessionID),
		zap.Int("position", next.Position),
		zap.String("source", string(source)))

	view := toFlowView(next, source)
	return &view, nil
}

func (s *SurveyService) GoBack(ctx context.Context, sessionID string) (*resp.FlowView, error) {
	sess, err := s.loadEditable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.RequireStep(survey.StepDynamic); err != nil {
		return nil, err
	}

	prev, err := s.flow.GoBack(sess.Flow)
	if err != nil {
		return nil, err
	}
	sess.Flow = prev
	sess.DynamicComplete = false

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	view := toFlowView(prev, survey.SourceNone)
	return &view, nil
}

func (s *SurveyService) Tooltip(ctx context.Context, sessionID string) (*resp.TooltipResponse, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	question, ok := sess.Flow.CurrentQuestion()
	if !ok {
		return nil, utils.ErrFlowComplete
	}

	tip, source := s.guide.Tooltip(ctx, question, sess.Flow.Position+1)
	return &resp.TooltipResponse{Question: question, Tooltip: tip, Source: source}, nil
}

func (s *SurveyService) Summary(ctx context.Context, sessionID string) (*resp.SummaryResponse, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	history, err := s.flow.Complete(sess.Flow)
	if err != nil {
		return nil, err
	}

	summary, source := s.guide.Summary(ctx, history)
	return &resp.SummaryResponse{Summary: summary, Source: source}, nil
}

func (s *SurveyService) CompleteDynamic(ctx context.Context, sessionID string) (*resp.SessionResponse, error) {
	sess, err := s.loadEditable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.RequireStep(survey.StepDynamic); err != nil {
		return nil, err
	}
	if _, err := s.flow.Complete(sess.Flow); err != nil {
		return nil, err
	}
	sess.DynamicComplete = true

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	out := toSessionResponse(sess)
	return &out, nil
}

func (s *SurveyService) SaveAI(ctx context.Context, sessionID string, answers map[string]string) (*resp.SectionResult, error) {
	sess, err := s.loadEditable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.RequireStep(survey.StepAI); err != nil {
		return nil, err
	}

	cleaned, warnings, err := survey.ValidateSection(survey.AIQuestions, answers)
	if err != nil {
		return nil, err
	}
	sess.AI = cleaned
	sess.AIComplete = true

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return &resp.SectionResult{Answered: len(cleaned), Warnings: warnings}, nil
}

// Submit persists the survey. A storage failure is reported as a warning and
// the session keeps its submission id so the next attempt writes the same
// record.
func (s *SurveyService) Submit(ctx context.Context, sessionID string) (*resp.SubmitResponse, error) {
	sess, err := s.loadEditable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.RequireStep(survey.StepSubmit); err != nil {
		return nil, err
	}

	if sess.SubmissionID == "" {
		sess.SubmissionID = uuid.NewString()
		sess.SubmittedAt = s.now().UTC()
	}
	submission := survey.BuildSubmission(sess, s.baseline, sess.SubmittedAt)

	model, err := toSubmissionModel(submission)
	if err != nil {
		return nil, err
	}

	if _, err := s.submissions.Save(ctx, model); err != nil {
		s.logger.Warn("saving submission failed",
			zap.String("session_id", sessionID),
			zap.String("submission_id", sess.SubmissionID),
			zap.Error(err))
		if saveErr := s.save(ctx, sess); saveErr != nil {
			return nil, saveErr
		}
		return &resp.SubmitResponse{SubmissionID: sess.SubmissionID, Saved: false, Warning: persistenceWarning}, nil
	}

	sess.Saved = true
	if err := s.save(ctx, sess); err != nil {
		s.logger.Warn("updating session after submit failed", zap.String("session_id", sessionID), zap.Error(err))
	}
	s.logger.Info("survey submitted", zap.String("session_id", sessionID), zap.String("submission_id", sess.SubmissionID))

	err = s.publisher.Publish(ctx, events.TopicSurveySubmitted, events.SurveySubmitted{
		SubmissionID: submission.ID,
		Organization: submission.Organization,
		Role:         submission.Role,
		SubmittedBy:  submission.SubmittedBy,
		SubmittedAt:  submission.SubmittedAt,
	})
	if err != nil {
		s.logger.Warn("publishing submission event failed", zap.String("submission_id", submission.ID), zap.Error(err))
	}

	return &resp.SubmitResponse{SubmissionID: sess.SubmissionID, Saved: true}, nil
}

// ---- helpers ----

func (s *SurveyService) load(ctx context.Context, sessionID string) (survey.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, memcache.ErrMiss) {
		return sess, fmt.Errorf("%s: %w", sessionID, utils.ErrSessionNotFound)
	}
	if err != nil {
		return sess, fmt.Errorf("%w: loading session: %w", utils.ErrDatabaseError, err)
	}
	return sess, nil
}

// loadEditable rejects changes to a survey that has already been saved.
func (s *SurveyService) loadEditable(ctx context.Context, sessionID string) (survey.Session, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return sess, err
	}
	if sess.Saved {
		return sess, utils.ErrAlreadySubmitted
	}
	return sess, nil
}

func (s *SurveyService) save(ctx context.Context, sess survey.Session) error {
	if err := s.sessions.Save(ctx, sess.ID, sess); err != nil {
		return fmt.Errorf("%w: saving session: %w", utils.ErrDatabaseError, err)
	}
	return nil
}
