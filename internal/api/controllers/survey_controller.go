package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"uobsurvey/internal/models/request_models"
	"uobsurvey/internal/services"
	"uobsurvey/pkg/utils"
)

type SurveyController struct {
	surveyService services.SurveyServiceInterface
}

func NewSurveyController(surveyService services.SurveyServiceInterface) *SurveyController {
	return &SurveyController{
		surveyService: surveyService,
	}
}

// BaselineQuestions godoc
// @Summary List baseline questions
// @Tags Survey
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/questions/baseline [get]
func (s *SurveyController) BaselineQuestions(c *gin.Context) {
	utils.RespondSuccess(c, s.surveyService.BaselineQuestions(), "Baseline questions fetched successfully")
}

// AIQuestions godoc
// @Summary List AI/GenAI discovery questions
// @Tags Survey
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/questions/ai [get]
func (s *SurveyController) AIQuestions(c *gin.Context) {
	utils.RespondSuccess(c, s.surveyService.AIQuestions(), "AI/GenAI questions fetched successfully")
}

// StartSession godoc
// @Summary Start a survey session
// @Tags Survey
// @Accept json
// @Produce json
// @Param request body request_models.StartSessionRequest true "Respondent details"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/sessions [post]
func (s *SurveyController) StartSession(c *gin.Context) {
	var req request_models.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Role is required")
		return
	}

	sess, err := s.surveyService.StartSession(c.Request.Context(), c.GetString("username"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sess, "Survey session started")
}

// GetSession godoc
// @Summary Get survey session progress
// @Tags Survey
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/sessions/{id} [get]
func (s *SurveyController) GetSession(c *gin.Context) {
	sess, err := s.surveyService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sess, "Survey session fetched successfully")
}

// ResetSession godoc
// @Summary Discard a survey session
// @Tags Survey
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/sessions/{id} [delete]
func (s *SurveyController) ResetSession(c *gin.Context) {
	if err := s.surveyService.ResetSession(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Survey session reset")
}

// SaveBaseline godoc
// @Summary Save baseline answers and complete step 1
// @Tags Survey
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.SectionAnswersRequest true "Answers keyed by question id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/sessions/{id}/baseline [put]
func (s *SurveyController) SaveBaseline(c *gin.Context) {
	var req request_models.SectionAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := s.surveyService.SaveBaseline(c.Request.Context(), c.Param("id"), req.Answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Step 1 completed")
}

// GetFlow godoc
// @Summary Get the dynamic question flow
// @Tags Survey
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/sessions/{id}/dynamic [get]
func (s *SurveyController) GetFlow(c *gin.Context) {
	view, err := s.surveyService.GetFlow(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "")
}

// SubmitAnswer godoc
// @Summary Answer the current dynamic question
// @Tags Survey
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.DynamicAnswerRequest true "Answer"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/sessions/{id}/dynamic/answers [post]
func (s *SurveyController) SubmitAnswer(c *gin.Context) {
	var req request_models.DynamicAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	view, err := s.surveyService.SubmitDynamicAnswer(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Answer recorded")
}

// GoBack godoc
// @Summary Return to the previous dynamic question
// @Tags Survey
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/sessions/{id}/dynamic/back [post]
func (s *SurveyController) GoBack(c *gin.Context) {
	view, err := s.surveyService.GoBack(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "")
}

// Tooltip godoc
// @Summary Get answering tips for the current dynamic question
// @Tags Survey
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/sessions/{id}/dynamic/tooltip [get]
func (s *SurveyController) Tooltip(c *gin.Context) {
	tip, err := s.surveyService.Tooltip(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tip, "")
}

// Summary godoc
// @Summary Generate an insights summary of the dynamic answers
// @Tags Survey
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/sessions/{id}/dynamic/summary [post]
func (s *SurveyController) Summary(c *gin.Context) {
	summary, err := s.surveyService.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "")
}

// CompleteDynamic godoc
// @Summary Complete step 2
// @Tags Survey
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/sessions/{id}/dynamic/complete [post]
func (s *SurveyController) CompleteDynamic(c *gin.Context) {
	sess, err := s.surveyService.CompleteDynamic(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sess, "Step 2 completed")
}

// SaveAI godoc
// @Summary Save AI/GenAI answers and complete step 3
// @Tags Survey
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.SectionAnswersRequest true "Answers keyed by question id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/sessions/{id}/ai [put]
func (s *SurveyController) SaveAI(c *gin.Context) {
	var req request_models.SectionAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := s.surveyService.SaveAI(c.Request.Context(), c.Param("id"), req.Answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Step 3 completed")
}

// Submit godoc
// @Summary Submit the completed survey
// @Description Saves the survey. When storage is unavailable the response carries saved=false and a warning; submitting again retries the same record.
// @Tags Survey
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/sessions/{id}/submit [post]
func (s *SurveyController) Submit(c *gin.Context) {
	res, err := s.surveyService.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Survey submitted successfully"
	if !res.Saved {
		message = res.Warning
	}
	utils.RespondSuccess(c, res, message)
}
