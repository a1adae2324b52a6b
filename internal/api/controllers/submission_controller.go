package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"uobsurvey/internal/models/request_models"
	"uobsurvey/internal/services"
	"uobsurvey/pkg/utils"
)

type SubmissionController struct {
	submissionService services.SubmissionServiceInterface
	reportService     services.ReportServiceInterface
}

func NewSubmissionController(
	submissionService services.SubmissionServiceInterface,
	reportService services.ReportServiceInterface,
) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
		reportService:     reportService,
	}
}

// ListSubmissions godoc
// @Summary List survey submissions
// @Tags Admin
// @Produce json
// @Param limit query int    false "1-100, default 50"
// @Param sort  query string false "newest | oldest (default newest)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/submissions [get]
func (s *SubmissionController) ListSubmissions(c *gin.Context) {
	var q request_models.ListSubmissionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Limit must be between 1 and 100")
		return
	}

	rows, err := s.submissionService.ListSubmissions(c.Request.Context(), q.Limit, q.Sort)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Submissions fetched successfully")
}

// GetSubmission godoc
// @Summary Get one submission with all answers
// @Tags Admin
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/submissions/{id} [get]
func (s *SubmissionController) GetSubmission(c *gin.Context) {
	detail, err := s.submissionService.GetSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, detail, "Submission fetched successfully")
}

// DeleteSubmission godoc
// @Summary Delete a submission and its reports
// @Tags Admin
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/submissions/{id} [delete]
func (s *SubmissionController) DeleteSubmission(c *gin.Context) {
	if err := s.submissionService.DeleteSubmission(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Submission deleted")
}

// GenerateReport godoc
// @Summary Generate the assessment report for a submission
// @Description Runs the four report sections through the LLM. Fails as a whole when any section fails.
// @Tags Admin
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/submissions/{id}/report [post]
func (s *SubmissionController) GenerateReport(c *gin.Context) {
	report, err := s.reportService.GenerateReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "Report generated successfully")
}

// ExportReport godoc
// @Summary Download the latest report
// @Tags Admin
// @Produce octet-stream
// @Param id     path  string true  "Submission ID"
// @Param format query string false "markdown | text | html | pdf (default markdown)"
// @Success 200 {file} file
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/submissions/{id}/report [get]
func (s *SubmissionController) ExportReport(c *gin.Context) {
	out, err := s.reportService.ExportReport(c.Request.Context(), c.Param("id"), c.Query("format"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}
