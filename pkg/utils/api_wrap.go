package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// messenger is implemented by errors that carry a user facing message.
type messenger interface {
	UserMessage() string
}

func traceIDFrom(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

func RespondErrorWithData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var m messenger

	switch {
	case errors.Is(err, ErrValidation) && errors.As(err, &m):
		RespondError(c, http.StatusBadRequest, m.UserMessage())
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Survey session not found")
	case errors.Is(err, ErrSubmissionNotFound):
		RespondError(c, http.StatusNotFound, "Submission not found")
	case errors.Is(err, ErrReportNotFound):
		RespondError(c, http.StatusNotFound, "No report has been generated for this submission")
	case errors.Is(err, ErrCannotGoBack):
		RespondError(c, http.StatusBadRequest, "Already at the first question")
	case errors.Is(err, ErrFlowComplete):
		RespondError(c, http.StatusConflict, "All dynamic questions have been answered")
	case errors.Is(err, ErrFlowNotComplete):
		RespondError(c, http.StatusConflict, "Please answer all dynamic questions first")
	case errors.Is(err, ErrStepIncomplete):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrAlreadySubmitted):
		RespondError(c, http.StatusConflict, "This survey has already been submitted")
	case errors.Is(err, ErrInvalidLimit):
		RespondError(c, http.StatusBadRequest, "Limit must be between 1 and 100")
	case errors.Is(err, ErrInvalidSortOrder):
		RespondError(c, http.StatusBadRequest, "Sort must be one of: newest, oldest")
	case errors.Is(err, ErrInvalidFormat):
		RespondError(c, http.StatusBadRequest, "Format must be one of: markdown, text, html, pdf")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, ErrGeneratorUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "Report generation is not configured: no LLM API key")
	case errors.Is(err, ErrReportGeneration):
		log.Printf("Report generation error: %v", err)
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrExport):
		log.Printf("Export error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Could not render the report")
	case errors.Is(err, ErrDatabaseError), errors.Is(err, ErrPersistence):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
