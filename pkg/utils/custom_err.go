package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrPersistence        = errors.New("persistence failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidLimit       = errors.New("invalid limit parameter")
	ErrInvalidSortOrder   = errors.New("invalid sort order")
	ErrInvalidFormat      = errors.New("invalid export format")

	ErrSessionNotFound    = errors.New("survey session not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrReportNotFound     = errors.New("report not found")

	ErrValidation       = errors.New("validation failed")
	ErrCannotGoBack     = errors.New("cannot go back from the first question")
	ErrFlowComplete     = errors.New("dynamic question flow is already complete")
	ErrFlowNotComplete  = errors.New("dynamic question flow is not complete")
	ErrStepIncomplete   = errors.New("a previous survey step is incomplete")
	ErrAlreadySubmitted = errors.New("survey already submitted")

	ErrGeneratorUnavailable = errors.New("generator unavailable")
	ErrGeneratorError       = errors.New("generator error")
	ErrReportGeneration     = errors.New("report generation failed")
	ErrExport               = errors.New("export failed")
)
