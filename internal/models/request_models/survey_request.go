package request_models

type StartSessionRequest struct {
	Role         string `json:"role" binding:"required,max=200"`
	Organization string `json:"organization" binding:"max=200"`
	Contact      string `json:"contact" binding:"max=200"`
	SubmittedBy  string `json:"submitted_by" binding:"max=200"`
}

// SectionAnswersRequest carries answers for a fixed question table keyed by
// question id.
type SectionAnswersRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// DynamicAnswerRequest leaves the answer unconstrained so the flow controller
// can report the precise validation rule.
type DynamicAnswerRequest struct {
	Answer string `json:"answer"`
}

type ListSubmissionsQuery struct {
	Limit int    `form:"limit,default=50"`
	Sort  string `form:"sort,default=newest"`
}
