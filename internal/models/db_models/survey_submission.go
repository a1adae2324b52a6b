package db_models

import (
	"gorm.io/datatypes"

	"uobsurvey/internal/survey"
)

// SurveySubmission is one completed survey. SubmittedAt is in unix seconds.
type SurveySubmission struct {
	BaseModel
	Role         string `gorm:"not null"`
	SubmittedBy  string
	Organization string `gorm:"index"`
	Contact      string
	Status       string `gorm:"index;not null;default:Completed"`
	SubmittedAt  int64  `gorm:"index;not null"`

	Baseline datatypes.JSONSlice[survey.AnswerRecord] `gorm:"type:jsonb"`
	Dynamic  datatypes.JSONSlice[survey.AnswerRecord] `gorm:"type:jsonb"`
	AI       datatypes.JSONSlice[survey.AnswerRecord] `gorm:"column:ai;type:jsonb"`

	Reports []AssessmentReport `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE"`
}

func (SurveySubmission) TableName() string {
	return "survey_submissions"
}
