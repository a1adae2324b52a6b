package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"uobsurvey/internal/survey"
)

type AssessmentReport struct {
	BaseModel
	SubmissionID uuid.UUID                                `gorm:"type:uuid;index;not null"`
	Sections     datatypes.JSONType[survey.ReportSections] `gorm:"type:jsonb"`
	Markdown     string                                   `gorm:"type:text;not null"`
	Provider     string                                   `gorm:"size:32"`
	GeneratedAt  int64                                    `gorm:"index;not null"`
}

func (AssessmentReport) TableName() string {
	return "assessment_reports"
}
