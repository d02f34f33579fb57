package entity

import (
	"time"

	"github.com/google/uuid"
)

// LabExamFile is an uploaded lab result or imaging study attached to an
// evaluation. Position preserves insertion order, which is also the display
// order. Only the object URL is stored; blob storage is external.
type LabExamFile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EvaluationID uuid.UUID `gorm:"type:uuid;not null;index" json:"evaluation_id"`
	FileName     string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileType     string    `gorm:"type:varchar(100);not null" json:"file_type"`
	FileURL      string    `gorm:"type:text;not null" json:"file_url"`
	Category     string    `gorm:"type:varchar(10);not null;index" json:"category"`
	Position     int       `gorm:"not null" json:"position"`
	UploadedAt   time.Time `gorm:"not null" json:"uploaded_at"`
}

func (LabExamFile) TableName() string {
	return "lab_exam_files"
}

// Lab exam categories
const (
	LabExamCategoryLab     = "lab"
	LabExamCategoryImaging = "imaging"
)
