package mastery

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Mastery statuses
const (
	StatusInProgress = "IN_PROGRESS"
	StatusMastered   = "MASTERED"
)

// Entry is a per-concept score indicating a student's demonstrated competence.
type Entry struct {
	StudentID    string    `json:"student_id" validate:"required"`
	ConceptID    string    `json:"concept_id" validate:"required"`
	MasteryScore int       `json:"mastery_score" validate:"min=0,max=100"`
	Status       string    `json:"status" validate:"omitempty,oneof=IN_PROGRESS MASTERED"`
	LastUpdated  null.Time `json:"last_updated,omitempty"`
}

// Vector is one 4-axis assessment snapshot; every axis score is 0-100.
type Vector struct {
	ID           string    `json:"vector_id" validate:"required"`
	AssessmentID string    `json:"assessment_id" validate:"required"`
	StudentID    string    `json:"student_id" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`

	Axis1Geo int `json:"axis1_geo" validate:"min=0,max=100"`
	Axis1Alg int `json:"axis1_alg" validate:"min=0,max=100"`
	Axis1Ana int `json:"axis1_ana" validate:"min=0,max=100"`
	Axis2Opt int `json:"axis2_opt" validate:"min=0,max=100"`
	Axis2Piv int `json:"axis2_piv" validate:"min=0,max=100"`
	Axis2Dia int `json:"axis2_dia" validate:"min=0,max=100"`
	Axis3Con int `json:"axis3_con" validate:"min=0,max=100"`
	Axis3Pro int `json:"axis3_pro" validate:"min=0,max=100"`
	Axis3Ret int `json:"axis3_ret" validate:"min=0,max=100"`
	Axis4Acc int `json:"axis4_acc" validate:"min=0,max=100"`
	Axis4Gri int `json:"axis4_gri" validate:"min=0,max=100"`
}
