package user

import (
	"time"

	"github.com/trezcool/lava/core"
)

// CoachMemo is a private note a coach keeps about a student.
type CoachMemo struct {
	ID        int       `json:"memo_id" validate:"required"`
	CoachID   string    `json:"coach_id" validate:"required"`
	StudentID string    `json:"student_id" validate:"required"`
	MemoText  string    `json:"memo_text" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCoachMemo contains information needed to create a CoachMemo.
type NewCoachMemo struct {
	CoachID   string `json:"coach_id" validate:"required"`
	StudentID string `json:"student_id" validate:"required"`
	MemoText  string `json:"memo_text" validate:"required,notblank"`
}

func (nm *NewCoachMemo) Validate() error {
	nm.MemoText = core.CleanString(nm.MemoText)
	return core.Validate.Struct(nm)
}
