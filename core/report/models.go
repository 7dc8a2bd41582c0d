package report

import (
	"errors"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/lava/core"
)

// Statuses; transitions are monotonic: DRAFT -> FINALIZED -> SENT.
const (
	StatusDraft     = "DRAFT"
	StatusFinalized = "FINALIZED"
	StatusSent      = "SENT"
)

var (
	ErrNotDraft     = errors.New("only a draft report can be finalized")
	ErrNotFinalized = errors.New("only a finalized report can be sent")
)

// Report is a periodic coach-authored, AI-assisted summary of a student's
// progress over [PeriodStart, PeriodEnd].
type Report struct {
	ID            int         `json:"report_id" validate:"required"`
	StudentID     string      `json:"student_id" validate:"required"`
	CoachID       null.String `json:"coach_id,omitempty"`
	PeriodStart   time.Time   `json:"period_start"`
	PeriodEnd     time.Time   `json:"period_end"`
	Status        string      `json:"status" validate:"required,oneof=DRAFT FINALIZED SENT"`
	AISummary     string      `json:"ai_summary"`
	VectorStartID string      `json:"vector_start_id"`
	VectorEndID   string      `json:"vector_end_id"`
	CoachComment  null.String `json:"coach_comment,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	FinalizedAt   null.Time   `json:"finalized_at,omitempty"`
}

// CanFinalize reports whether the finalize transition is legal client-side;
// no reverse transition ever is.
func (r Report) CanFinalize() error {
	if r.Status != StatusDraft {
		return ErrNotDraft
	}
	return nil
}

func (r Report) CanSend() error {
	if r.Status != StatusFinalized {
		return ErrNotFinalized
	}
	return nil
}

// CoachComment is the body of the finalize call.
type CoachComment struct {
	CoachComment string `json:"coach_comment" validate:"required,notblank"`
}

func (cc *CoachComment) Validate() error {
	cc.CoachComment = core.CleanString(cc.CoachComment)
	return core.Validate.Struct(cc)
}
