package submission

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/lava/core"
)

// Statuses
const (
	StatusPending       = "PENDING"
	StatusInProgress    = "IN_PROGRESS"
	StatusComplete      = "COMPLETE"
	StatusNeedsRevision = "NEEDS_REVISION"
)

// Review decisions
const (
	DecisionApproved      = "approved"
	DecisionNeedsRevision = "needs_revision"
)

// Submission is a student's attempt at a problem, subject to coach review.
// submission_id, student_id and problem_text never change after creation;
// status and feedback are mutated server-side by coach reviews.
type Submission struct {
	ID                  string      `json:"submission_id" validate:"required"`
	StudentID           string      `json:"student_id" validate:"required"`
	ProblemText         string      `json:"problem_text,omitempty"`
	LogicalPathText     string      `json:"logical_path_text"`
	Status              string      `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETE NEEDS_REVISION"`
	ConceptID           null.String `json:"concept_id,omitempty"`
	ManimContentURL     null.String `json:"manim_content_url,omitempty"`
	AudioExplanationURL null.String `json:"audio_explanation_url,omitempty"`
	SubmittedAt         time.Time   `json:"submitted_at"`
	CoachFeedback       null.String `json:"coach_feedback,omitempty"`
}

// NewSubmission contains information needed to create a Submission.
type NewSubmission struct {
	StudentID   string `json:"student_id" validate:"required"`
	ProblemText string `json:"problem_text" validate:"required,notblank"`
}

func (ns *NewSubmission) Validate() error {
	ns.ProblemText = core.CleanString(ns.ProblemText)
	return core.Validate.Struct(ns)
}

// Review is the write-only input a coach applies to exactly one Submission.
type Review struct {
	CoachID       string `json:"coach_id" validate:"required"`
	Decision      string `json:"decision" validate:"required,oneof=approved needs_revision"`
	CoachFeedback string `json:"coach_feedback" validate:"required,notblank"`
}

func (r *Review) Validate() error {
	r.CoachFeedback = core.CleanString(r.CoachFeedback)
	return core.Validate.Struct(r)
}
