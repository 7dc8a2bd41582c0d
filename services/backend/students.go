package backend

import (
	"context"

	"github.com/trezcool/lava/core/anki"
	"github.com/trezcool/lava/core/mastery"
	"github.com/trezcool/lava/core/report"
	"github.com/trezcool/lava/core/user"
)

func (c *Client) Student(ctx context.Context, studentID string) (user.Student, error) {
	var std user.Student
	if err := requireID("student_id", studentID); err != nil {
		return std, err
	}
	err := c.get(ctx, "students.get", "/students/"+studentID, &std)
	return std, err
}

// Students lists every student visible to the caller.
func (c *Client) Students(ctx context.Context) ([]user.Student, error) {
	var stds []user.Student
	err := c.get(ctx, "students.list", "/coaches/students", &stds)
	return stds, err
}

// CoachStudents lists the students on one coach's roster.
func (c *Client) CoachStudents(ctx context.Context, coachID string) ([]user.Student, error) {
	if err := requireID("coach_id", coachID); err != nil {
		return nil, err
	}
	var stds []user.Student
	err := c.get(ctx, "students.listByCoach", "/coaches/"+coachID+"/students", &stds)
	return stds, err
}

func (c *Client) StudentMastery(ctx context.Context, studentID string) ([]mastery.Entry, error) {
	if err := requireID("student_id", studentID); err != nil {
		return nil, err
	}
	var entries []mastery.Entry
	err := c.get(ctx, "students.getMastery", "/students/"+studentID+"/mastery", &entries)
	return entries, err
}

// VectorHistory lists every 4-axis assessment snapshot, oldest first.
func (c *Client) VectorHistory(ctx context.Context, studentID string) ([]mastery.Vector, error) {
	if err := requireID("student_id", studentID); err != nil {
		return nil, err
	}
	var vectors []mastery.Vector
	err := c.get(ctx, "students.getVectorHistory", "/students/"+studentID+"/vector-history", &vectors)
	return vectors, err
}

func (c *Client) LatestVector(ctx context.Context, studentID string) (mastery.Vector, error) {
	var vec mastery.Vector
	if err := requireID("student_id", studentID); err != nil {
		return vec, err
	}
	err := c.get(ctx, "students.getLatestVector", "/coaches/students/"+studentID+"/latest_vector", &vec)
	return vec, err
}

func (c *Client) StudentReports(ctx context.Context, studentID string) ([]report.Report, error) {
	if err := requireID("student_id", studentID); err != nil {
		return nil, err
	}
	var reports []report.Report
	err := c.get(ctx, "students.getReports", "/coaches/students/"+studentID+"/reports", &reports)
	return reports, err
}

func (c *Client) StudentAnkiCards(ctx context.Context, studentID string) ([]anki.Card, error) {
	if err := requireID("student_id", studentID); err != nil {
		return nil, err
	}
	var cards []anki.Card
	err := c.get(ctx, "students.getAnkiCards", "/coaches/students/"+studentID+"/anki-cards", &cards)
	return cards, err
}
