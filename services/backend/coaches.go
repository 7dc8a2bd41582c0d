package backend

import (
	"context"
	"net/url"

	"github.com/trezcool/lava/core/user"
)

func (c *Client) Coach(ctx context.Context, coachID string) (user.Coach, error) {
	var coach user.Coach
	if err := requireID("coach_id", coachID); err != nil {
		return coach, err
	}
	err := c.get(ctx, "coaches.get", "/coaches/"+coachID, &coach)
	return coach, err
}

func (c *Client) Coaches(ctx context.Context) ([]user.Coach, error) {
	var coaches []user.Coach
	err := c.get(ctx, "coaches.list", "/coaches", &coaches)
	return coaches, err
}

// CoachMemos lists the memos kept about one student.
func (c *Client) CoachMemos(ctx context.Context, studentID string) ([]user.CoachMemo, error) {
	if err := requireID("student_id", studentID); err != nil {
		return nil, err
	}
	var memos []user.CoachMemo
	q := url.Values{"student_id": {studentID}}
	err := c.get(ctx, "coaches.getMemos", "/coach-memos?"+q.Encode(), &memos)
	return memos, err
}

func (c *Client) CreateCoachMemo(ctx context.Context, nm user.NewCoachMemo) (user.CoachMemo, error) {
	var memo user.CoachMemo
	if err := nm.Validate(); err != nil {
		return memo, err
	}
	err := c.post(ctx, "coaches.createMemo", "/coach-memos", nm, &memo)
	return memo, err
}
