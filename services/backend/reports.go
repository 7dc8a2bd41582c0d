package backend

import (
	"context"
	"strconv"

	"github.com/trezcool/lava/core/report"
)

func (c *Client) DraftReports(ctx context.Context) ([]report.Report, error) {
	var reports []report.Report
	err := c.get(ctx, "reports.listDrafts", "/reports/drafts", &reports)
	return reports, err
}

func (c *Client) Report(ctx context.Context, reportID int) (report.Report, error) {
	var rep report.Report
	err := c.get(ctx, "reports.getDetails", "/reports/"+strconv.Itoa(reportID), &rep)
	return rep, err
}

// FinalizeReport moves a draft to FINALIZED with the coach's comment. The
// transition is monotonic; the caller guards with Report.CanFinalize.
func (c *Client) FinalizeReport(ctx context.Context, reportID int, comment report.CoachComment) (report.Report, error) {
	var rep report.Report
	if err := comment.Validate(); err != nil {
		return rep, err
	}
	err := c.put(ctx, "reports.finalize", "/reports/"+strconv.Itoa(reportID)+"/finalize", comment, &rep)
	return rep, err
}

// SendReport delivers a finalized report to the student's guardians.
func (c *Client) SendReport(ctx context.Context, reportID int) error {
	return c.post(ctx, "reports.send", "/reports/"+strconv.Itoa(reportID)+"/send", nil, nil)
}
