package m365

import (
	"context"
	"net/url"

	"github.com/samber/lo"

	"github.com/custodia-labs/collabctl/internal/core/domain"
)

// graphPlannerTask is a Planner task resource from Microsoft Graph.
type graphPlannerTask struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	PercentComplete int    `json:"percentComplete"`
	DueDateTime     string `json:"dueDateTime"`
}

// toRecord maps a Planner task to the domain record. Planner tracks a
// completion percentage; only exactly 100 counts as complete.
func (t graphPlannerTask) toRecord() domain.Task {
	status := domain.TaskStatusInProgress
	if t.PercentComplete == 100 {
		status = domain.TaskStatusComplete
	}
	return domain.Task{
		ID:      t.ID,
		Title:   t.Title,
		Status:  status,
		DueDate: t.DueDateTime,
	}
}

// ListTasks lists the tasks of a Planner plan. An empty planID returns an
// empty list without any request; plan discovery is not implemented.
func (p *Provider) ListTasks(ctx context.Context, planID string) ([]domain.Task, error) {
	if planID == "" {
		return []domain.Task{}, nil
	}

	var resp struct {
		Value []graphPlannerTask `json:"value"`
	}
	path := "/planner/plans/" + url.PathEscape(planID) + "/tasks"
	if err := p.client.getJSON(ctx, path, nil, &resp); err != nil {
		return nil, err
	}

	return lo.Map(resp.Value, func(t graphPlannerTask, _ int) domain.Task {
		return t.toRecord()
	}), nil
}
