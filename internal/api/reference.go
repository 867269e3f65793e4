package api

import (
	"context"
	"net/http"

	"inventory-console/internal/model"
)

// Reference-data clients. Departments, statuses and movement reasons are
// plain CRUD collections.

func NewDepartmentClient(c *Client) *Resource[model.Department] {
	return NewResource[model.Department](c, "/api/departments")
}

func NewStatusClient(c *Client) *Resource[model.DeviceStatus] {
	return NewResource[model.DeviceStatus](c, "/api/statuses")
}

func NewReasonClient(c *Client) *Resource[model.MovementReason] {
	return NewResource[model.MovementReason](c, "/api/reasons")
}

// ReportClient serves the per-department device tallies shown by reports.
type ReportClient struct {
	client *Client
}

func NewReportClient(c *Client) *ReportClient {
	return &ReportClient{client: c}
}

func (r *ReportClient) DepartmentStats(ctx context.Context) ([]model.DepartmentStats, error) {
	var out []model.DepartmentStats
	err := r.client.do(ctx, http.MethodGet, "/api/reports/departments", nil, nil, &out)
	return out, err
}
