package api

import (
	"context"
	"net/http"

	"digigrow-web/internal/core/domain"
)

func (c *Client) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var s domain.DashboardStats
	_, err := c.do(ctx, "dashboard_stats", http.MethodGet, "/dashboard/stats", nil, nil, &s)
	return s, err
}
