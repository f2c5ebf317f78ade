package api

import (
	"context"
	"net/http"
	"net/url"

	"digigrow-web/internal/core/domain"
)

// ListCampaigns fetches one page of campaigns. The backend applies the
// status filter in preference to the platform filter when both are set.
func (c *Client) ListCampaigns(ctx context.Context, page int, size int, filter domain.CampaignFilter) (domain.Page[domain.Campaign], error) {
	q := pageQuery(page, size)
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.Platform != "" {
		q.Set("platform", string(filter.Platform))
	}
	var p domain.Page[domain.Campaign]
	_, err := c.do(ctx, "list_campaigns", http.MethodGet, "/campaigns", q, nil, &p)
	return p, err
}

func (c *Client) GetCampaign(ctx context.Context, id int64) (domain.Campaign, error) {
	var cmp domain.Campaign
	_, err := c.do(ctx, "get_campaign", http.MethodGet, idPath("campaigns", id), nil, nil, &cmp)
	return cmp, err
}

func (c *Client) CreateCampaign(ctx context.Context, req domain.CampaignRequest) (domain.Campaign, error) {
	var cmp domain.Campaign
	_, err := c.do(ctx, "create_campaign", http.MethodPost, "/campaigns", nil, req, &cmp)
	return cmp, err
}

func (c *Client) UpdateCampaignStatus(ctx context.Context, id int64, status domain.CampaignStatus) (domain.Campaign, error) {
	q := url.Values{}
	q.Set("status", string(status))
	var cmp domain.Campaign
	_, err := c.do(ctx, "update_campaign_status", http.MethodPatch, idPath("campaigns", id, "status"), q, nil, &cmp)
	return cmp, err
}

// UpdateCampaignMetrics overwrites the counters set in m.
func (c *Client) UpdateCampaignMetrics(ctx context.Context, id int64, m domain.MetricsUpdate) (domain.Campaign, error) {
	q := url.Values{}
	for k, v := range m.Query() {
		q.Set(k, v)
	}
	var cmp domain.Campaign
	_, err := c.do(ctx, "update_campaign_metrics", http.MethodPatch, idPath("campaigns", id, "metrics"), q, nil, &cmp)
	return cmp, err
}

func (c *Client) CampaignStats(ctx context.Context) (domain.CampaignStats, error) {
	var s domain.CampaignStats
	_, err := c.do(ctx, "campaign_stats", http.MethodGet, "/campaigns/stats", nil, nil, &s)
	return s, err
}
