package domain

import (
	"encoding/json"
	"fmt"
)

// BreakdownEntry is one key/count pair of a grouped count.
type BreakdownEntry struct {
	Key   string
	Count int64
}

// Breakdown decodes the backend's grouped counts, which arrive as
// [[key, count], ...] rows.
type Breakdown []BreakdownEntry

func (b *Breakdown) UnmarshalJSON(data []byte) error {
	var rows [][]json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("breakdown: %w", err)
	}
	out := make(Breakdown, 0, len(rows))
	for _, row := range rows {
		if len(row) != 2 {
			return fmt.Errorf("breakdown: row has %d columns, want 2", len(row))
		}
		var e BreakdownEntry
		if err := json.Unmarshal(row[0], &e.Key); err != nil {
			return fmt.Errorf("breakdown key: %w", err)
		}
		if err := json.Unmarshal(row[1], &e.Count); err != nil {
			return fmt.Errorf("breakdown count: %w", err)
		}
		out = append(out, e)
	}
	*b = out
	return nil
}

// DashboardStats are the admin dashboard counters from GET /dashboard/stats.
type DashboardStats struct {
	Bookings          BookingStats `json:"bookings"`
	TotalCampaigns    int64        `json:"totalCampaigns"`
	ActiveCampaigns   int64        `json:"activeCampaigns"`
	UnreadMessages    int64        `json:"unreadMessages"`
	Subscribers       int64        `json:"subscribers"`
	PlatformBreakdown Breakdown    `json:"platformBreakdown"`
	ServiceBreakdown  Breakdown    `json:"serviceBreakdown"`
}
