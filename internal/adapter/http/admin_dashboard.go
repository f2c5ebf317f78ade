package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"digigrow-web/internal/core/domain"
)

// recentBookings is how many bookings the dashboard lists.
const recentBookings = 5

type dashboardData struct {
	// Stats is nil when the stats call failed.
	Stats  *domain.DashboardStats
	Recent []domain.Booking
	// RecentFailed reports that the recent bookings could not be loaded.
	RecentFailed bool
}

// handleDashboard loads the counters and the latest bookings concurrently.
// Each call may fail on its own; the page shows a dash in its place.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	api := h.backendFor(r)

	var (
		data              dashboardData
		statsErr, listErr error
		g                 errgroup.Group
	)
	g.Go(func() error {
		stats, err := api.DashboardStats(ctx)
		if err != nil {
			statsErr = err
			return nil
		}
		data.Stats = &stats
		return nil
	})
	g.Go(func() error {
		page, err := api.ListBookings(ctx, 0, recentBookings, "")
		if err != nil {
			listErr = err
			data.RecentFailed = true
			return nil
		}
		data.Recent = page.Content
		return nil
	})
	_ = g.Wait()

	if h.expired(w, r, errors.Join(statsErr, listErr)) {
		return
	}
	if statsErr != nil || listErr != nil {
		h.logger.WarnContext(ctx, "dashboard partially loaded",
			slog.Any("stats_error", statsErr), slog.Any("bookings_error", listErr))
	}
	h.render(w, r, http.StatusOK, "admin_dashboard.html", pageData{Title: "Dashboard", Nav: "dashboard", Data: data})
}
