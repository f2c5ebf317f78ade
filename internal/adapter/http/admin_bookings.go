package httpadapter

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/session"
)

type bookingsData struct {
	Rows     []domain.Booking
	Filter   domain.BookingStatus
	Statuses []domain.BookingStatus
	Total    int64
	Loaded   bool
	Pager    pager
}

// bookingStatusFilter reads ?status=. ALL or an empty value clear the
// filter; an unknown status is ignored.
func bookingStatusFilter(q url.Values) (domain.BookingStatus, bool) {
	if !q.Has("status") {
		return "", false
	}
	v := strings.ToUpper(strings.TrimSpace(q.Get("status")))
	if v == "" || v == "ALL" {
		return "", true
	}
	s := domain.BookingStatus(v)
	return s, s.Valid()
}

func (h *Handler) handleBookings(w http.ResponseWriter, r *http.Request) {
	view := h.bookingsView(mustSession(r))
	status, ok := bookingStatusFilter(r.URL.Query())
	err := syncView(r, view, status, ok)
	if h.expired(w, r, err) {
		return
	}
	h.renderBookings(w, r, view, h.listFailure(r, err))
}

// handleBookingStatus moves a booking to a new status and refetches the
// current page. A failed update leaves the rows as last fetched.
func (h *Handler) handleBookingStatus(w http.ResponseWriter, r *http.Request) {
	view := h.bookingsView(mustSession(r))
	id, ok := idParam(r)
	status := domain.BookingStatus(formValue(r, "status"))
	if !ok || !status.Valid() {
		h.renderBookings(w, r, view, &session.Flash{Kind: session.FlashError, Message: "Unknown booking or status"})
		return
	}
	notes := formValue(r, "notes")
	api := h.backendFor(r)

	err := view.Apply(r.Context(), func(ctx context.Context) error {
		_, err := api.UpdateBookingStatus(ctx, id, status, notes)
		return err
	})
	if h.expired(w, r, err) {
		return
	}
	h.renderBookings(w, r, view, h.mutationFlash(r, err, "Booking marked "+domain.Label(string(status)), "Could not update the booking status."))
}

func (h *Handler) renderBookings(w http.ResponseWriter, r *http.Request, view *bookingsView, flash *session.Flash) {
	snap := view.Snapshot()
	q := url.Values{}
	if snap.Filter != "" {
		q.Set("status", string(snap.Filter))
	} else {
		q.Set("status", "ALL")
	}
	h.render(w, r, http.StatusOK, "admin_bookings.html", pageData{
		Title: "Bookings",
		Nav:   "bookings",
		Flash: flash,
		Data: bookingsData{
			Rows:     snap.Rows,
			Filter:   snap.Filter,
			Statuses: domain.BookingStatuses,
			Total:    snap.TotalElements,
			Loaded:   snap.Loaded,
			Pager:    newPager("/admin/bookings", q, snap),
		},
	})
}
