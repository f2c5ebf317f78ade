package httpadapter

import (
	"context"
	"net/http"
	"strconv"

	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/listview"
	"digigrow-web/internal/session"
)

// Session value keys of the admin list views.
const (
	bookingsViewKey  = "view.bookings"
	campaignsViewKey = "view.campaigns"
	messagesViewKey  = "view.messages"
)

type (
	bookingsView  = listview.View[domain.BookingStatus, domain.Booking]
	campaignsView = listview.View[domain.Platform, domain.Campaign]
	messagesView  = listview.View[bool, domain.ContactMessage]
)

// The views live on the session so filter and page survive between
// requests, and their fetchers are bound to that session's credentials.

func (h *Handler) bookingsView(sess *session.Session) *bookingsView {
	return sess.Value(bookingsViewKey, func() any {
		api := h.backend.As(sess)
		return listview.New[domain.BookingStatus, domain.Booking]("", func(ctx context.Context, status domain.BookingStatus, page, size int) (domain.Page[domain.Booking], error) {
			return api.ListBookings(ctx, page, size, status)
		}, listview.DefaultPageSize)
	}).(*bookingsView)
}

func (h *Handler) campaignsView(sess *session.Session) *campaignsView {
	return sess.Value(campaignsViewKey, func() any {
		api := h.backend.As(sess)
		return listview.New[domain.Platform, domain.Campaign]("", func(ctx context.Context, platform domain.Platform, page, size int) (domain.Page[domain.Campaign], error) {
			return api.ListCampaigns(ctx, page, size, domain.CampaignFilter{Platform: platform})
		}, listview.DefaultPageSize)
	}).(*campaignsView)
}

func (h *Handler) messagesView(sess *session.Session) *messagesView {
	return sess.Value(messagesViewKey, func() any {
		api := h.backend.As(sess)
		return listview.New[bool, domain.ContactMessage](false, func(ctx context.Context, unreadOnly bool, page, size int) (domain.Page[domain.ContactMessage], error) {
			return api.ListContactMessages(ctx, page, size, unreadOnly)
		}, listview.DefaultPageSize)
	}).(*messagesView)
}

// syncView brings v in line with the request: a changed filter resets to
// the first page, an explicit page moves there, and anything else
// refetches the current page. Exactly one fetch is made.
func syncView[F comparable, T any](r *http.Request, v *listview.View[F, T], filter F, hasFilter bool) error {
	ctx := r.Context()
	q := r.URL.Query()
	switch {
	case hasFilter && filter != v.Snapshot().Filter:
		return v.SetFilter(ctx, filter)
	case q.Has("page"):
		p, err := strconv.Atoi(q.Get("page"))
		if err != nil {
			p = 0
		}
		return v.SetPage(ctx, p)
	default:
		return v.Refresh(ctx)
	}
}

// mustSession returns the request's session. Admin routes always run
// behind loadSession.
func mustSession(r *http.Request) *session.Session {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		panic("httpadapter: admin route without session")
	}
	return sess
}
