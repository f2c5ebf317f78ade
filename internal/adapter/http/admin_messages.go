package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/session"
)

type messagesData struct {
	Rows       []domain.ContactMessage
	UnreadOnly bool
	// Unread is nil when the counter could not be fetched.
	Unread *int64
	Total  int64
	Loaded bool
	Pager  pager
}

func unreadFilter(q url.Values) (bool, bool) {
	if !q.Has("unread") {
		return false, false
	}
	switch q.Get("unread") {
	case "1", "true", "on":
		return true, true
	}
	return false, true
}

func (h *Handler) handleMessages(w http.ResponseWriter, r *http.Request) {
	view := h.messagesView(mustSession(r))
	unread, ok := unreadFilter(r.URL.Query())
	err := syncView(r, view, unread, ok)
	if h.expired(w, r, err) {
		return
	}
	h.renderMessages(w, r, view, h.listFailure(r, err))
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	view := h.messagesView(mustSession(r))
	id, ok := idParam(r)
	if !ok {
		h.renderMessages(w, r, view, &session.Flash{Kind: session.FlashError, Message: "Unknown message"})
		return
	}
	api := h.backendFor(r)
	err := view.Apply(r.Context(), func(ctx context.Context) error {
		_, err := api.MarkContactRead(ctx, id)
		return err
	})
	if h.expired(w, r, err) {
		return
	}
	h.renderMessages(w, r, view, h.mutationFlash(r, err, "Marked as read", "Could not mark the message as read."))
}

func (h *Handler) renderMessages(w http.ResponseWriter, r *http.Request, view *messagesView, flash *session.Flash) {
	snap := view.Snapshot()
	data := messagesData{
		Rows:       snap.Rows,
		UnreadOnly: snap.Filter,
		Total:      snap.TotalElements,
		Loaded:     snap.Loaded,
	}
	q := url.Values{}
	if snap.Filter {
		q.Set("unread", "1")
	} else {
		q.Set("unread", "0")
	}
	data.Pager = newPager("/admin/messages", q, snap)

	// The badge is best effort.
	if n, err := h.backendFor(r).UnreadContactCount(r.Context()); err == nil {
		data.Unread = &n
	} else if h.expired(w, r, err) {
		return
	} else {
		h.logger.DebugContext(r.Context(), "unread count unavailable", slog.Any("error", err))
	}

	h.render(w, r, http.StatusOK, "admin_messages.html", pageData{
		Title: "Messages",
		Nav:   "messages",
		Flash: flash,
		Data:  data,
	})
}
