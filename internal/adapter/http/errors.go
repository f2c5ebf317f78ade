package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/listview"
	"digigrow-web/internal/session"
)

const (
	msgGeneric        = "Something went wrong. Please try again."
	msgSessionExpired = "Your session has expired. Please log in again."
)

// expired redirects to the login page when err reports an expired
// session. The session itself was already cleared by the 401 event.
func (h *Handler) expired(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, domain.ErrSessionExpired) {
		return false
	}
	if sess, ok := session.FromContext(r.Context()); ok {
		sess.SetFlash(r.Context(), session.Flash{Kind: session.FlashError, Message: msgSessionExpired})
	}
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
	return true
}

// errorFlash turns a failed backend call into a notification carrying the
// backend message when there is one. The failure is logged.
func (h *Handler) errorFlash(r *http.Request, err error, fallback string) *session.Flash {
	h.logger.WarnContext(r.Context(), "backend call failed", slog.String("path", r.URL.Path), slog.Any("error", err))
	return &session.Flash{Kind: session.FlashError, Message: domain.UserMessage(err, fallback)}
}

// failRedirect reports err as a flash on the next page and redirects to
// back, or to the login page when the session expired.
func (h *Handler) failRedirect(w http.ResponseWriter, r *http.Request, err error, back string) {
	if h.expired(w, r, err) {
		return
	}
	if sess, ok := session.FromContext(r.Context()); ok {
		sess.SetFlash(r.Context(), *h.errorFlash(r, err, msgGeneric))
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// successRedirect flashes msg and redirects to target.
func (h *Handler) successRedirect(w http.ResponseWriter, r *http.Request, msg, target string) {
	h.flashRedirect(w, r, session.FlashSuccess, msg, target)
}

// listFailure returns the flash for a failed list fetch. A fetch superseded
// by a newer one from the same session is not a failure.
func (h *Handler) listFailure(r *http.Request, err error) *session.Flash {
	if err == nil || errors.Is(err, listview.ErrSuperseded) {
		return nil
	}
	return h.errorFlash(r, err, "Could not load the list. Please try again.")
}

// mutationFlash reports the outcome of a list mutation. A refetch
// superseded by a newer one still counts as success.
func (h *Handler) mutationFlash(r *http.Request, err error, ok, fallback string) *session.Flash {
	if err == nil || errors.Is(err, listview.ErrSuperseded) {
		return &session.Flash{Kind: session.FlashSuccess, Message: ok}
	}
	return h.errorFlash(r, err, fallback)
}
