package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"digigrow-web/internal/session"
)

// logRequests records method, path, status and duration of every request.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.InfoContext(r.Context(), "http request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// loadSession resolves the visitor's session from the cookie, minting a new
// one when the cookie is missing or not a UUID, and stores it in the
// request context.
func (h *Handler) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *session.Session
		if c, err := r.Cookie(h.opts.CookieName); err == nil {
			if id, err := uuid.Parse(c.Value); err == nil {
				sess = h.sessions.Open(r.Context(), id.String())
			}
		}
		if sess == nil {
			sess = h.sessions.Create()
			http.SetCookie(w, &http.Cookie{
				Name:     h.opts.CookieName,
				Value:    sess.ID(),
				Path:     "/",
				HttpOnly: true,
				Secure:   h.opts.SecureCookie,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
	})
}

// requireAuth guards the admin panel. While the session is still restoring
// it renders the loading placeholder and asks the browser to retry; an
// unauthenticated session is sent to the login page.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		switch sess.Wait(r.Context(), h.opts.RestoreWait) {
		case session.StateAuthenticated:
			next.ServeHTTP(w, r)
		case session.StateRestoring:
			w.Header().Set("Retry-After", "1")
			w.Header().Set("Refresh", "1")
			w.Header().Set("Cache-Control", "no-store")
			h.render(w, r, http.StatusOK, "loading.html", pageData{Title: "Loading DigiGrow..."})
		default:
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		}
	})
}
