package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"

	"digigrow-web/internal/core/port"
	"digigrow-web/internal/session"
)

// Options tune cookie, CSRF and restoration behaviour.
type Options struct {
	// CookieName names the session cookie.
	CookieName string
	// SecureCookie marks cookies Secure and keeps CSRF origin checks strict.
	SecureCookie bool
	// RestoreWait bounds how long a guarded request waits for restoration.
	RestoreWait time.Duration
	// CSRFKey signs CSRF tokens. Empty disables CSRF protection.
	CSRFKey []byte
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP serving the public site and the admin panel. Backend calls go
// through a view bound to the visitor's session so 401 responses reach the
// session that made them.
type Handler struct {
	backend  port.BackendProvider
	sessions *session.Manager
	logger   *slog.Logger
	opts     Options
	views    *renderer
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(backend port.BackendProvider, sessions *session.Manager, logger *slog.Logger, opts Options) (*Handler, error) {
	if opts.CookieName == "" {
		opts.CookieName = "digigrow_session"
	}
	if opts.RestoreWait <= 0 {
		opts.RestoreWait = 2 * time.Second
	}
	views, err := newRenderer()
	if err != nil {
		return nil, err
	}
	h := &Handler{backend: backend, sessions: sessions, logger: logger, opts: opts, views: views}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(h.loadSession)
		if len(opts.CSRFKey) > 0 {
			r.Use(h.csrf())
		}

		r.Get("/", h.handleHome)
		r.Get("/book", h.handleBookPage)
		r.Post("/bookings", h.handleCreateBooking)
		r.Get("/contact", h.handleContactPage)
		r.Post("/contact", h.handleSendContact)
		r.Post("/newsletter/subscribe", h.handleSubscribe)
		r.Post("/newsletter/unsubscribe", h.handleUnsubscribe)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/login", h.handleLoginPage)
			r.Post("/login", h.handleLogin)
			r.Post("/logout", h.handleLogout)

			r.Group(func(r chi.Router) {
				r.Use(h.requireAuth)

				r.Get("/", h.redirectTo("/admin/dashboard"))
				r.Get("/dashboard", h.handleDashboard)

				r.Get("/bookings", h.handleBookings)
				r.Post("/bookings/{id}/status", h.handleBookingStatus)

				r.Get("/campaigns", h.handleCampaigns)
				r.Post("/campaigns", h.handleCreateCampaign)
				r.Post("/campaigns/{id}/status", h.handleCampaignStatus)
				r.Post("/campaigns/{id}/metrics", h.handleCampaignMetrics)

				r.Get("/messages", h.handleMessages)
				r.Post("/messages/{id}/read", h.handleMarkRead)

				r.Get("/testimonials", h.handleTestimonials)
				r.Post("/testimonials", h.handleCreateTestimonial)
				r.Post("/testimonials/{id}", h.handleUpdateTestimonial)
				r.Post("/testimonials/{id}/delete", h.handleDeleteTestimonial)

				r.Get("/services", h.handleServices)
				r.Post("/services", h.handleCreateService)
				r.Post("/services/{id}", h.handleUpdateService)
			})
		})
	})

	r.NotFound(h.redirectTo("/"))
	h.router = r
	return h, nil
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) csrf() func(http.Handler) http.Handler {
	protect := csrf.Protect(h.opts.CSRFKey,
		csrf.Secure(h.opts.SecureCookie),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
	)
	if h.opts.SecureCookie {
		return protect
	}
	// Over plain HTTP the origin check must not assume https.
	return func(next http.Handler) http.Handler {
		protected := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

// backendFor returns the backend view bound to the request's session.
func (h *Handler) backendFor(r *http.Request) port.Backend {
	if s, ok := session.FromContext(r.Context()); ok {
		return h.backend.As(s)
	}
	return h.backend.As(nil)
}
