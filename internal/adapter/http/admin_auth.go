package httpadapter

import (
	"log/slog"
	"net/http"

	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/session"
)

type loginForm struct {
	Email  string
	Errors domain.FieldErrors
}

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok && sess.Wait(r.Context(), h.opts.RestoreWait) == session.StateAuthenticated {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "login.html", pageData{Title: "Admin Login", Data: loginForm{}})
}

// handleLogin signs the session in. Any failure, including a backend
// answering success=false, is reported as invalid credentials.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	creds := domain.Credentials{Email: formValue(r, "email"), Password: r.PostFormValue("password")}
	if err := creds.Validate(); err != nil {
		h.render(w, r, http.StatusUnprocessableEntity, "login.html", pageData{
			Title: "Admin Login",
			Data:  loginForm{Email: creds.Email, Errors: fieldErrors(err)},
		})
		return
	}

	if _, err := sess.Login(r.Context(), creds.Email, creds.Password); err != nil {
		h.logger.InfoContext(r.Context(), "admin login failed", slog.String("email", creds.Email), slog.Any("error", err))
		h.render(w, r, http.StatusUnauthorized, "login.html", pageData{
			Title: "Admin Login",
			Flash: &session.Flash{Kind: session.FlashError, Message: "Invalid credentials"},
			Data:  loginForm{Email: creds.Email},
		})
		return
	}
	h.successRedirect(w, r, "Welcome back!", "/admin/dashboard")
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok {
		sess.Logout(r.Context())
	}
	h.successRedirect(w, r, "Logged out", "/admin/login")
}
