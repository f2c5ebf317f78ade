package httpadapter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/listview"
	"digigrow-web/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// mdRenderer renders service descriptions. Raw HTML in the input is
// escaped because WithUnsafe is not set.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var printer = message.NewPrinter(language.English)

// pageData is the view model every layout renders.
type pageData struct {
	Title string
	// Nav marks the active navigation entry.
	Nav   string
	User  *domain.User
	Flash *session.Flash
	CSRF  template.HTML
	Data  any
}

type renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"label": func(v any) string { return domain.Label(fmt.Sprint(v)) },
	"date": func(t domain.Timestamp) string {
		if t.IsZero() {
			return "—"
		}
		return t.Format("02 Jan 2006")
	},
	"money":  func(v float64) string { return printer.Sprintf("₹%.0f", v) },
	"number": func(v int64) string { return printer.Sprintf("%d", v) },
	"ctr":    func(c domain.Campaign) string { return fmt.Sprintf("%.2f%%", c.CTR()) },
	"markdown": func(md string) template.HTML {
		var buf bytes.Buffer
		if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
			return template.HTML(template.HTMLEscapeString(md))
		}
		return template.HTML(buf.String())
	},
	"add":   func(a, b int) int { return a + b },
	"stars": func(n int) string { return strings.Repeat("★", max(0, min(n, 5))) },
	"join":  strings.Join,
}

// newRenderer parses every page with its layout and the shared partials.
// Pages prefixed public_ use the site layout, admin_ the panel layout and
// the rest a bare layout.
func newRenderer() (*renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		name := path.Base(file)
		if strings.HasPrefix(name, "layout_") || name == "partials.html" {
			continue
		}
		layout := "templates/layout_bare.html"
		switch {
		case strings.HasPrefix(name, "public_"):
			layout = "templates/layout_public.html"
		case strings.HasPrefix(name, "admin_"):
			layout = "templates/layout_admin.html"
		}
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layout, "templates/partials.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// render executes page into a buffer first so a template error never
// produces a half-written response. The session's user and pending flash
// are filled in unless the caller set a flash already.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	t, ok := h.views.pages[page]
	if !ok {
		h.logger.ErrorContext(r.Context(), "unknown template", slog.String("page", page))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if sess, ok := session.FromContext(r.Context()); ok {
		data.User = sess.User()
		if data.Flash == nil && page != "loading.html" {
			if f, ok := sess.PopFlash(r.Context()); ok {
				data.Flash = &f
			}
		}
	}
	data.CSRF = csrf.TemplateField(r)

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.ErrorContext(r.Context(), "render error", slog.String("page", page), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.DebugContext(r.Context(), "write response", slog.Any("error", err))
	}
}

// pager renders the pagination controls of a list view.
type pager struct {
	Path       string
	Query      url.Values
	Page       int
	TotalPages int
	Show       bool
	HasPrev    bool
	HasNext    bool
}

func newPager[F comparable, T any](p string, query url.Values, s listview.Snapshot[F, T]) pager {
	return pager{
		Path:       p,
		Query:      query,
		Page:       s.Page,
		TotalPages: s.TotalPages,
		Show:       s.ShowPagination(),
		HasPrev:    s.HasPrev(),
		HasNext:    s.HasNext(),
	}
}

// URL links to page n, keeping the filter parameters.
func (p pager) URL(n int) string {
	q := url.Values{}
	for k, v := range p.Query {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(n))
	return p.Path + "?" + q.Encode()
}

func (p pager) Display() int { return p.Page + 1 }
