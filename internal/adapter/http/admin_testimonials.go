package httpadapter

import (
	"net/http"
	"strconv"

	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/session"
)

// testimonialForm is the create form or one row's edit form. ID is zero
// for the create form.
type testimonialForm struct {
	ID     int64
	Values domain.Testimonial
	Errors domain.FieldErrors
}

type testimonialsData struct {
	Rows []domain.Testimonial
	Form testimonialForm
}

func (h *Handler) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	h.renderTestimonials(w, r, http.StatusOK, testimonialForm{Values: domain.Testimonial{Rating: 5, Active: true}}, nil)
}

func parseTestimonial(r *http.Request) (domain.Testimonial, domain.FieldErrors) {
	errs := domain.FieldErrors{}
	t := domain.Testimonial{
		AuthorName:     formValue(r, "authorName"),
		AuthorRole:     formValue(r, "authorRole"),
		CompanyName:    formValue(r, "companyName"),
		Content:        formValue(r, "content"),
		Rating:         formInt(r, "rating", errs, "Rating must be between 1 and 5"),
		AvatarInitials: formValue(r, "avatarInitials"),
		Featured:       formBool(r, "featured"),
		Active:         formBool(r, "active"),
		DisplayOrder:   formInt(r, "displayOrder", errs, "Enter a whole number"),
	}
	if err := t.Validate(); err != nil {
		for k, v := range fieldErrors(err) {
			if _, ok := errs[k]; !ok {
				errs[k] = v
			}
		}
	}
	return t, errs
}

func (h *Handler) handleCreateTestimonial(w http.ResponseWriter, r *http.Request) {
	t, errs := parseTestimonial(r)
	if len(errs) > 0 {
		h.renderTestimonials(w, r, http.StatusUnprocessableEntity, testimonialForm{Values: t, Errors: errs}, nil)
		return
	}
	if _, err := h.backendFor(r).CreateTestimonial(r.Context(), t); err != nil {
		h.failRedirect(w, r, err, "/admin/testimonials")
		return
	}
	h.successRedirect(w, r, "Testimonial added", "/admin/testimonials")
}

func (h *Handler) handleUpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.flashRedirect(w, r, session.FlashError, "Unknown testimonial", "/admin/testimonials")
		return
	}
	t, errs := parseTestimonial(r)
	if len(errs) > 0 {
		t.ID = id
		h.renderTestimonials(w, r, http.StatusUnprocessableEntity, testimonialForm{ID: id, Values: t, Errors: errs}, nil)
		return
	}
	if _, err := h.backendFor(r).UpdateTestimonial(r.Context(), id, t); err != nil {
		h.failRedirect(w, r, err, "/admin/testimonials")
		return
	}
	h.successRedirect(w, r, "Testimonial #"+strconv.FormatInt(id, 10)+" saved", "/admin/testimonials")
}

func (h *Handler) handleDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.flashRedirect(w, r, session.FlashError, "Unknown testimonial", "/admin/testimonials")
		return
	}
	if err := h.backendFor(r).DeleteTestimonial(r.Context(), id); err != nil {
		h.failRedirect(w, r, err, "/admin/testimonials")
		return
	}
	h.successRedirect(w, r, "Testimonial deleted", "/admin/testimonials")
}

func (h *Handler) renderTestimonials(w http.ResponseWriter, r *http.Request, status int, form testimonialForm, flash *session.Flash) {
	rows, err := h.backendFor(r).ListTestimonials(r.Context(), false)
	if h.expired(w, r, err) {
		return
	}
	if err != nil {
		flash = h.errorFlash(r, err, "Could not load testimonials.")
	}
	h.render(w, r, status, "admin_testimonials.html", pageData{
		Title: "Testimonials",
		Nav:   "testimonials",
		Flash: flash,
		Data:  testimonialsData{Rows: rows, Form: form},
	})
}
