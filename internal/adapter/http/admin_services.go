package httpadapter

import (
	"net/http"
	"strings"

	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/session"
)

type serviceForm struct {
	ID     int64
	Values domain.Service
	Errors domain.FieldErrors
}

// Features renders the feature list back into the textarea.
func (f serviceForm) Features() string {
	return strings.Join(f.Values.Features, "\n")
}

type servicesData struct {
	Rows []domain.Service
	Form serviceForm
}

func (h *Handler) handleServices(w http.ResponseWriter, r *http.Request) {
	h.renderServices(w, r, http.StatusOK, serviceForm{Values: domain.Service{Active: true}})
}

func parseService(r *http.Request) (domain.Service, domain.FieldErrors) {
	errs := domain.FieldErrors{}
	s := domain.Service{
		Name:              formValue(r, "name"),
		Slug:              formValue(r, "slug"),
		Icon:              formValue(r, "icon"),
		ShortDescription:  formValue(r, "shortDescription"),
		Description:       formValue(r, "description"),
		Features:          lines(r.PostFormValue("features")),
		PriceStartingFrom: formFloat(r, "priceStartingFrom", errs, "Enter a number"),
		DisplayOrder:      formInt(r, "displayOrder", errs, "Enter a whole number"),
		Active:            formBool(r, "active"),
	}
	if err := s.Validate(); err != nil {
		for k, v := range fieldErrors(err) {
			if _, ok := errs[k]; !ok {
				errs[k] = v
			}
		}
	}
	return s, errs
}

func (h *Handler) handleCreateService(w http.ResponseWriter, r *http.Request) {
	s, errs := parseService(r)
	if len(errs) > 0 {
		h.renderServices(w, r, http.StatusUnprocessableEntity, serviceForm{Values: s, Errors: errs})
		return
	}
	if _, err := h.backendFor(r).CreateService(r.Context(), s); err != nil {
		h.failRedirect(w, r, err, "/admin/services")
		return
	}
	h.successRedirect(w, r, "Service "+s.Name+" created", "/admin/services")
}

func (h *Handler) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.flashRedirect(w, r, session.FlashError, "Unknown service", "/admin/services")
		return
	}
	s, errs := parseService(r)
	if len(errs) > 0 {
		s.ID = id
		h.renderServices(w, r, http.StatusUnprocessableEntity, serviceForm{ID: id, Values: s, Errors: errs})
		return
	}
	if _, err := h.backendFor(r).UpdateService(r.Context(), id, s); err != nil {
		h.failRedirect(w, r, err, "/admin/services")
		return
	}
	h.successRedirect(w, r, "Service "+s.Name+" saved", "/admin/services")
}

func (h *Handler) renderServices(w http.ResponseWriter, r *http.Request, status int, form serviceForm) {
	rows, err := h.backendFor(r).ListServices(r.Context())
	if h.expired(w, r, err) {
		return
	}
	var flash *session.Flash
	if err != nil {
		flash = h.errorFlash(r, err, "Could not load services.")
	}
	h.render(w, r, status, "admin_services.html", pageData{
		Title: "Services",
		Nav:   "services",
		Flash: flash,
		Data:  servicesData{Rows: rows, Form: form},
	})
}
