package httpadapter

import (
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/session"
)

// bookingForm is the view model of the consultation form.
type bookingForm struct {
	Values   domain.BookingRequest
	Errors   domain.FieldErrors
	Services []domain.Option
	Budgets  []domain.Option
}

func newBookingForm(v domain.BookingRequest, errs domain.FieldErrors) bookingForm {
	return bookingForm{Values: v, Errors: errs, Services: domain.ServiceTypes, Budgets: domain.BudgetBands}
}

type contactForm struct {
	Values domain.ContactRequest
	Errors domain.FieldErrors
}

type homeData struct {
	Services     []domain.Service
	Testimonials []domain.Testimonial
	Platforms    []domain.Platform
	Booking      bookingForm
	Contact      contactForm
}

// handleHome renders the landing page. Services and testimonials fall back
// to the built-in lists when the backend fails or has none, without telling
// the visitor.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	api := h.backend.As(nil)
	data := homeData{
		Services:     fallbackServices,
		Testimonials: fallbackTestimonials,
		Platforms:    domain.Platforms,
		Booking:      newBookingForm(domain.BookingRequest{}, nil),
	}

	var g errgroup.Group
	g.Go(func() error {
		services, err := api.ListServices(ctx)
		if err != nil {
			h.logger.DebugContext(ctx, "services fallback", slog.Any("error", err))
			return nil
		}
		if len(services) > 0 {
			data.Services = services
		}
		return nil
	})
	g.Go(func() error {
		testimonials, err := api.ListTestimonials(ctx, true)
		if err != nil {
			h.logger.DebugContext(ctx, "testimonials fallback", slog.Any("error", err))
			return nil
		}
		if len(testimonials) > 0 {
			data.Testimonials = testimonials
		}
		return nil
	})
	_ = g.Wait()

	h.render(w, r, http.StatusOK, "public_home.html", pageData{Title: "DigiGrow | Digital Marketing Agency", Nav: "home", Data: data})
}

func (h *Handler) handleBookPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "public_book.html", pageData{
		Title: "Book a Free Consultation",
		Nav:   "book",
		Data:  newBookingForm(domain.BookingRequest{ServiceType: r.URL.Query().Get("service")}, nil),
	})
}

// handleCreateBooking validates the consultation form locally and submits
// it once. Invalid input is re-rendered with inline errors and never
// reaches the backend.
func (h *Handler) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	req := domain.BookingRequest{
		FullName:      formValue(r, "fullName"),
		Phone:         formValue(r, "phone"),
		Email:         formValue(r, "email"),
		BusinessName:  formValue(r, "businessName"),
		ServiceType:   formValue(r, "serviceType"),
		MonthlyBudget: formValue(r, "monthlyBudget"),
		City:          formValue(r, "city"),
		Message:       formValue(r, "message"),
	}
	if err := req.Validate(); err != nil {
		h.render(w, r, http.StatusUnprocessableEntity, "public_book.html", pageData{
			Title: "Book a Free Consultation",
			Nav:   "book",
			Data:  newBookingForm(req, fieldErrors(err)),
		})
		return
	}

	booking, err := h.backend.As(nil).CreateBooking(r.Context(), req)
	if err != nil {
		h.render(w, r, http.StatusOK, "public_book.html", pageData{
			Title: "Book a Free Consultation",
			Nav:   "book",
			Flash: h.errorFlash(r, err, "Could not submit your booking. Please try again."),
			Data:  newBookingForm(req, nil),
		})
		return
	}
	if booking.FullName == "" {
		booking.FullName = req.FullName
	}
	if booking.Email == "" {
		booking.Email = req.Email
	}
	h.render(w, r, http.StatusOK, "public_booked.html", pageData{Title: "Booking Confirmed", Nav: "book", Data: booking})
}

func (h *Handler) handleContactPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "public_contact.html", pageData{Title: "Contact Us", Nav: "contact", Data: contactForm{}})
}

func (h *Handler) handleSendContact(w http.ResponseWriter, r *http.Request) {
	req := domain.ContactRequest{
		FullName: formValue(r, "fullName"),
		Email:    formValue(r, "email"),
		Phone:    formValue(r, "phone"),
		Subject:  formValue(r, "subject"),
		Message:  formValue(r, "message"),
	}
	if err := req.Validate(); err != nil {
		h.render(w, r, http.StatusUnprocessableEntity, "public_contact.html", pageData{
			Title: "Contact Us",
			Nav:   "contact",
			Data:  contactForm{Values: req, Errors: fieldErrors(err)},
		})
		return
	}
	if _, err := h.backend.As(nil).SendContactMessage(r.Context(), req); err != nil {
		h.render(w, r, http.StatusOK, "public_contact.html", pageData{
			Title: "Contact Us",
			Nav:   "contact",
			Flash: h.errorFlash(r, err, "Could not send your message. Please try again."),
			Data:  contactForm{Values: req},
		})
		return
	}
	h.successRedirect(w, r, "Message sent! We'll get back to you soon.", "/")
}

func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	req := domain.NewsletterRequest{Email: formValue(r, "email"), Name: formValue(r, "name")}
	if err := req.Validate(); err != nil {
		h.flashRedirect(w, r, session.FlashError, fieldErrors(err)["email"], "/#newsletter")
		return
	}
	msg, err := h.backend.As(nil).Subscribe(r.Context(), req)
	if err != nil {
		h.flashRedirect(w, r, session.FlashError, domain.UserMessage(err, "Could not subscribe. Please try again."), "/#newsletter")
		return
	}
	if msg == "" {
		msg = "Subscribed successfully!"
	}
	h.successRedirect(w, r, msg, "/#newsletter")
}

func (h *Handler) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	req := domain.NewsletterRequest{Email: formValue(r, "email")}
	if err := req.Validate(); err != nil {
		h.flashRedirect(w, r, session.FlashError, fieldErrors(err)["email"], "/#newsletter")
		return
	}
	if err := h.backend.As(nil).Unsubscribe(r.Context(), req.Email); err != nil {
		h.flashRedirect(w, r, session.FlashError, domain.UserMessage(err, "Could not unsubscribe. Please try again."), "/#newsletter")
		return
	}
	h.successRedirect(w, r, "You have been unsubscribed.", "/#newsletter")
}

func (h *Handler) flashRedirect(w http.ResponseWriter, r *http.Request, kind, msg, target string) {
	if sess, ok := session.FromContext(r.Context()); ok {
		sess.SetFlash(r.Context(), session.Flash{Kind: kind, Message: msg})
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
