package port

import (
	"context"

	"digigrow-web/internal/core/domain"
)

// Credentials binds a backend view to a visitor session. Token supplies the
// bearer token attached to each request, and Unauthorized is the event
// emitted when the backend answers 401 for a request made with token.
type Credentials interface {
	Token() string
	Unauthorized(ctx context.Context, token string)
}

// Authenticator exchanges credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, email string, password string) (domain.LoginResult, error)
}

// BackendProvider hands out backend views bound to a session. A nil
// Credentials yields an anonymous view.
type BackendProvider interface {
	As(creds Credentials) Backend
}

// Backend is the REST contract of the agency backend. Every method returns
// a *domain.APIError-classified error on failure.
type Backend interface {
	Authenticator

	CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.Booking, error)
	ListBookings(ctx context.Context, page int, size int, status domain.BookingStatus) (domain.Page[domain.Booking], error)
	GetBooking(ctx context.Context, id int64) (domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus, notes string) (domain.Booking, error)
	BookingStats(ctx context.Context) (domain.BookingStats, error)

	DashboardStats(ctx context.Context) (domain.DashboardStats, error)

	ListServices(ctx context.Context) ([]domain.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (domain.Service, error)
	CreateService(ctx context.Context, svc domain.Service) (domain.Service, error)
	UpdateService(ctx context.Context, id int64, svc domain.Service) (domain.Service, error)

	ListCampaigns(ctx context.Context, page int, size int, filter domain.CampaignFilter) (domain.Page[domain.Campaign], error)
	GetCampaign(ctx context.Context, id int64) (domain.Campaign, error)
	CreateCampaign(ctx context.Context, req domain.CampaignRequest) (domain.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, id int64, status domain.CampaignStatus) (domain.Campaign, error)
	UpdateCampaignMetrics(ctx context.Context, id int64, m domain.MetricsUpdate) (domain.Campaign, error)
	CampaignStats(ctx context.Context) (domain.CampaignStats, error)

	ListTestimonials(ctx context.Context, featuredOnly bool) ([]domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, t domain.Testimonial) (domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id int64, t domain.Testimonial) (domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id int64) error

	SendContactMessage(ctx context.Context, req domain.ContactRequest) (domain.ContactMessage, error)
	ListContactMessages(ctx context.Context, page int, size int, unreadOnly bool) (domain.Page[domain.ContactMessage], error)
	MarkContactRead(ctx context.Context, id int64) (domain.ContactMessage, error)
	UnreadContactCount(ctx context.Context) (int64, error)

	// Subscribe returns the backend's confirmation message.
	Subscribe(ctx context.Context, req domain.NewsletterRequest) (string, error)
	Unsubscribe(ctx context.Context, email string) error
	SubscriberCount(ctx context.Context) (int64, error)
}
