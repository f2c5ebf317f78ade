package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"digigrow-web/internal/core/domain"
)

// ListServices returns the active services in display order.
func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	var s []domain.Service
	_, err := c.do(ctx, "list_services", http.MethodGet, "/services", nil, nil, &s)
	return s, err
}

func (c *Client) GetServiceBySlug(ctx context.Context, slug string) (domain.Service, error) {
	var s domain.Service
	_, err := c.do(ctx, "get_service", http.MethodGet, "/services/"+url.PathEscape(slug), nil, nil, &s)
	return s, err
}

func (c *Client) CreateService(ctx context.Context, svc domain.Service) (domain.Service, error) {
	var s domain.Service
	_, err := c.do(ctx, "create_service", http.MethodPost, "/services", nil, svc, &s)
	return s, err
}

func (c *Client) UpdateService(ctx context.Context, id int64, svc domain.Service) (domain.Service, error) {
	var s domain.Service
	_, err := c.do(ctx, "update_service", http.MethodPut, idPath("services", id), nil, svc, &s)
	return s, err
}

// ListTestimonials returns active testimonials, only featured ones when
// featuredOnly is set.
func (c *Client) ListTestimonials(ctx context.Context, featuredOnly bool) ([]domain.Testimonial, error) {
	q := url.Values{}
	q.Set("featuredOnly", strconv.FormatBool(featuredOnly))
	var t []domain.Testimonial
	_, err := c.do(ctx, "list_testimonials", http.MethodGet, "/testimonials", q, nil, &t)
	return t, err
}

func (c *Client) CreateTestimonial(ctx context.Context, t domain.Testimonial) (domain.Testimonial, error) {
	var out domain.Testimonial
	_, err := c.do(ctx, "create_testimonial", http.MethodPost, "/testimonials", nil, t, &out)
	return out, err
}

func (c *Client) UpdateTestimonial(ctx context.Context, id int64, t domain.Testimonial) (domain.Testimonial, error) {
	var out domain.Testimonial
	_, err := c.do(ctx, "update_testimonial", http.MethodPut, idPath("testimonials", id), nil, t, &out)
	return out, err
}

func (c *Client) DeleteTestimonial(ctx context.Context, id int64) error {
	_, err := c.do(ctx, "delete_testimonial", http.MethodDelete, idPath("testimonials", id), nil, nil, nil)
	return err
}
