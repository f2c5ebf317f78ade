package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"digigrow-web/internal/core/domain"
)

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}

func idPath(resource string, id int64, rest ...string) string {
	p := "/" + resource + "/" + strconv.FormatInt(id, 10)
	for _, s := range rest {
		p += "/" + s
	}
	return p
}

func (c *Client) CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.Booking, error) {
	var b domain.Booking
	_, err := c.do(ctx, "create_booking", http.MethodPost, "/bookings", nil, req, &b)
	return b, err
}

// ListBookings fetches one page of bookings, newest first. An empty status
// lists every booking.
func (c *Client) ListBookings(ctx context.Context, page int, size int, status domain.BookingStatus) (domain.Page[domain.Booking], error) {
	q := pageQuery(page, size)
	if status != "" {
		q.Set("status", string(status))
	}
	var p domain.Page[domain.Booking]
	_, err := c.do(ctx, "list_bookings", http.MethodGet, "/bookings", q, nil, &p)
	return p, err
}

func (c *Client) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	var b domain.Booking
	_, err := c.do(ctx, "get_booking", http.MethodGet, idPath("bookings", id), nil, nil, &b)
	return b, err
}

// UpdateBookingStatus moves a booking to status. Notes are sent only when
// non-empty.
func (c *Client) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus, notes string) (domain.Booking, error) {
	q := url.Values{}
	q.Set("status", string(status))
	if notes != "" {
		q.Set("notes", notes)
	}
	var b domain.Booking
	_, err := c.do(ctx, "update_booking_status", http.MethodPatch, idPath("bookings", id, "status"), q, nil, &b)
	return b, err
}

func (c *Client) BookingStats(ctx context.Context) (domain.BookingStats, error) {
	var s domain.BookingStats
	_, err := c.do(ctx, "booking_stats", http.MethodGet, "/bookings/stats", nil, nil, &s)
	return s, err
}
