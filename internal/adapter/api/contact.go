package api

import (
	"context"
	"net/http"
	"strconv"

	"digigrow-web/internal/core/domain"
)

func (c *Client) SendContactMessage(ctx context.Context, req domain.ContactRequest) (domain.ContactMessage, error) {
	var m domain.ContactMessage
	_, err := c.do(ctx, "send_contact", http.MethodPost, "/contact", nil, req, &m)
	return m, err
}

func (c *Client) ListContactMessages(ctx context.Context, page int, size int, unreadOnly bool) (domain.Page[domain.ContactMessage], error) {
	q := pageQuery(page, size)
	q.Set("unreadOnly", strconv.FormatBool(unreadOnly))
	var p domain.Page[domain.ContactMessage]
	_, err := c.do(ctx, "list_contact", http.MethodGet, "/contact", q, nil, &p)
	return p, err
}

func (c *Client) MarkContactRead(ctx context.Context, id int64) (domain.ContactMessage, error) {
	var m domain.ContactMessage
	_, err := c.do(ctx, "mark_contact_read", http.MethodPatch, idPath("contact", id, "read"), nil, nil, &m)
	return m, err
}

func (c *Client) UnreadContactCount(ctx context.Context) (int64, error) {
	var n int64
	_, err := c.do(ctx, "unread_contact_count", http.MethodGet, "/contact/unread-count", nil, nil, &n)
	return n, err
}
