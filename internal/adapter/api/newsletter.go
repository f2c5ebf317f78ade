package api

import (
	"context"
	"net/http"

	"digigrow-web/internal/core/domain"
)

// Subscribe adds an address to the newsletter. The backend answers
// "Already subscribed!" for a known address, which is not an error.
func (c *Client) Subscribe(ctx context.Context, req domain.NewsletterRequest) (string, error) {
	return c.do(ctx, "subscribe", http.MethodPost, "/newsletter/subscribe", nil, req, nil)
}

func (c *Client) Unsubscribe(ctx context.Context, email string) error {
	_, err := c.do(ctx, "unsubscribe", http.MethodPost, "/newsletter/unsubscribe", nil, domain.NewsletterRequest{Email: email}, nil)
	return err
}

func (c *Client) SubscriberCount(ctx context.Context) (int64, error) {
	var n int64
	_, err := c.do(ctx, "subscriber_count", http.MethodGet, "/newsletter/count", nil, nil, &n)
	return n, err
}
