package configs

import (
	"net/url"
	"time"
)

// API configures the REST backend that owns bookings, campaigns and the
// rest of the agency data.
type API struct {
	// BaseURL is the API root every request path is joined onto.
	BaseURL url.URL `env:"BASE_URL" envDefault:"http://localhost:8080/api"`
	// Timeout is the fixed per-request deadline. A request exceeding it
	// fails with a transport error.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}
