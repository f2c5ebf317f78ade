package configs

import "time"

// HTTP defines configuration for the web server. Port selects the TCP port
// to bind; the timeouts guard slow clients and bound graceful shutdown.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 3000.
	Port uint16 `env:"PORT" envDefault:"3000"`
	// ReadHeaderTimeout limits how long the server waits for request headers.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	// ShutdownTimeout limits how long in-flight requests may run after a
	// termination signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
