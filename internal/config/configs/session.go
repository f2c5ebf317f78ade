package configs

import "time"

// Session store kinds accepted by Session.Store.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Session configures visitor sessions: where their keys are persisted, the
// cookie that identifies them and how long restoration may block a request.
type Session struct {
	// Store selects the SessionStorage adapter: "memory" or "postgres".
	Store string `env:"STORE" envDefault:"memory"`
	// CookieName names the cookie carrying the session id.
	CookieName string `env:"COOKIE_NAME" envDefault:"digigrow_session"`
	// SecureCookie marks cookies Secure and enables strict origin checks
	// for CSRF. Enable when served over TLS.
	SecureCookie bool `env:"SECURE_COOKIE" envDefault:"false"`
	// IdleTTL evicts cached sessions that have not been used for this long.
	IdleTTL time.Duration `env:"IDLE_TTL" envDefault:"30m"`
	// RestoreWait bounds how long a request waits for restoration before
	// the guard renders the loading placeholder.
	RestoreWait time.Duration `env:"RESTORE_WAIT" envDefault:"2s"`
	// Retention is how long persisted session keys survive without being
	// written. Only the postgres store is purged.
	Retention time.Duration `env:"RETENTION" envDefault:"720h"`
	// CSRFKey is the 32-byte key used to sign CSRF tokens. When empty a
	// random key is generated at startup.
	CSRFKey string `env:"CSRF_KEY"`
}
