package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"digigrow-web/internal/core/port"
)

const (
	defaultIdleTTL = 30 * time.Minute

	// restoreTimeout bounds the storage reads of one restoration.
	restoreTimeout = 10 * time.Second
)

// Manager owns every cached Session. It is created once in main and
// injected into the web handler.
type Manager struct {
	store   port.SessionStorage
	auth    port.Authenticator
	logger  *slog.Logger
	idleTTL time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	session  *Session
	lastUsed time.Time
}

// Option customises a Manager.
type Option func(*Manager)

// WithIdleTTL sets how long an unused session stays cached.
func WithIdleTTL(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.idleTTL = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(store port.SessionStorage, auth port.Authenticator, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		auth:     auth,
		logger:   logger,
		idleTTL:  defaultIdleTTL,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open returns the cached Session for id. A session seen for the first
// time starts restoring from storage in the background; the restore
// outlives the request that triggered it.
func (m *Manager) Open(ctx context.Context, id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.sessions[id]; ok {
		e.lastUsed = m.now()
		return e.session
	}
	s := newSession(id, m.store, m.auth, m.logger)
	s.changed = m.supersede
	m.sessions[id] = &entry{session: s, lastUsed: m.now()}

	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), restoreTimeout)
	go func() {
		defer cancel()
		s.Restore(rctx)
	}()
	return s
}

// Create mints a session with a new id. It has nothing to restore.
func (m *Manager) Create() *Session {
	s := newSession(uuid.NewString(), m.store, m.auth, m.logger)
	s.changed = m.supersede
	s.resolve(StateUnauthenticated, "", nil)

	m.mu.Lock()
	m.sessions[s.id] = &entry{session: s, lastUsed: m.now()}
	m.mu.Unlock()
	return s
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were evicted. Persisted keys are kept; an evicted session is restored
// again on its next request.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.idleTTL)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		if e.lastUsed.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// supersede drops the cached session for s.id when it is a different
// object than s. That happens when s was swept while a request still held
// it; the cached copy no longer matches storage and is restored again on
// its next request.
func (m *Manager) supersede(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.sessions[s.id]; ok && e.session != s {
		delete(m.sessions, s.id)
	}
}

// Run sweeps idle sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Sweep(); n > 0 {
				m.logger.Debug("evicted idle sessions", slog.Int("count", n))
			}
		}
	}
}

// Len returns the number of cached sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
