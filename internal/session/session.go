package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/core/port"
)

// Storage keys. The token and the user are present together or absent
// together.
const (
	TokenKey = "digigrow_token"
	UserKey  = "digigrow_user"
	FlashKey = "digigrow_flash"
)

// State is the authentication state of a session.
type State int

const (
	StateRestoring State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

var _ port.Credentials = (*Session)(nil)

// Session owns one visitor's authentication state and the per-page values
// (list views) that live as long as it does. It implements
// port.Credentials so backend views bound to it report 401s back here.
type Session struct {
	id     string
	store  port.SessionStorage
	auth   port.Authenticator
	logger *slog.Logger

	// op serialises operations that touch storage.
	op sync.Mutex

	mu     sync.RWMutex
	state  State
	token  string
	user   *domain.User
	values map[string]any

	restored     chan struct{}
	restoredOnce sync.Once

	// changed runs after a sign-in or sign-out has been persisted.
	changed func(*Session)
}

func newSession(id string, store port.SessionStorage, auth port.Authenticator, logger *slog.Logger) *Session {
	return &Session{
		id:       id,
		store:    store,
		auth:     auth,
		logger:   logger.With(slog.String("session", id)),
		state:    StateRestoring,
		values:   make(map[string]any),
		restored: make(chan struct{}),
	}
}

// ID returns the session id carried by the visitor's cookie.
func (s *Session) ID() string { return s.id }

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) Authenticated() bool { return s.State() == StateAuthenticated }

// Token returns the bearer token, empty when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Wait blocks until restoration finishes, d elapses or ctx is done, and
// returns the state at that point.
func (s *Session) Wait(ctx context.Context, d time.Duration) State {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-s.restored:
	case <-t.C:
	case <-ctx.Done():
	}
	return s.State()
}

// Restore reads both storage keys once. Concurrent and later callers wait
// for that single restoration and observe its result.
func (s *Session) Restore(ctx context.Context) State {
	s.op.Lock()
	if s.State() == StateRestoring {
		s.restore(ctx)
	}
	s.op.Unlock()
	return s.State()
}

// restore must be called with op held.
func (s *Session) restore(ctx context.Context) {
	token, hasToken, err := s.store.Get(ctx, s.id, TokenKey)
	if err != nil {
		s.logger.ErrorContext(ctx, "restore session", slog.Any("error", err))
		s.resolve(StateUnauthenticated, "", nil)
		return
	}
	raw, hasUser, err := s.store.Get(ctx, s.id, UserKey)
	if err != nil {
		s.logger.ErrorContext(ctx, "restore session", slog.Any("error", err))
		s.resolve(StateUnauthenticated, "", nil)
		return
	}

	if !hasToken && !hasUser {
		s.resolve(StateUnauthenticated, "", nil)
		return
	}

	var user domain.User
	if hasToken && hasUser && token != "" && json.Unmarshal([]byte(raw), &user) == nil {
		s.resolve(StateAuthenticated, token, &user)
		return
	}

	s.logger.WarnContext(ctx, "inconsistent session keys cleared",
		slog.Bool("token", hasToken), slog.Bool("user", hasUser))
	if err = s.store.Delete(ctx, s.id, []string{TokenKey, UserKey}); err != nil {
		s.logger.ErrorContext(ctx, "clear session keys", slog.Any("error", err))
	}
	s.resolve(StateUnauthenticated, "", nil)
}

// resolve sets the in-memory state and releases restoration waiters.
func (s *Session) resolve(state State, token string, user *domain.User) {
	s.mu.Lock()
	s.state = state
	s.token = token
	s.user = user
	s.mu.Unlock()
	s.restoredOnce.Do(func() { close(s.restored) })
}

// Login exchanges credentials for a token and persists it. Any failure is
// an Authentication error and leaves the prior state untouched.
func (s *Session) Login(ctx context.Context, email, password string) (domain.User, error) {
	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return domain.User{}, domain.NewAPIError(domain.KindAuthentication, 0, "invalid credentials", err)
	}
	if res.Token == "" {
		return domain.User{}, domain.NewAPIError(domain.KindAuthentication, 0, "login response carried no token", nil)
	}
	raw, err := json.Marshal(res.User)
	if err != nil {
		return domain.User{}, domain.NewAPIError(domain.KindAuthentication, 0, "encode user", err)
	}

	s.op.Lock()
	defer s.op.Unlock()

	prev, hadPrev, err := s.store.Get(ctx, s.id, TokenKey)
	if err != nil {
		return domain.User{}, domain.NewAPIError(domain.KindAuthentication, 0, "read session", err)
	}
	if err = s.store.Set(ctx, s.id, TokenKey, res.Token); err != nil {
		return domain.User{}, domain.NewAPIError(domain.KindAuthentication, 0, "persist session", err)
	}
	if err = s.store.Set(ctx, s.id, UserKey, string(raw)); err != nil {
		s.rollbackToken(ctx, prev, hadPrev)
		return domain.User{}, domain.NewAPIError(domain.KindAuthentication, 0, "persist session", err)
	}

	user := res.User
	s.resolve(StateAuthenticated, res.Token, &user)
	s.notifyChanged()
	s.logger.InfoContext(ctx, "admin signed in", slog.String("email", user.Email))
	return user, nil
}

func (s *Session) rollbackToken(ctx context.Context, prev string, hadPrev bool) {
	var err error
	if hadPrev {
		err = s.store.Set(ctx, s.id, TokenKey, prev)
	} else {
		err = s.store.Delete(ctx, s.id, []string{TokenKey})
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "roll back session token", slog.Any("error", err))
	}
}

// Logout clears both keys, the in-memory user and the page values. It
// never fails; storage errors are logged.
func (s *Session) Logout(ctx context.Context) {
	s.op.Lock()
	defer s.op.Unlock()
	s.clear(ctx)
}

// Unauthorized handles a 401 received for a request made with token. The
// session is cleared only while token is still current, so repeated 401s
// for one expired token clear it once.
func (s *Session) Unauthorized(ctx context.Context, token string) {
	s.op.Lock()
	defer s.op.Unlock()
	if token == "" || s.Token() != token {
		return
	}
	s.logger.InfoContext(ctx, "session expired")
	s.clear(ctx)
}

// clear must be called with op held.
func (s *Session) clear(ctx context.Context) {
	if err := s.store.Delete(ctx, s.id, []string{TokenKey, UserKey}); err != nil {
		s.logger.ErrorContext(ctx, "clear session keys", slog.Any("error", err))
	}
	s.mu.Lock()
	s.values = make(map[string]any)
	s.mu.Unlock()
	s.resolve(StateUnauthenticated, "", nil)
	s.notifyChanged()
}

func (s *Session) notifyChanged() {
	if s.changed != nil {
		s.changed(s)
	}
}

// Value returns the page value stored under key, creating it with init on
// first use.
func (s *Session) Value(key string, init func() any) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		v = init()
		s.values[key] = v
	}
	return v
}
