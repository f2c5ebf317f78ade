package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"digigrow-web/internal/adapter/memory"
	"digigrow-web/internal/core/domain"
	"digigrow-web/internal/core/port/mocks"
	"digigrow-web/internal/session"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func restored(t *testing.T, m *session.Manager, id string) *session.Session {
	t.Helper()
	s := m.Open(context.Background(), id)
	require.NotEqual(t, session.StateRestoring, s.Wait(context.Background(), time.Second))
	return s
}

func get(t *testing.T, store *memory.SessionStorage, id, key string) (string, bool) {
	t.Helper()
	v, ok, err := store.Get(context.Background(), id, key)
	require.NoError(t, err)
	return v, ok
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStorage()
	auth := mocks.NewMockAuthenticator(t)
	auth.EXPECT().Login(mock.Anything, "admin@digigrow.agency", "secret").
		Return(domain.LoginResult{Token: "jwt", User: domain.User{Email: "admin@digigrow.agency", TokenType: "Bearer"}}, nil).
		Once()

	m := session.NewManager(store, auth, discard)
	s := restored(t, m, "sid")
	require.Equal(t, session.StateUnauthenticated, s.State())

	user, err := s.Login(ctx, "admin@digigrow.agency", "secret")
	require.NoError(t, err)

	assert.Equal(t, "admin@digigrow.agency", user.Email)
	assert.True(t, s.Authenticated())
	assert.Equal(t, "jwt", s.Token())

	token, ok := get(t, store, "sid", session.TokenKey)
	assert.True(t, ok)
	assert.Equal(t, "jwt", token)
	raw, ok := get(t, store, "sid", session.UserKey)
	assert.True(t, ok)
	assert.JSONEq(t, `{"email":"admin@digigrow.agency","tokenType":"Bearer"}`, raw)
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	tests := []struct {
		name   string
		result domain.LoginResult
		err    error
	}{
		{name: "failure flag", err: domain.BackendError(domain.KindUnknown, 200, "Invalid credentials")},
		{name: "missing token", result: domain.LoginResult{User: domain.User{Email: "a@b.co"}}},
		{name: "transport", err: domain.NewAPIError(domain.KindTransport, 0, "request timed out", context.DeadlineExceeded)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.NewSessionStorage()
			auth := mocks.NewMockAuthenticator(t)
			auth.EXPECT().Login(mock.Anything, "a@b.co", "old").
				Return(domain.LoginResult{Token: "first", User: domain.User{Email: "a@b.co"}}, nil).Once()
			auth.EXPECT().Login(mock.Anything, "a@b.co", "wrong").Return(tt.result, tt.err).Once()

			s := restored(t, session.NewManager(store, auth, discard), "sid")
			_, err := s.Login(ctx, "a@b.co", "old")
			require.NoError(t, err)

			_, err = s.Login(ctx, "a@b.co", "wrong")
			require.ErrorIs(t, err, domain.ErrAuthentication)

			assert.True(t, s.Authenticated())
			assert.Equal(t, "first", s.Token())
			token, _ := get(t, store, "sid", session.TokenKey)
			assert.Equal(t, "first", token)
		})
	}
}

func TestLogin_FailureFromAnonymous(t *testing.T) {
	store := memory.NewSessionStorage()
	auth := mocks.NewMockAuthenticator(t)
	auth.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.LoginResult{}, domain.BackendError(domain.KindAuthentication, 401, "Invalid credentials"))

	s := restored(t, session.NewManager(store, auth, discard), "sid")
	_, err := s.Login(context.Background(), "admin@digigrow.agency", "wrong")

	require.ErrorIs(t, err, domain.ErrAuthentication)
	assert.Equal(t, "Invalid credentials", domain.UserMessage(err, "fallback"))
	assert.Equal(t, session.StateUnauthenticated, s.State())
	assert.Equal(t, 0, store.Len())
}

func TestLogin_RollsBackTokenWhenUserWriteFails(t *testing.T) {
	store := mocks.NewMockSessionStorage(t)
	auth := mocks.NewMockAuthenticator(t)
	auth.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.LoginResult{Token: "jwt", User: domain.User{Email: "a@b.co"}}, nil)

	store.EXPECT().Get(mock.Anything, "sid", session.TokenKey).Return("", false, nil)
	store.EXPECT().Get(mock.Anything, "sid", session.UserKey).Return("", false, nil).Once()
	store.EXPECT().Set(mock.Anything, "sid", session.TokenKey, "jwt").Return(nil).Once()
	store.EXPECT().Set(mock.Anything, "sid", session.UserKey, mock.Anything).Return(errors.New("disk full")).Once()
	store.EXPECT().Delete(mock.Anything, "sid", []string{session.TokenKey}).Return(nil).Once()

	s := restored(t, session.NewManager(store, auth, discard), "sid")
	_, err := s.Login(context.Background(), "a@b.co", "pw")

	require.ErrorIs(t, err, domain.ErrAuthentication)
	assert.Equal(t, session.StateUnauthenticated, s.State())
	assert.Empty(t, s.Token())
}

func TestLogout_AlwaysClears(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStorage()
	auth := mocks.NewMockAuthenticator(t)
	auth.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.LoginResult{Token: "jwt", User: domain.User{Email: "a@b.co"}}, nil)

	m := session.NewManager(store, auth, discard)

	anon := restored(t, m, "anon")
	anon.Logout(ctx)
	assert.Equal(t, session.StateUnauthenticated, anon.State())

	s := restored(t, m, "sid")
	_, err := s.Login(ctx, "a@b.co", "pw")
	require.NoError(t, err)
	s.Value("view", func() any { return 1 })

	s.Logout(ctx)

	assert.Equal(t, session.StateUnauthenticated, s.State())
	assert.Nil(t, s.User())
	assert.Empty(t, s.Token())
	_, ok := get(t, store, "sid", session.TokenKey)
	assert.False(t, ok)
	_, ok = get(t, store, "sid", session.UserKey)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Value("view", func() any { return 2 }), "page values are reset")
}

func TestLogout_StorageErrorIsSwallowed(t *testing.T) {
	store := mocks.NewMockSessionStorage(t)
	store.EXPECT().Get(mock.Anything, "sid", session.TokenKey).Return("jwt", true, nil).Once()
	store.EXPECT().Get(mock.Anything, "sid", session.UserKey).Return(`{"email":"a@b.co"}`, true, nil).Once()
	store.EXPECT().Delete(mock.Anything, "sid", []string{session.TokenKey, session.UserKey}).Return(errors.New("conn reset")).Once()

	s := restored(t, session.NewManager(store, nil, discard), "sid")
	require.True(t, s.Authenticated())

	s.Logout(context.Background())
	assert.Equal(t, session.StateUnauthenticated, s.State())
}

func TestUnauthorized_ClearsOncePerToken(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockSessionStorage(t)
	store.EXPECT().Get(mock.Anything, "sid", session.TokenKey).Return("jwt", true, nil).Once()
	store.EXPECT().Get(mock.Anything, "sid", session.UserKey).Return(`{"email":"a@b.co"}`, true, nil).Once()
	store.EXPECT().Delete(mock.Anything, "sid", []string{session.TokenKey, session.UserKey}).Return(nil).Once()

	s := restored(t, session.NewManager(store, nil, discard), "sid")
	require.True(t, s.Authenticated())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Unauthorized(ctx, "jwt")
		}()
	}
	wg.Wait()
	s.Unauthorized(ctx, "other")

	assert.Equal(t, session.StateUnauthenticated, s.State())
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name      string
		keys      map[string]string
		wantState session.State
		wantKeys  bool
	}{
		{name: "empty", wantState: session.StateUnauthenticated},
		{
			name:      "both keys",
			keys:      map[string]string{session.TokenKey: "jwt", session.UserKey: `{"email":"a@b.co"}`},
			wantState: session.StateAuthenticated,
			wantKeys:  true,
		},
		{name: "token only", keys: map[string]string{session.TokenKey: "jwt"}, wantState: session.StateUnauthenticated},
		{name: "user only", keys: map[string]string{session.UserKey: `{"email":"a@b.co"}`}, wantState: session.StateUnauthenticated},
		{
			name:      "corrupt user",
			keys:      map[string]string{session.TokenKey: "jwt", session.UserKey: `{not json`},
			wantState: session.StateUnauthenticated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewSessionStorage()
			for k, v := range tt.keys {
				require.NoError(t, store.Set(context.Background(), "sid", k, v))
			}

			s := restored(t, session.NewManager(store, nil, discard), "sid")

			assert.Equal(t, tt.wantState, s.State())
			_, hasToken := get(t, store, "sid", session.TokenKey)
			_, hasUser := get(t, store, "sid", session.UserKey)
			assert.Equal(t, tt.wantKeys, hasToken)
			assert.Equal(t, tt.wantKeys, hasUser)
			if tt.wantState == session.StateAuthenticated {
				assert.Equal(t, "a@b.co", s.User().Email)
			}
		})
	}
}

func TestRestore_StorageErrorIsUnauthenticated(t *testing.T) {
	store := mocks.NewMockSessionStorage(t)
	store.EXPECT().Get(mock.Anything, "sid", session.TokenKey).Return("", false, errors.New("db down")).Once()

	s := restored(t, session.NewManager(store, nil, discard), "sid")
	assert.Equal(t, session.StateUnauthenticated, s.State())
}

func TestRestore_ConcurrentOpenReadsStorageOnce(t *testing.T) {
	store := mocks.NewMockSessionStorage(t)
	release := make(chan struct{})
	store.EXPECT().Get(mock.Anything, "sid", session.TokenKey).
		RunAndReturn(func(context.Context, string, string) (string, bool, error) {
			<-release
			return "jwt", true, nil
		}).Once()
	store.EXPECT().Get(mock.Anything, "sid", session.UserKey).Return(`{"email":"a@b.co"}`, true, nil).Once()

	m := session.NewManager(store, nil, discard)

	var wg sync.WaitGroup
	sessions := make([]*session.Session, 10)
	for i := range sessions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i] = m.Open(context.Background(), "sid")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, session.StateRestoring, sessions[0].Wait(context.Background(), 10*time.Millisecond))
	close(release)

	for _, s := range sessions {
		assert.Same(t, sessions[0], s)
		assert.Equal(t, session.StateAuthenticated, s.Wait(context.Background(), time.Second))
		assert.Equal(t, session.StateAuthenticated, s.Restore(context.Background()))
	}
}

func TestFlash(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStorage()
	s := session.NewManager(store, nil, discard).Create()

	_, ok := s.PopFlash(ctx)
	assert.False(t, ok)

	s.SetFlash(ctx, session.Flash{Kind: session.FlashSuccess, Message: "Saved"})
	f, ok := s.PopFlash(ctx)
	require.True(t, ok)
	assert.Equal(t, session.Flash{Kind: session.FlashSuccess, Message: "Saved"}, f)

	_, ok = s.PopFlash(ctx)
	assert.False(t, ok, "flash is one-shot")
}

func TestManager_SweepEvictsIdle(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := session.NewManager(memory.NewSessionStorage(), nil, discard,
		session.WithIdleTTL(time.Minute),
		session.WithClock(func() time.Time { return now }),
	)

	created := m.Create()
	assert.Equal(t, session.StateUnauthenticated, created.State())
	restored(t, m, "busy")
	assert.Equal(t, 2, m.Len())

	now = now.Add(45 * time.Second)
	m.Open(context.Background(), "busy")
	now = now.Add(30 * time.Second)

	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 1, m.Len())
	assert.Same(t, m.Open(context.Background(), "busy"), m.Open(context.Background(), "busy"))
}

func TestManager_SweptSessionStillHeldSignsOutCachedCopy(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := memory.NewSessionStorage()
	require.NoError(t, store.Set(ctx, "sid", session.TokenKey, "jwt"))
	require.NoError(t, store.Set(ctx, "sid", session.UserKey, `{"email":"a@b.co"}`))
	m := session.NewManager(store, nil, discard,
		session.WithIdleTTL(time.Minute),
		session.WithClock(func() time.Time { return now }),
	)

	held := restored(t, m, "sid")
	require.Equal(t, session.StateAuthenticated, held.State())

	now = now.Add(2 * time.Minute)
	require.Equal(t, 1, m.Sweep())
	cached := restored(t, m, "sid")
	require.NotSame(t, held, cached)
	require.Equal(t, session.StateAuthenticated, cached.State())

	held.Unauthorized(ctx, "jwt")

	_, ok := get(t, store, "sid", session.TokenKey)
	assert.False(t, ok)
	next := restored(t, m, "sid")
	assert.NotSame(t, cached, next)
	assert.Equal(t, session.StateUnauthenticated, next.State())
	assert.Equal(t, 1, m.Len())

	next.Logout(ctx)
	assert.Same(t, next, m.Open(ctx, "sid"), "clearing the cached session keeps it cached")
}

func TestContext(t *testing.T) {
	s := session.NewManager(memory.NewSessionStorage(), nil, discard).Create()

	_, ok := session.FromContext(context.Background())
	assert.False(t, ok)

	got, ok := session.FromContext(session.NewContext(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)
}
