package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scriptcraft-client/internal/auth"
	"scriptcraft-client/internal/core"
	"scriptcraft-client/internal/scripts"
	"scriptcraft-client/internal/storage"
)

type recordNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recordNotifier) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordNotifier) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}

type recordNavigator struct {
	count atomic.Int32
}

func (r *recordNavigator) ToLogin() {
	r.count.Add(1)
}

type testEnv struct {
	client   *Client
	session  *auth.Session
	store    *storage.MemoryStore
	notifier *recordNotifier
	nav      *recordNavigator
}

func newTestEnv(t *testing.T, baseURL, token string) *testEnv {
	t.Helper()

	store := storage.NewMemoryStore()
	session := auth.NewSession(context.Background(), store)
	if token != "" {
		require.NoError(t, session.SetLoginInfo(context.Background(), token, core.UserInfo{ID: "u1", Nickname: "A"}))
	}

	notifier := &recordNotifier{}
	nav := &recordNavigator{}
	return &testEnv{
		client:   NewClient(baseURL, time.Second, session, notifier, nav),
		session:  session,
		store:    store,
		notifier: notifier,
		nav:      nav,
	}
}

func TestSuccessResolvesWithDataOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"code":200,"message":"ok","data":{"id":"u1","email":"a@b.c","nickname":"A"}}`))
	}))
	defer srv.Close()

	env := newTestEnv(t, srv.URL, "tok")
	user, err := env.client.GetUserProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.UserInfo{ID: "u1", Email: "a@b.c", Nickname: "A"}, user)
	assert.Empty(t, env.notifier.messages(), "success must not notify")
}

func TestBearerHeaderAttachedOnlyWhenLoggedIn(t *testing.T) {
	var gotAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer srv.Close()

	env := newTestEnv(t, srv.URL, "abc")
	_, err := env.client.GetUserProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth.Load())

	env = newTestEnv(t, srv.URL, "")
	_, err = env.client.GetUserProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", gotAuth.Load())
}

func TestBusinessFailureRejectsAndNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"code":400,"message":"email already registered"}`))
	}))
	defer srv.Close()

	env := newTestEnv(t, srv.URL, "")
	_, err := env.client.Register(context.Background(), core.RegisterRequest{Email: "a@b.c", Password: "secret"})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindBusiness, apiErr.Kind)
	assert.Equal(t, "email already registered", apiErr.Message)
	assert.Equal(t, []string{"email already registered"}, env.notifier.messages())
}

func TestAuthExpiredLogsOutAndRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	env := newTestEnv(t, srv.URL, "stale")
	require.True(t, env.session.IsLoggedIn())

	_, err := env.client.GetUserProfile(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindAuthExpired, apiErr.Kind)

	assert.False(t, env.session.IsLoggedIn())
	assert.Equal(t, int32(1), env.nav.count.Load())
	assert.Equal(t, []string{msgAuthExpired}, env.notifier.messages())

	// Durable entries are gone too.
	_, ok, err := env.store.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = env.store.Get(context.Background(), "userInfo")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConcurrent401sAreIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	env := newTestEnv(t, srv.URL, "stale")

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = env.client.GetUserProfile(context.Background())
		}()
	}
	wg.Wait()

	// One navigation per 401, logged-out end state identical to a single 401.
	assert.Equal(t, int32(2), env.nav.count.Load())
	assert.False(t, env.session.IsLoggedIn())
	assert.Len(t, env.notifier.messages(), 2)
}

func TestTransportStatusClassification(t *testing.T) {
	tests := []struct {
		status  int
		kind    Kind
		message string
	}{
		{http.StatusForbidden, KindForbidden, msgForbidden},
		{http.StatusNotFound, KindNotFound, msgNotFound},
		{http.StatusInternalServerError, KindServer, msgServerFallback},
		{http.StatusTeapot, KindHTTP, msgHTTPFallback},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		env := newTestEnv(t, srv.URL, "tok")
		_, err := env.client.GetScriptDetail(context.Background(), "v1")
		srv.Close()

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, tt.kind, apiErr.Kind, "status %d", tt.status)
		assert.Equal(t, tt.status, apiErr.Status)
		assert.Contains(t, env.notifier.messages(), tt.message)
		assert.True(t, env.session.IsLoggedIn(), "only 401 may log out")
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nobody listens anymore

	env := newTestEnv(t, srv.URL, "tok")
	_, err := env.client.GetUserProfile(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNetwork, apiErr.Kind)
	assert.Equal(t, []string{msgNetwork}, env.notifier.messages())
}

func TestTimeoutSurfacesAsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	env := newTestEnv(t, srv.URL, "tok")
	env.client.http.Timeout = 20 * time.Millisecond

	_, err := env.client.GetUserProfile(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNetwork, apiErr.Kind)
}

func TestUnsendableRequestIsConfigError(t *testing.T) {
	env := newTestEnv(t, "http://127.0.0.1:0", "tok")

	// A channel cannot be marshaled, so the request is never built.
	err := env.client.do(context.Background(), http.MethodPost, "/scripts/generate", nil, make(chan int), nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindRequestConfig, apiErr.Kind)
	assert.Equal(t, []string{msgRequestConfig}, env.notifier.messages())
}

func TestSessionExpiryLeavesCacheIntact(t *testing.T) {
	var expired atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if expired.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"success":true,"data":{"id":"v1","title":"Morning routine","wordCount":480}}`))
	}))
	defer srv.Close()

	env := newTestEnv(t, srv.URL, "abc")
	cache := scripts.NewStore()
	defer cache.Close()

	detail, err := env.client.GetScriptDetail(context.Background(), "v1")
	require.NoError(t, err)
	cache.CacheDetail("v1", detail)

	expired.Store(true)
	_, err = env.client.GetScriptDetail(context.Background(), "v1")
	require.Error(t, err)

	assert.False(t, env.session.IsLoggedIn())
	assert.Equal(t, int32(1), env.nav.count.Load())

	cached, ok := cache.CachedDetail("v1")
	require.True(t, ok, "the 401 must not touch the script cache")
	assert.Equal(t, "Morning routine", cached.Title)
}

type failingSession struct{}

func (failingSession) Token() (string, error)         { return "", errors.New("store corrupted") }
func (failingSession) Logout(_ context.Context) error { return nil }

func TestSessionReadFailureFailsClosed(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer srv.Close()

	notifier := &recordNotifier{}
	client := NewClient(srv.URL, time.Second, failingSession{}, notifier, &recordNavigator{})

	_, err := client.GetUserProfile(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindRequestConfig, apiErr.Kind)
	assert.Equal(t, int32(0), hits.Load(), "request must not be sent without a readable session")
}
