package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kaapav/kaapav-bot/internal/middleware"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestRequestID(t *testing.T) {
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, middleware.GetRequestID(r.Context()))
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))

	for _, bad := range []string{"has spaces", "<script>", strings.Repeat("a", 65)} {
		req.Header.Set(middleware.RequestIDHeader, bad)
		w = httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.NotEqual(t, bad, w.Header().Get(middleware.RequestIDHeader))
		assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36, "replaced with a uuid")
	}
}

func TestLogger_ScopesRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	handler := middleware.RequestID(middleware.Logger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.LoggerFrom(r.Context(), zap.NewNop()).Info("inside")
		if r.URL.Path == "/boom" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})))

	for _, path := range []string{"/api/chats", "/health", "/boom"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(middleware.RequestIDHeader, "req-7")
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	access := logs.FilterMessage("HTTP request").All()
	require.Len(t, access, 2, "health checks are not access-logged")
	assert.Equal(t, "/api/chats", access[0].ContextMap()["path"])
	assert.Equal(t, int64(2), access[0].ContextMap()["bytes"])
	assert.Equal(t, zapcore.WarnLevel, access[1].Level)

	for _, entry := range logs.FilterMessage("inside").All() {
		assert.Equal(t, "req-7", entry.ContextMap()["request_id"])
	}
}

type fakeCounter struct {
	allowed bool
	retry   time.Duration
	err     error
	buckets []string
}

func (f *fakeCounter) Allow(_ context.Context, bucket string, _ int, _ time.Duration) (bool, time.Duration, error) {
	f.buckets = append(f.buckets, bucket)
	return f.allowed, f.retry, f.err
}

func TestRateLimiter(t *testing.T) {
	tests := []struct {
		name           string
		counter        *fakeCounter
		expectedStatus int
		retryAfter     string
	}{
		{
			name:           "within window",
			counter:        &fakeCounter{allowed: true},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "window exhausted",
			counter:        &fakeCounter{allowed: false, retry: 1500 * time.Millisecond},
			expectedStatus: http.StatusTooManyRequests,
			retryAfter:     "2",
		},
		{
			name:           "store down falls back to local limiter",
			counter:        &fakeCounter{err: errors.New("redis: connection refused")},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := middleware.NewRateLimiter(tt.counter, 60, 5, time.Minute, zap.NewNop())
			handler := rl.Middleware()(http.HandlerFunc(ok))

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			req.RemoteAddr = "10.0.0.7:5123"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.retryAfter, w.Header().Get("Retry-After"))
			assert.Equal(t, []string{"ip:10.0.0.7"}, tt.counter.buckets)
			if tt.expectedStatus == http.StatusTooManyRequests {
				var body middleware.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, middleware.ErrorCodeRateLimitExceeded, body.Error)
				assert.False(t, body.Timestamp.IsZero())
			}
		})
	}
}

func TestRateLimiter_LocalFallbackLimits(t *testing.T) {
	rl := middleware.NewRateLimiter(nil, 1, 1, time.Minute, zap.NewNop())
	handler := rl.Middleware()(http.HandlerFunc(ok))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "127.0.0.1:1234"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	other := httptest.NewRequest(http.MethodGet, "/test", nil)
	other.RemoteAddr = "127.0.0.2:1234"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChain_LimitsByForwardedClient(t *testing.T) {
	rl := middleware.NewRateLimiter(nil, 1, 1, time.Minute, zap.NewNop())
	handler := middleware.Chain(&middleware.Config{Logger: zap.NewNop()})(rl.Middleware()(http.HandlerFunc(ok)))

	send := func(client string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.RemoteAddr = "10.0.0.1:443"
		req.Header.Set("X-Forwarded-For", client)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.5"))
	assert.Equal(t, http.StatusOK, send("203.0.113.6"), "clients behind one proxy get separate buckets")
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.5"))
}

type fakeSessions map[string]string

func (f fakeSessions) AdminSession(_ context.Context, token string) (string, bool, error) {
	if token == "boom" {
		return "", false, errors.New("redis down")
	}
	agent, ok := f[token]
	return agent, ok, nil
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name           string
		headers        map[string]string
		expectedStatus int
		expectedAgent  string
	}{
		{
			name:           "api token",
			headers:        map[string]string{"Authorization": "Bearer s3cret"},
			expectedStatus: http.StatusOK,
			expectedAgent:  "api",
		},
		{
			name:           "session header",
			headers:        map[string]string{middleware.SessionTokenHeader: "sess-1"},
			expectedStatus: http.StatusOK,
			expectedAgent:  "priya",
		},
		{
			name:           "session as bearer",
			headers:        map[string]string{"Authorization": "bearer sess-1"},
			expectedStatus: http.StatusOK,
			expectedAgent:  "priya",
		},
		{
			name:           "unknown token",
			headers:        map[string]string{"Authorization": "Bearer nope"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no credentials",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "session store failure",
			headers:        map[string]string{middleware.SessionTokenHeader: "boom"},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var agent string
			handler := middleware.Auth([]string{"s3cret"}, fakeSessions{"sess-1": "priya"}, zap.NewNop())(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					agent = middleware.GetAgent(r.Context())
					w.WriteHeader(http.StatusOK)
				}))

			req := httptest.NewRequest(http.MethodGet, "/api/chats", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedAgent, agent)
		})
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		origins        []string
		method         string
		origin         string
		preflight      bool
		expectedStatus int
		expectedOrigin string
	}{
		{name: "preflight any origin", method: http.MethodOptions, origin: "http://localhost:3000", preflight: true, expectedStatus: http.StatusNoContent, expectedOrigin: "http://localhost:3000"},
		{name: "exact origin", origins: []string{"https://dash.kaapav.com"}, method: http.MethodGet, origin: "https://dash.kaapav.com", expectedStatus: http.StatusOK, expectedOrigin: "https://dash.kaapav.com"},
		{name: "subdomain wildcard", origins: []string{"https://*.kaapav.com"}, method: http.MethodGet, origin: "https://staff.kaapav.com", expectedStatus: http.StatusOK, expectedOrigin: "https://staff.kaapav.com"},
		{name: "wildcard requires matching scheme", origins: []string{"https://*.kaapav.com"}, method: http.MethodGet, origin: "http://staff.kaapav.com", expectedStatus: http.StatusOK},
		{name: "foreign origin served without headers", origins: []string{"https://dash.kaapav.com"}, method: http.MethodGet, origin: "https://evil.example", expectedStatus: http.StatusOK},
		{name: "foreign preflight rejected", origins: []string{"https://dash.kaapav.com"}, method: http.MethodOptions, origin: "https://evil.example", preflight: true, expectedStatus: http.StatusForbidden},
		{name: "no origin passes through", method: http.MethodGet, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(middleware.DefaultCORSConfig(tt.origins...))(http.HandlerFunc(ok))

			req := httptest.NewRequest(tt.method, "/api/chats", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.preflight && tt.expectedStatus == http.StatusNoContent {
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), middleware.SessionTokenHeader)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name        string
		exposeStack bool
	}{
		{name: "production hides stack"},
		{name: "development exposes stack", exposeStack: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Recovery(zap.NewNop(), tt.exposeStack)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic("test panic")
			}))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			var body middleware.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.exposeStack, body.Stack != "")
		})
	}
}

func TestTimeout(t *testing.T) {
	t.Run("slow handler", func(t *testing.T) {
		handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
			w.WriteHeader(http.StatusOK)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

		assert.Equal(t, http.StatusRequestTimeout, w.Code)
	})

	t.Run("fast handler", func(t *testing.T) {
		handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Test", "1")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "1", w.Header().Get("X-Test"))
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})
}
