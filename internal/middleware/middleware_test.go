package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/naijatax/internal/auth"
	"github.com/mmynk/naijatax/internal/models"
)

type claimsSeen struct {
	userID, email, displayName string
}

func captureClaims(seen *claimsSeen) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		seen.userID = GetUserID(ctx)
		seen.email = GetEmail(ctx)
		seen.displayName = GetDisplayName(ctx)
		return connect.NewResponse(&struct{}{}), nil
	}
}

func newToken(t *testing.T, m *auth.JWTManager) string {
	t.Helper()
	user := models.NewUser("ada@example.com", "Ada", "hash")
	user.ID = "user-1"
	token, err := m.Generate(user)
	require.NoError(t, err)
	return token
}

func TestRequireAuth(t *testing.T) {
	m := auth.NewJWTManager("secret", time.Hour)
	token := newToken(t, m)

	tests := []struct {
		name    string
		header  string
		wantErr bool
	}{
		{name: "valid token", header: "Bearer " + token},
		{name: "lowercase scheme", header: "bearer " + token},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic " + token, wantErr: true},
		{name: "garbage token", header: "Bearer nope", wantErr: true},
		{name: "other secret", header: "Bearer " + newToken(t, auth.NewJWTManager("other", time.Hour)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen claimsSeen
			req := connect.NewRequest(&struct{}{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := RequireAuth(m)(captureClaims(&seen))(context.Background(), req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
				assert.Empty(t, seen.userID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, claimsSeen{userID: "user-1", email: "ada@example.com", displayName: "Ada"}, seen)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	m := auth.NewJWTManager("secret", time.Hour)

	t.Run("anonymous passes through", func(t *testing.T) {
		var seen claimsSeen
		_, err := OptionalAuth(m)(captureClaims(&seen))(context.Background(), connect.NewRequest(&struct{}{}))
		require.NoError(t, err)
		assert.Empty(t, seen.userID)
	})

	t.Run("invalid token is ignored", func(t *testing.T) {
		var seen claimsSeen
		req := connect.NewRequest(&struct{}{})
		req.Header().Set("Authorization", "Bearer nope")
		_, err := OptionalAuth(m)(captureClaims(&seen))(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, seen.userID)
	})

	t.Run("valid token sets claims", func(t *testing.T) {
		var seen claimsSeen
		req := connect.NewRequest(&struct{}{})
		req.Header().Set("Authorization", "Bearer "+newToken(t, m))
		_, err := OptionalAuth(m)(captureClaims(&seen))(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "user-1", seen.userID)
	})
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	now := time.Unix(1_700_000_000, 0)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"), "clients have separate buckets")

	now = now.Add(time.Minute)
	assert.True(t, rl.Allow("a"), "bucket refills after the window")

	now = now.Add(2 * time.Hour)
	rl.cleanup()
	rl.mu.Lock()
	assert.Empty(t, rl.clients)
	rl.mu.Unlock()

	rl.Stop()
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	rejected := 0
	handler := RateLimit(rl, func() { rejected++ })(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/naijatax.v1.TaxService/Calculate", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
	assert.Equal(t, 1, rejected)

	passthrough := RateLimit(nil, nil)(http.NotFoundHandler())
	rec := httptest.NewRecorder()
	passthrough.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORS(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called, "preflight must not reach the handler")
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.True(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	ok := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&struct{}{}), nil
	}
	fail := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("bad input"))
	}

	_, err := m.Interceptor()(ok)(context.Background(), connect.NewRequest(&struct{}{}))
	require.NoError(t, err)
	_, err = m.Interceptor()(fail)(context.Background(), connect.NewRequest(&struct{}{}))
	require.Error(t, err)
	m.ObserveCalculation(true)
	m.ObserveCalculation(false)
	m.ObserveRateLimited()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `naijatax_rpc_requests_total{code="ok",procedure=""} 1`)
	assert.Contains(t, body, `naijatax_rpc_requests_total{code="invalid_argument",procedure=""} 1`)
	assert.Contains(t, body, `naijatax_calculations_total{cache="hit"} 1`)
	assert.Contains(t, body, `naijatax_rate_limited_total 1`)
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := WithClaims(context.Background(), &auth.Claims{UserID: "user-1"})
	ok := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&struct{}{}), nil
	}
	denied := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("no such record"))
	}
	broken := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, errors.New("disk on fire")
	}

	tests := []struct {
		name  string
		next  connect.UnaryFunc
		level string
		msg   string
		extra string
	}{
		{name: "success", next: ok, level: "INFO", msg: "RPC ok"},
		{name: "connect error", next: denied, level: "WARN", msg: "RPC error", extra: "no such record"},
		{name: "plain error", next: broken, level: "ERROR", msg: "RPC error", extra: "disk on fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			_, _ = LoggingInterceptor()(tt.next)(ctx, connect.NewRequest(&struct{}{}))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.msg, entry["msg"])
			assert.Equal(t, "user-1", entry["user_id"])
			assert.Contains(t, entry, "duration_ms")
			if tt.extra != "" {
				assert.Equal(t, tt.extra, entry["error"])
			}
		})
	}
}
