package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	"hotelier/shared"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/transport/http/middleware"
)

func newMiddleware(t *testing.T, cfg *config.Config) (*cacheMocks.MockRedisCache, middleware.AppMiddleware) {
	t.Helper()

	redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	return redisCache, middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache)
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	tests := []struct {
		name          string
		count         int64
		incrErr       error
		wantCode      int
		wantRemaining string
	}{
		{name: "first request", count: 1, wantCode: http.StatusOK, wantRemaining: "1"},
		{name: "at the limit", count: 2, wantCode: http.StatusOK, wantRemaining: "0"},
		{name: "over the limit", count: 3, wantCode: http.StatusTooManyRequests, wantRemaining: "0"},
		{name: "redis down lets the request through", incrErr: errors.New("connection refused"), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisCache, mw := newMiddleware(t, cfg)

			redisCache.EXPECT().
				Incr(gomock.Any(), "limiter:10.0.0.1:test-agent", 60).
				Return(tt.count, tt.incrErr)

			req := httptest.NewRequest(http.MethodGet, "/api/hotels", nil)
			req.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1")
			req.Header.Set("User-Agent", "test-agent")

			rec := httptest.NewRecorder()
			mw.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get("X-RateLimit-Remaining"))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	_, mw := newMiddleware(t, &config.Config{})

	rec := httptest.NewRecorder()
	mw.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecover(t *testing.T) {
	_, mw := newMiddleware(t, &config.Config{})

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map write")
	})

	rec := httptest.NewRecorder()
	mw.Recover(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestActor(t *testing.T) {
	_, mw := newMiddleware(t, &config.Config{})

	var actor string

	handler := mw.Actor("admin")(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		actor = shared.Actor(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "admin", actor)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true

	_, mw := newMiddleware(t, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/hotels", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)

	rec := httptest.NewRecorder()
	mw.CORS()(http.HandlerFunc(ok)).ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics(t *testing.T) {
	cfg := &config.Config{}
	cfg.Metrics.Enable = true

	_, mw := newMiddleware(t, cfg)

	router := chi.NewRouter()
	router.Use(mw.Metrics)
	router.Get("/metrics-probe/{id}", ok)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics-probe/42", nil))

	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `http_requests_total{method="GET",route="/metrics-probe/{id}",status="200"}`))
}
