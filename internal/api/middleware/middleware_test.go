package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/pkg/logger"
)

func TestAuth(t *testing.T) {
	var gotID int64
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid", header: "7", want: http.StatusOK},
		{name: "missing", header: "", want: http.StatusBadRequest},
		{name: "not a number", header: "abc", want: http.StatusBadRequest},
		{name: "zero", header: "0", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
	assert.Equal(t, int64(7), gotID)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", seen)
}

type httpObservation struct {
	method, route string
	status        int
}

type fakeHTTPRecorder struct {
	observed []httpObservation
}

func (f *fakeHTTPRecorder) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.observed = append(f.observed, httpObservation{method: method, route: route, status: status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	recorder := &fakeHTTPRecorder{}
	r := mux.NewRouter()
	r.Use(Metrics(recorder))
	r.HandleFunc("/items/{itemId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/15", nil))

	require.Len(t, recorder.observed, 1)
	assert.Equal(t, httpObservation{method: "GET", route: "/items/{itemId}", status: http.StatusTeapot}, recorder.observed[0])
}

type countingRateRecorder struct{ n int }

func (c *countingRateRecorder) IncRateLimited(string) { c.n++ }

func serveLimited(t *testing.T, limiter Limiter, recorder RateLimitRecorder, userID string, times int) []int {
	t.Helper()
	h := RateLimit(limiter, recorder, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, times)
	for i := 0; i < times; i++ {
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set(UserIDHeader, userID)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	return codes
}

func TestRateLimit_Memory(t *testing.T) {
	limiter, err := NewMemoryLimiter(0.001, 2, 100)
	require.NoError(t, err)
	recorder := &countingRateRecorder{}

	codes := serveLimited(t, limiter, recorder, "1", 3)
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1, recorder.n)

	// у другого пользователя свой бюджет
	codes = serveLimited(t, limiter, recorder, "2", 1)
	assert.Equal(t, []int{http.StatusOK}, codes)
}

func TestMemoryLimiter_EvictsLeastRecentKeys(t *testing.T) {
	limiter, err := NewMemoryLimiter(0.001, 1, 2)
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"addr:a", "addr:b", "addr:c"} {
		ok, err := limiter.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, 2, limiter.Len())

	// addr:a вытеснен, его бюджет начинается заново
	ok, _ := limiter.Allow(ctx, "addr:a")
	assert.True(t, ok)

	// addr:c остался в кэше и свой токен уже израсходовал
	ok, _ = limiter.Allow(ctx, "addr:c")
	assert.False(t, ok)
}

func TestNewMemoryLimiter_InvalidSize(t *testing.T) {
	_, err := NewMemoryLimiter(1, 1, 0)
	assert.Error(t, err)
}

func TestRateLimit_Redis(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRedisLimiter(client, 2, time.Minute)

	codes := serveLimited(t, limiter, nil, "1", 3)
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	allowed, err := limiter.Allow(context.Background(), "user:2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimit_RedisDownLetsRequestsThrough(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	srv.Close()

	codes := serveLimited(t, NewRedisLimiter(client, 1, time.Minute), nil, "1", 2)
	assert.Equal(t, []int{http.StatusOK, http.StatusOK}, codes)
}
