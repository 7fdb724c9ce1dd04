package gateway

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/internal/integrations/shareitserver"
	"github.com/m04kA/SMC-ShareItService/pkg/logger"
	"github.com/m04kA/SMC-ShareItService/pkg/types"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type countingRecorder struct {
	n int
}

func (c *countingRecorder) IncUpstreamError() { c.n++ }

type upstream struct {
	srv   *httptest.Server
	calls atomic.Int32
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{}
	u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Echo-User", r.Header.Get("X-Sharer-User-Id"))
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`))
	}))
	t.Cleanup(u.srv.Close)
	return u
}

var now = time.Date(2030, time.March, 10, 12, 0, 0, 0, time.Local)

func newRouter(baseURL string, recorder UpstreamRecorder) *mux.Router {
	client := shareitserver.NewClient(baseURL, time.Second, logger.Nop())
	r := mux.NewRouter()
	NewGateway(client, recorder, logger.Nop()).WithTimeProvider(fixedTime{now: now}).Register(r)
	return r
}

func send(r http.Handler, method, target, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-Sharer-User-Id", userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func at(d time.Duration) string {
	return now.Add(d).Format(types.DateTimeLayout)
}

func TestGateway_RejectsWithoutForwarding(t *testing.T) {
	up := newUpstream(t)
	r := newRouter(up.srv.URL, nil)

	tests := []struct {
		name   string
		method string
		target string
		userID string
		body   string
	}{
		{name: "user blank name", method: http.MethodPost, target: "/users", body: `{"name":" ","email":"a@b.c"}`},
		{name: "user bad email", method: http.MethodPost, target: "/users", body: `{"name":"A","email":"abc"}`},
		{name: "update blank email", method: http.MethodPatch, target: "/users/1", body: `{"email":""}`},
		{name: "path id zero", method: http.MethodGet, target: "/users/0"},
		{name: "path id text", method: http.MethodGet, target: "/items/abc", userID: "1"},
		{name: "missing user header", method: http.MethodGet, target: "/items", userID: ""},
		{name: "bad user header", method: http.MethodGet, target: "/items", userID: "-3"},
		{name: "item without available", method: http.MethodPost, target: "/items", userID: "1",
			body: `{"name":"Drill","description":"d"}`},
		{name: "item blank description", method: http.MethodPost, target: "/items", userID: "1",
			body: `{"name":"Drill","description":" ","available":true}`},
		{name: "comment too long", method: http.MethodPost, target: "/items/1/comment", userID: "1",
			body: `{"text":"` + strings.Repeat("a", 513) + `"}`},
		{name: "booking missing end", method: http.MethodPost, target: "/bookings", userID: "1",
			body: `{"itemId":1,"start":"` + at(time.Hour) + `"}`},
		{name: "booking bad format", method: http.MethodPost, target: "/bookings", userID: "1",
			body: `{"itemId":1,"start":"2030-03-11","end":"2030-03-12"}`},
		{name: "booking end equals start", method: http.MethodPost, target: "/bookings", userID: "1",
			body: `{"itemId":1,"start":"` + at(time.Hour) + `","end":"` + at(time.Hour) + `"}`},
		{name: "booking in past", method: http.MethodPost, target: "/bookings", userID: "1",
			body: `{"itemId":1,"start":"` + at(-time.Hour) + `","end":"` + at(time.Hour) + `"}`},
		{name: "unknown state", method: http.MethodGet, target: "/bookings?state=SOMETIMES", userID: "1"},
		{name: "negative from", method: http.MethodGet, target: "/bookings/owner?from=-1", userID: "1"},
		{name: "zero size", method: http.MethodGet, target: "/bookings?size=0", userID: "1"},
		{name: "request blank description", method: http.MethodPost, target: "/requests", userID: "1",
			body: `{"description":""}`},
		{name: "malformed json", method: http.MethodPost, target: "/requests", userID: "1", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := send(r, tt.method, tt.target, tt.userID, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
	assert.Equal(t, int32(0), up.calls.Load())
}

func TestGateway_ForwardsValidRequests(t *testing.T) {
	up := newUpstream(t)
	r := newRouter(up.srv.URL, nil)

	tests := []struct {
		name   string
		method string
		target string
		userID string
		body   string
	}{
		{name: "create user", method: http.MethodPost, target: "/users", body: `{"name":"A","email":"a@b.c"}`},
		{name: "partial user update", method: http.MethodPatch, target: "/users/1", body: `{"name":"B"}`},
		{name: "search", method: http.MethodGet, target: "/items/search?text=drill", userID: "1"},
		{name: "create booking", method: http.MethodPost, target: "/bookings", userID: "2",
			body: `{"itemId":1,"start":"` + at(time.Hour) + `","end":"` + at(2*time.Hour) + `"}`},
		{name: "list lowercase state", method: http.MethodGet, target: "/bookings?state=current&from=0&size=5", userID: "2"},
		{name: "approve", method: http.MethodPatch, target: "/bookings/3?approved=true", userID: "1"},
		{name: "all requests", method: http.MethodGet, target: "/requests/all", userID: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := send(r, tt.method, tt.target, tt.userID, tt.body)
			require.Equal(t, http.StatusTeapot, rec.Code, rec.Body.String())
			assert.Equal(t, tt.userID, rec.Header().Get("X-Echo-User"))
			assert.Contains(t, rec.Body.String(), `"path":"`+strings.SplitN(tt.target, "?", 2)[0]+`"`)
		})
	}
	assert.Equal(t, int32(len(tests)), up.calls.Load())
}

func TestGateway_UpstreamUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	recorder := &countingRecorder{}
	r := newRouter(addr, recorder)

	rec := send(r, http.MethodGet, "/users", "", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, 1, recorder.n)
}

func TestCopyHeaders(t *testing.T) {
	src := http.Header{}
	src.Set("X-Echo-User", "5")
	src.Add("Set-Cookie", "a=1")
	src.Add("Set-Cookie", "b=2")
	src.Set("Connection", "keep-alive")
	src.Set("Transfer-Encoding", "chunked")

	dst := http.Header{}
	dst.Set("X-Echo-User", "stale")

	copyHeaders(dst, src)

	assert.Equal(t, "5", dst.Get("X-Echo-User"))
	assert.Equal(t, []string{"a=1", "b=2"}, dst.Values("Set-Cookie"))
	assert.Empty(t, dst.Get("Connection"))
	assert.Empty(t, dst.Get("Transfer-Encoding"))

	src.Set("X-Echo-User", "changed")
	assert.Equal(t, "5", dst.Get("X-Echo-User"))
}
