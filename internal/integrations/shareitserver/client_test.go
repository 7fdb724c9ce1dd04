package shareitserver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/pkg/logger"
)

func TestClient_ForwardRelaysResponse(t *testing.T) {
	var (
		gotMethod, gotPath, gotQuery, gotUser, gotBody string
	)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("state")
		gotUser = r.Header.Get(headerUserID)
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Request-ID", "req-1")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"status":409}`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL+"/", time.Second, logger.Nop())

	resp, err := client.Forward(context.Background(), &Request{
		Method: http.MethodPatch,
		Path:   "/bookings/5",
		Query:  url.Values{"state": []string{"ALL"}},
		Body:   []byte(`{"x":1}`),
		UserID: "7",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/bookings/5", gotPath)
	assert.Equal(t, "ALL", gotQuery)
	assert.Equal(t, "7", gotUser)
	assert.Equal(t, `{"x":1}`, gotBody)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "application/json", resp.ContentType)
	assert.Equal(t, "req-1", resp.Header.Get("X-Request-ID"))
	assert.JSONEq(t, `{"status":409}`, string(resp.Body))
}

func TestClient_ForwardUnavailable(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	addr := upstream.URL
	upstream.Close()

	client := NewClient(addr, time.Second, logger.Nop())

	_, err := client.Forward(context.Background(), &Request{Method: http.MethodGet, Path: "/users"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
