package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError_Body(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondNotFound(rec, "вещь не найдена")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 404, body.Status)
	assert.Equal(t, "Not Found", body.Error)
	assert.Equal(t, "вещь не найдена", body.Message)
	assert.NotEmpty(t, body.Timestamp)
}

func TestRespondJSON_NilDataWritesEmptyBody(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "x", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{broken`))
	assert.Error(t, DecodeJSON(req, &v))
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: "0", wantErr: true},
		{raw: "-1", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": tt.raw})
			got, err := PathID(req, "id")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
