package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_JSON(t *testing.T) {
	var payload struct {
		Start DateTime `json:"start"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"start":"2030-01-02T10:30:00"}`), &payload))
	assert.Equal(t, 2030, payload.Start.Year())
	assert.Equal(t, time.January, payload.Start.Month())
	assert.Equal(t, 10, payload.Start.Hour())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2030-01-02T10:30:00"}`, string(out))
}

func TestDateTime_InvalidFormat(t *testing.T) {
	var d DateTime

	assert.Error(t, json.Unmarshal([]byte(`"2030-01-02 10:30"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &d))
}

func TestNewDateTime_TruncatesSubseconds(t *testing.T) {
	d := NewDateTime(time.Date(2030, 1, 2, 10, 30, 0, 999, time.Local))
	assert.Equal(t, "2030-01-02T10:30:00", d.String())
}
