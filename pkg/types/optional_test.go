package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Name      Optional[string] `json:"name"`
	Available Optional[bool]   `json:"available"`
}

func TestOptional_Unmarshal(t *testing.T) {
	t.Run("absent key is not set", func(t *testing.T) {
		var p patch
		require.NoError(t, json.Unmarshal([]byte(`{"name":"drill"}`), &p))

		name, ok := p.Name.Get()
		assert.True(t, ok)
		assert.Equal(t, "drill", name)
		assert.False(t, p.Available.Set)
		_, ok = p.Available.Get()
		assert.False(t, ok)
	})

	t.Run("explicit null is set but empty", func(t *testing.T) {
		var p patch
		require.NoError(t, json.Unmarshal([]byte(`{"name":null,"available":false}`), &p))

		assert.True(t, p.Name.Set)
		assert.True(t, p.Name.Null)
		assert.False(t, p.Name.HasValue())

		available, ok := p.Available.Get()
		assert.True(t, ok)
		assert.False(t, available)
	})
}

func TestOptional_Marshal(t *testing.T) {
	data, err := json.Marshal(patch{Name: Some("saw")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"saw","available":null}`, string(data))
}
