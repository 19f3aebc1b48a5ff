package services

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodec_RoundTripKeepsOpaqueFields(t *testing.T) {
	var codec JSONCodec

	in := `{"id":"s1","kind":"store","iv":"AAEC","entries":[{"n":1}],"version":3}`
	c, err := codec.Unmarshal([]byte(in))
	require.NoError(t, err)

	assert.Equal(t, "s1", c.ID)
	assert.Equal(t, "store", c.Kind)
	assert.JSONEq(t, `{"iv":"AAEC","entries":[{"n":1}],"version":3}`, string(c.Payload))

	out, err := codec.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestJSONCodec_KindOptional(t *testing.T) {
	c, err := JSONCodec{}.Unmarshal([]byte(`{"id":"s1"}`))
	require.NoError(t, err)
	assert.Empty(t, c.Kind)
	require.NotNil(t, c.Payload, "payload is never nil")
	assert.JSONEq(t, `{}`, string(c.Payload))

	out, err := JSONCodec{}.Marshal(&models.Container{ID: "s1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"s1"}`, string(out))
}

func TestJSONCodec_Rejects(t *testing.T) {
	tests := map[string]string{
		"not json":    `nope`,
		"array":       `[1]`,
		"null":        `null`,
		"numeric id":  `{"id":1}`,
		"kind number": `{"id":"a","kind":2}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := JSONCodec{}.Unmarshal([]byte(body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrBadRequest))
		})
	}
}

func TestJSONCodec_IDOptional(t *testing.T) {
	for _, body := range []string{`{"data":"v1"}`, `{"id":"","data":"v1"}`, `{}`} {
		c, err := JSONCodec{}.Unmarshal([]byte(body))
		require.NoError(t, err, body)
		assert.Empty(t, c.ID, body)
		assert.NotNil(t, c.Payload, body)
	}
}

func TestJSONCodec_MarshalBadPayload(t *testing.T) {
	_, err := JSONCodec{}.Marshal(&models.Container{ID: "s1", Payload: []byte(`not json`)})
	assert.Error(t, err)
}
