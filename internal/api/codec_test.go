package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/mem"
	"google.golang.org/protobuf/types/known/emptypb"
)

func registeredCodec(t *testing.T) encoding.CodecV2 {
	t.Helper()
	c := encoding.GetCodecV2(CodecName)
	require.NotNil(t, c, "json codec must be registered")
	return c
}

func TestCodecIsRegistered(t *testing.T) {
	assert.Equal(t, "json", registeredCodec(t).Name())
}

func TestCodec_PlainStructs(t *testing.T) {
	c := registeredCodec(t)

	out, err := c.Marshal(&PutStoreRequest{ID: "main", Store: []byte(`{"id":"x","v":1}`)})
	require.NoError(t, err)
	b := out.Materialize()
	assert.JSONEq(t, `{"id":"main","store":{"id":"x","v":1}}`, string(b))

	var got PutStoreRequest
	require.NoError(t, c.Unmarshal(mem.BufferSlice{mem.SliceBuffer(b)}, &got))
	assert.Equal(t, "main", got.ID)
	assert.JSONEq(t, `{"id":"x","v":1}`, string(got.Store))
}

func TestCodec_ProtoMessages(t *testing.T) {
	c := registeredCodec(t)

	out, err := c.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out.Materialize()))

	require.NoError(t, c.Unmarshal(mem.BufferSlice{mem.SliceBuffer(`{}`)}, &emptypb.Empty{}))
	assert.Error(t, c.Unmarshal(mem.BufferSlice{mem.SliceBuffer(`{"unknown":1}`)}, &emptypb.Empty{}))
}
