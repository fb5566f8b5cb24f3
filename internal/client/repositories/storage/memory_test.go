package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	v, err := r.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.Nil(t, v)

	in := []byte(`{"_id":"u1"}`)
	require.NoError(t, r.Set(ctx, "currentUser", in))
	in[0] = 'X'

	v, err = r.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.Equal(t, `{"_id":"u1"}`, string(v))

	require.NoError(t, r.Delete(ctx, "currentUser"))
	require.NoError(t, r.Delete(ctx, "currentUser"))
	v, err = r.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.Nil(t, v)
}
