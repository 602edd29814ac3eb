package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

func TestFileMirrorRoundTrip(t *testing.T) {
	ctx := context.Background()

	mirror, err := NewFileMirror(t.TempDir(), discardLogger())
	require.NoError(t, err)
	assert.True(t, mirror.Available(ctx))

	cid := interfaces.ContentID("QmTestDocument")
	data := []byte("registration invoice bytes")

	require.NoError(t, mirror.PutAt(ctx, cid, data))

	got, err := mirror.Get(ctx, cid)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// Overwriting with identical content is idempotent.
	require.NoError(t, mirror.PutAt(ctx, cid, data))
}

func TestFileMirrorNotFound(t *testing.T) {
	ctx := context.Background()

	mirror, err := NewFileMirror(t.TempDir(), discardLogger())
	require.NoError(t, err)

	_, err = mirror.Get(ctx, "QmMissing")
	assert.ErrorIs(t, err, interfaces.ErrContentNotFound)
}
