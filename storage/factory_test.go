package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

func TestStorageFactoryStoreFor(t *testing.T) {
	sf := NewStorageFactory(discardLogger())

	loc, err := interfaces.NewStorageLocation("ipfs://localhost:5001/?timeout=10s&gateway_url=https://gw.example.com")
	require.NoError(t, err)

	store, err := sf.StoreFor(loc)
	require.NoError(t, err)
	assert.Equal(t, "ipfs-localhost-5001", store.Name())
	assert.Contains(t, store.LocationURI(), "timeout=10s")

	// Only IPFS can assign content identifiers.
	fileLoc, err := interfaces.NewStorageLocation("file:///tmp/attachments")
	require.NoError(t, err)
	_, err = sf.StoreFor(fileLoc)
	assert.ErrorIs(t, err, interfaces.ErrInvalidLocationURI)
}

func TestStorageFactoryMirrorFor(t *testing.T) {
	sf := NewStorageFactory(discardLogger())

	fileLoc, err := interfaces.NewStorageLocation("file://" + t.TempDir())
	require.NoError(t, err)
	mirror, err := sf.MirrorFor(fileLoc)
	require.NoError(t, err)
	assert.NotEmpty(t, mirror.Name())

	ipfsLoc, err := interfaces.NewStorageLocation("ipfs://localhost:5001")
	require.NoError(t, err)
	_, err = sf.MirrorFor(ipfsLoc)
	assert.ErrorIs(t, err, interfaces.ErrInvalidLocationURI)
}

func TestCreateMirroredStore(t *testing.T) {
	sf := NewStorageFactory(discardLogger())

	store, err := sf.CreateMirroredStore([]string{
		"ipfs://localhost:5001/?timeout=30s",
		"file://" + t.TempDir(),
		"not a uri at all ://",
	})
	require.NoError(t, err)
	assert.Equal(t, "mirrored-storage", store.Name())
	assert.Contains(t, store.LocationURI(), "ipfs://localhost:5001")
}

func TestCreateMirroredStoreRequiresIPFS(t *testing.T) {
	sf := NewStorageFactory(discardLogger())

	_, err := sf.CreateMirroredStore([]string{"file://" + t.TempDir()})
	assert.Error(t, err)

	_, err = sf.CreateMirroredStore([]string{
		"ipfs://localhost:5001",
		"ipfs://localhost:5002",
	})
	assert.Error(t, err)
}
