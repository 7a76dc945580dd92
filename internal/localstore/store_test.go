package localstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questbloom/questbloom-api/internal/errors"
	"github.com/questbloom/questbloom-api/internal/localstore"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStoreRoundTrip(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	in := payload{Name: "Agua Destilada", Count: 3}
	require.NoError(t, store.Set("guest-user:inventory", in))

	var out payload
	require.NoError(t, store.Get("guest-user:inventory", &out))
	assert.Equal(t, in, out)
}

func TestStoreOverwrite(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("k", payload{Count: 1}))
	require.NoError(t, store.Set("k", payload{Count: 2}))

	var out payload
	require.NoError(t, store.Get("k", &out))
	assert.Equal(t, 2, out.Count)
}

func TestStoreGetMissing(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	var out payload
	err = store.Get("missing", &out)
	assert.True(t, errors.IsNotFound(err))
}

func TestStoreDelete(t *testing.T) {
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("k", payload{Count: 1}))
	require.NoError(t, store.Delete("k"))

	var out payload
	assert.True(t, errors.IsNotFound(store.Get("k", &out)))

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete("k"))
}

func TestStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := localstore.New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", payload{Count: 1}))
}

func TestStoreRequiresDirectory(t *testing.T) {
	_, err := localstore.New("")
	assert.True(t, errors.IsInvalidArgument(err))
}
