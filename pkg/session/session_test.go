package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestNewStoreWithoutFileIsLoggedOut(t *testing.T) {
	store, err := NewStore(testPath(t))
	require.NoError(t, err)
	require.Nil(t, store.Current())
	require.False(t, store.IsAdmin())
}

func TestIdentityPersistsAcrossStores(t *testing.T) {
	path := testPath(t)

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetIdentity(Identity{ID: "alice", Username: "alice", Role: RoleUser}))

	reloaded, err := NewStore(path)
	require.NoError(t, err)
	id := reloaded.Current()
	require.NotNil(t, id)
	require.Equal(t, "alice", id.Username)
	require.Equal(t, RoleUser, id.Role)
}

func TestClearRemovesFileAndIdentity(t *testing.T) {
	path := testPath(t)

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetIdentity(Identity{ID: "alice", Username: "alice", Role: RoleUser}))

	require.NoError(t, store.Clear())
	require.Nil(t, store.Current())

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// clearing an already cleared store is fine
	require.NoError(t, store.Clear())
}

func TestRouteForReflectsRole(t *testing.T) {
	store, err := NewStore(testPath(t))
	require.NoError(t, err)
	require.Equal(t, "/", store.RouteFor())

	require.NoError(t, store.SetIdentity(Identity{ID: "admin", Username: "admin", Role: RoleAdmin}))
	require.True(t, store.IsAdmin())
	require.Equal(t, "/admin", store.RouteFor())

	require.NoError(t, store.SetIdentity(Identity{ID: "alice", Username: "alice", Role: RoleUser}))
	require.Equal(t, "/", store.RouteFor())
}

func TestCurrentReturnsCopy(t *testing.T) {
	store, err := NewStore(testPath(t))
	require.NoError(t, err)
	require.NoError(t, store.SetIdentity(Identity{ID: "alice", Username: "alice", Role: RoleUser}))

	id := store.Current()
	id.Role = RoleAdmin

	require.False(t, store.IsAdmin())
}
