package sqlstore

import (
	"errors"
	"testing"

	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore(t *testing.T) {
	store, db := setupStore(t)

	mustExec(t, db, `INSERT INTO Users (Id, Username, DeleteAt, LastPictureUpdate, RemoteId) VALUES
		('u', 'uname', 0, 1650000000000, NULL),
		('f', 'fname', 0, 0, 'remote1'),
		('gone', 'gname', 1650000000000, 0, ''),
		('new', '', 0, 0, NULL)`)

	t.Run("get user", func(t *testing.T) {
		u, err := store.GetUser("u")
		require.NoError(t, err)
		assert.Equal(t, &app.User{Id: "u", Username: "uname", Avatar: app.AvatarOriginUpload, Active: true}, u)

		f, err := store.GetUser("f")
		require.NoError(t, err)
		assert.True(t, f.IsFederated())
		assert.False(t, f.HasAvatar())

		g, err := store.GetUser("gone")
		require.NoError(t, err)
		assert.False(t, g.Active)

		n, err := store.GetUser("new")
		require.NoError(t, err)
		assert.False(t, n.HasUsername())
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := store.GetUser("nobody")
		require.Error(t, err)
		assert.True(t, errors.Is(err, app.ErrUserNotFound))
	})

	t.Run("active users", func(t *testing.T) {
		active, err := store.GetActiveUserIds([]string{"u", "gone", "nobody"})
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"u": true}, active)

		active, err = store.GetActiveUserIds(nil)
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("delete user", func(t *testing.T) {
		mustExec(t, db, `INSERT INTO Sessions (Id, UserId) VALUES ('s1', 'u'), ('s2', 'f')`)
		mustExec(t, db, `INSERT INTO Preferences (UserId, Category, Name) VALUES ('u', 'theme', ''), ('f', 'theme', '')`)
		mustExec(t, db, `INSERT INTO TeamMembers (TeamId, UserId) VALUES ('t', 'u'), ('t', 'f')`)

		require.NoError(t, store.DeleteUser("u"))

		_, err := store.GetUser("u")
		assert.True(t, errors.Is(err, app.ErrUserNotFound))
		for _, table := range userTables {
			assert.Equal(t, 0, countRows(t, db, "SELECT COUNT(*) FROM "+table+" WHERE UserId = ?", "u"), table)
			assert.Equal(t, 1, countRows(t, db, "SELECT COUNT(*) FROM "+table+" WHERE UserId = ?", "f"), table)
		}

		// Deleting again is a no-op.
		require.NoError(t, store.DeleteUser("u"))
	})
}

func TestFederationRegistry(t *testing.T) {
	store, db := setupStore(t)

	mustExec(t, db, `INSERT INTO Users (Id, Username, RemoteId) VALUES
		('a', 'a', 'remote2'), ('b', 'b', 'remote1'), ('c', 'c', 'remote2'), ('d', 'd', ''), ('e', 'e', NULL)`)

	registry := NewFederationRegistry(store)
	assert.Empty(t, registry.Servers())

	require.NoError(t, registry.Refresh())
	assert.Equal(t, []string{"remote1", "remote2"}, registry.Servers())

	mustExec(t, db, `DELETE FROM Users WHERE Id = 'b'`)
	assert.Equal(t, []string{"remote1", "remote2"}, registry.Servers())

	require.NoError(t, registry.Refresh())
	assert.Equal(t, []string{"remote2"}, registry.Servers())
}
