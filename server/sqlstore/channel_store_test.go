package sqlstore

import (
	"errors"
	"testing"

	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedChannels(t *testing.T, store *SQLStore) {
	t.Helper()
	db := store.db.DB

	mustExec(t, db, `INSERT INTO Channels (Id, Name, Type) VALUES
		('town', 'town-square', 'O'),
		('priv', 'secret', 'P'),
		('dm1', 'u__m1', 'D'),
		('dm2', 'm2__u', 'D'),
		('dm3', 'm1__m2', 'D')`)

	mustExec(t, db, `INSERT INTO ChannelMembers (ChannelId, UserId, Roles, SchemeAdmin) VALUES
		('town', 'u', 'channel_user', 0),
		('town', 'm1', 'channel_user', 0),
		('priv', 'u', 'channel_user', 1),
		('priv', 'm1', 'channel_user', NULL),
		('priv', 'm2', 'channel_user channel_admin', 0),
		('dm1', 'u', '', NULL),
		('dm1', 'm1', '', NULL),
		('dm2', 'u', '', NULL),
		('dm2', 'm2', '', NULL),
		('dm3', 'm1', '', NULL),
		('dm3', 'm2', '', NULL)`)

	mustExec(t, db, `INSERT INTO ChannelMemberHistory (ChannelId, UserId, JoinTime, LeaveTime) VALUES
		('priv', 'u', 100, NULL),
		('priv', 'm1', 300, NULL),
		('priv', 'm2', 50, 60),
		('priv', 'm2', 200, NULL),
		('priv', 'm2', 250, NULL)`)
}

func TestSubscriptionStore(t *testing.T) {
	store, _ := setupStore(t)
	seedChannels(t, store)

	t.Run("subscriptions of a user", func(t *testing.T) {
		subs, err := store.GetSubscriptionsForUser("u")
		require.NoError(t, err)
		require.Len(t, subs, 4)

		byRoom := map[string]*app.Subscription{}
		for _, s := range subs {
			byRoom[s.RoomId] = s
		}
		assert.Equal(t, app.RoomTypeDirect, byRoom["dm1"].RoomType)
		assert.Equal(t, app.RoomTypeChannel, byRoom["town"].RoomType)
		assert.Equal(t, app.RoomTypeOther, byRoom["priv"].RoomType)
		assert.True(t, byRoom["priv"].HasRole(app.RoleOwner))
		assert.False(t, byRoom["town"].HasRole(app.RoleOwner))
	})

	t.Run("subscribers of a room in join order", func(t *testing.T) {
		subs, err := store.GetSubscriptionsForRoom("priv")
		require.NoError(t, err)

		var ids []string
		var joined []int64
		for _, s := range subs {
			ids = append(ids, s.UserId)
			joined = append(joined, s.JoinedAt)
		}
		// Left memberships do not count, the earliest open one does.
		assert.Equal(t, []string{"u", "m2", "m1"}, ids)
		assert.Equal(t, []int64{100, 200, 300}, joined)
		assert.True(t, subs[1].HasRole(app.RoleOwner))
		assert.False(t, subs[2].HasRole(app.RoleOwner))
	})

	t.Run("counts", func(t *testing.T) {
		n, err := store.CountSubscriptionsForRoom("priv")
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		n, err = store.CountSubscriptionsForUser("u")
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		n, err = store.CountSubscriptionsForRoom("nothing")
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("members without join history come last", func(t *testing.T) {
		db := store.db.DB
		mustExec(t, db, `INSERT INTO Channels (Id, Name, Type) VALUES ('late', 'late', 'P')`)
		mustExec(t, db, `INSERT INTO ChannelMembers (ChannelId, UserId, Roles, SchemeAdmin) VALUES
			('late', 'nohist', 'channel_user', 0),
			('late', 'early', 'channel_user', 0),
			('late', 'u', 'channel_user', 1)`)
		mustExec(t, db, `INSERT INTO ChannelMemberHistory (ChannelId, UserId, JoinTime, LeaveTime) VALUES
			('late', 'early', 10, NULL),
			('late', 'u', 20, NULL)`)

		subs, err := store.GetSubscriptionsForRoom("late")
		require.NoError(t, err)

		var ids []string
		for _, s := range subs {
			ids = append(ids, s.UserId)
		}
		assert.Equal(t, []string{"early", "u", "nohist"}, ids)

		successor, found := app.SelectSuccessor(subs, "u", map[string]bool{"early": true, "nohist": true})
		assert.True(t, found)
		assert.Equal(t, "early", successor)
	})
}

func TestRoleStore(t *testing.T) {
	store, _ := setupStore(t)
	seedChannels(t, store)

	owner, err := store.HasRole("u", app.RoleOwner, "priv")
	require.NoError(t, err)
	assert.True(t, owner)

	owner, err = store.HasRole("m1", app.RoleOwner, "priv")
	require.NoError(t, err)
	assert.False(t, owner)

	n, err := store.CountRoleHolders(app.RoleOwner, "priv")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, store.GrantRole("m1", app.RoleOwner, "priv"))
	require.NoError(t, store.GrantRole("m1", app.RoleOwner, "priv"))

	owner, err = store.HasRole("m1", app.RoleOwner, "priv")
	require.NoError(t, err)
	assert.True(t, owner)

	n, err = store.CountRoleHolders(app.RoleOwner, "priv")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	t.Run("only the owner role is known", func(t *testing.T) {
		_, err := store.HasRole("u", "moderator", "priv")
		assert.True(t, errors.Is(err, ErrUnsupportedRole))

		_, err = store.CountRoleHolders("moderator", "priv")
		assert.True(t, errors.Is(err, ErrUnsupportedRole))

		assert.True(t, errors.Is(store.GrantRole("u", "moderator", "priv"), ErrUnsupportedRole))
	})
}

func TestRoomStore(t *testing.T) {
	store, db := setupStore(t)
	seedChannels(t, store)

	t.Run("direct rooms of the user", func(t *testing.T) {
		// dm4 is a direct room the user already left, dm5 only looks alike to LIKE.
		mustExec(t, db, `INSERT INTO Channels (Id, Name, Type) VALUES
			('dm4', 'm3__u', 'D'),
			('dm5', 'm3xyu', 'D'),
			('grp', 'u__m1', 'G')`)

		ids, err := store.GetDirectRoomIdsForUser("u")
		require.NoError(t, err)
		assert.Equal(t, []string{"dm1", "dm2", "dm4"}, ids)

		ids, err = store.GetDirectRoomIdsForUser("nobody")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("room and its subscriptions", func(t *testing.T) {
		n, err := store.DeleteSubscriptionsForRoom("priv")
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		n, err = store.DeleteRoom("priv")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = store.DeleteRoom("priv")
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("subscriptions of the user", func(t *testing.T) {
		// town, dm1 and dm2 are left once priv is gone.
		n, err := store.DeleteSubscriptionsForUser("u")
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		cnt, err := store.CountSubscriptionsForUser("u")
		require.NoError(t, err)
		assert.Equal(t, 0, cnt)
	})
}
