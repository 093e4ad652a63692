package sqlstore

import (
	"testing"

	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentStore(t *testing.T) {
	store, db := setupStore(t)
	intents := NewIntentStore(store, "com.example.offboard")

	got, err := intents.Get("u")
	require.NoError(t, err)
	assert.Nil(t, got)

	intent := &app.DeletionIntent{
		UserId:  "u",
		Options: app.Options{Mode: app.ErasureDelete},
		Plan: &app.Plan{
			User:  &app.User{Id: "u", Username: "uname", Active: true},
			Rooms: []*app.RoomPlan{{RoomId: "r", RoomType: app.RoomTypeOther, Subscribers: 2, NewOwnerId: "m"}},
		},
		StartedAt: 10,
		UpdatedAt: 10,
	}
	require.NoError(t, intents.Save(intent))

	intent.Completed = []app.Step{app.StepTransferOwnership}
	intent.UpdatedAt = 20
	require.NoError(t, intents.Save(intent))
	require.NoError(t, intents.Save(&app.DeletionIntent{UserId: "v", Plan: &app.Plan{User: &app.User{Id: "v"}}}))

	// Other plugin keys are not intents.
	mustExec(t, db, `INSERT INTO PluginKeyValueStore (PluginId, PKey, PValue) VALUES ('com.example.offboard', 'settings', 'x')`)
	mustExec(t, db, `INSERT INTO PluginKeyValueStore (PluginId, PKey, PValue) VALUES ('other', ?, 'x')`, app.IntentKey("w"))

	got, err = intents.Get("u")
	require.NoError(t, err)
	assert.Equal(t, intent, got)

	list, err := intents.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "u", list[0].UserId)
	assert.Equal(t, "v", list[1].UserId)

	require.NoError(t, intents.Delete("u"))
	got, err = intents.Get("u")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, intents.Delete("u"))
}
