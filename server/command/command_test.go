package command

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	mock_app "github.com/ericzzh/mattermost-plugin-offboard/server/app/mocks"
	mock_bot "github.com/ericzzh/mattermost-plugin-offboard/server/bot/mocks"
	"github.com/ericzzh/mattermost-plugin-offboard/server/config"
	mock_config "github.com/ericzzh/mattermost-plugin-offboard/server/config/mocks"
	gomock "github.com/golang/mock/gomock"
	pluginapi "github.com/mattermost/mattermost-plugin-api"
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/mattermost/mattermost-server/v6/plugin"
	"github.com/mattermost/mattermost-server/v6/plugin/plugintest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct {
	t *testing.T
}

func (l testLogger) Debugf(format string, args ...interface{}) { l.t.Logf("DEBUG "+format, args...) }
func (l testLogger) Errorf(format string, args ...interface{}) { l.t.Logf("ERROR "+format, args...) }
func (l testLogger) Warnf(format string, args ...interface{})  { l.t.Logf("WARN "+format, args...) }
func (l testLogger) Infof(format string, args ...interface{})  { l.t.Logf("INFO "+format, args...) }

type commandHarness struct {
	api        *plugintest.API
	poster     *mock_bot.MockPoster
	config     *mock_config.MockService
	service    *mock_app.MockDeletionService
	federation *mock_app.MockFederationRegistry
	posted     []string
	t          *testing.T
}

func newCommandHarness(t *testing.T) *commandHarness {
	ctrl := gomock.NewController(t)

	h := &commandHarness{
		api:        &plugintest.API{},
		poster:     mock_bot.NewMockPoster(ctrl),
		config:     mock_config.NewMockService(ctrl),
		service:    mock_app.NewMockDeletionService(ctrl),
		federation: mock_app.NewMockFederationRegistry(ctrl),
		t:          t,
	}

	h.poster.EXPECT().EphemeralPost("admin_id", "channel_id", gomock.Any()).
		Do(func(_, _ string, post *model.Post) {
			h.posted = append(h.posted, post.Message)
		}).AnyTimes()

	t.Cleanup(func() { h.api.AssertExpectations(t) })
	return h
}

func (h *commandHarness) asAdmin() *commandHarness {
	h.api.On("GetUser", "admin_id").Return(&model.User{Id: "admin_id", Roles: "system_user system_admin"}, nil)
	return h
}

func (h *commandHarness) withUser(username, id string) *commandHarness {
	h.api.On("GetUserByUsername", username).Return(&model.User{Id: id, Username: username}, nil)
	return h
}

func (h *commandHarness) withoutUser(username string) *commandHarness {
	h.api.On("GetUserByUsername", username).Return(nil,
		model.NewAppError("GetUserByUsername", "app.user.missing", nil, "", http.StatusNotFound))
	return h
}

func (h *commandHarness) run(command string) []string {
	runner := NewCommandRunner(&plugin.Context{},
		&model.CommandArgs{Command: command, UserId: "admin_id", ChannelId: "channel_id"},
		pluginapi.NewClient(h.api, &plugintest.Driver{}),
		testLogger{h.t},
		h.poster,
		h.config,
		h.service,
		h.federation,
	)
	require.NoError(h.t, runner.Execute())
	return h.posted
}

var defaultConfig = &config.Configuration{
	BotUserID:        "bot_id",
	ErasureMode:      config.ErasureModeDelete,
	RemovedUserAlias: config.DefaultRemovedUserAlias,
}

func TestRegisterCommands(t *testing.T) {
	var registered *model.Command
	require.NoError(t, RegisterCommands(func(c *model.Command) error {
		registered = c
		return nil
	}))
	assert.Equal(t, "offboard", registered.Trigger)
	assert.Len(t, registered.AutocompleteData.SubCommands, 6)
}

func TestExecute(t *testing.T) {
	t.Run("invalid runner", func(t *testing.T) {
		runner := NewCommandRunner(nil, nil, nil, nil, nil, nil, nil, nil)
		assert.Error(t, runner.Execute())
	})

	t.Run("other triggers are ignored", func(t *testing.T) {
		h := newCommandHarness(t)
		assert.Empty(t, h.run("/echo hello"))
	})

	t.Run("help needs no permission", func(t *testing.T) {
		h := newCommandHarness(t)
		posted := h.run("/offboard")
		require.Len(t, posted, 1)
		assert.Equal(t, helpText, posted[0])
	})

	t.Run("unknown sub command shows help", func(t *testing.T) {
		h := newCommandHarness(t).asAdmin()
		assert.Equal(t, []string{helpText}, h.run("/offboard shred alice"))
	})

	t.Run("only system admins", func(t *testing.T) {
		h := newCommandHarness(t)
		h.api.On("GetUser", "admin_id").Return(&model.User{Id: "admin_id", Roles: "system_user"}, nil)
		assert.Equal(t, []string{"You don't have permission to run this command."}, h.run("/offboard delete alice"))
	})
}

func TestPlanCommand(t *testing.T) {
	t.Run("plan", func(t *testing.T) {
		h := newCommandHarness(t).asAdmin().withUser("alice", "alice_id")
		h.service.EXPECT().Plan("alice_id").Return(&app.Plan{
			User: &app.User{Id: "alice_id", Username: "alice"},
			Rooms: []*app.RoomPlan{
				{RoomId: "r1", RoomType: app.RoomTypeOther, Subscribers: 2, NewOwnerId: "bob_id"},
				{RoomId: "r2", RoomType: app.RoomTypeDirect, Subscribers: app.SubscribersUnknown, Remove: app.RemovalDirect},
			},
		}, nil)

		posted := h.run("/offboard plan @alice")
		require.Len(t, posted, 1)
		assert.Contains(t, posted[0], "Deleting @alice would transfer 1 rooms and remove 1 rooms.")
		assert.NotContains(t, posted[0], "@@")
		assert.Contains(t, posted[0], `"NewOwnerId": "bob_id"`)
	})

	t.Run("missing username", func(t *testing.T) {
		h := newCommandHarness(t).asAdmin()
		posted := h.run("/offboard plan")
		assert.Contains(t, posted[0], "Please specify the username.")
	})

	t.Run("unknown user", func(t *testing.T) {
		h := newCommandHarness(t).asAdmin().withoutUser("nobody")
		posted := h.run("/offboard plan nobody")
		assert.Contains(t, posted[0], "`error-user-not-found`")
	})
}

func TestDeleteCommand(t *testing.T) {
	t.Run("configured mode", func(t *testing.T) {
		h := newCommandHarness(t).asAdmin().withUser("alice", "alice_id")
		h.config.EXPECT().GetConfiguration().Return(defaultConfig)
		h.service.EXPECT().DeleteUser("alice_id", app.Options{
			Mode:             app.ErasureDelete,
			SystemUserId:     "bot_id",
			RemovedUserAlias: "Removed User",
		}).Return(&app.Result{UserId: "alice_id", Username: "alice", Mode: app.ErasureDelete}, nil)

		posted := h.run("/offboard delete alice")
		assert.Contains(t, posted[0], "Deleted @alice successfully.")
	})

	t.Run("mention of the user", func(t *testing.T) {
		h := newCommandHarness(t).asAdmin().withUser("alice", "alice_id")
		h.config.EXPECT().GetConfiguration().Return(defaultConfig)
		h.service.EXPECT().DeleteUser("alice_id", gomock.Any()).
			Return(&app.Result{UserId: "alice_id", Username: "alice", Mode: app.ErasureDelete}, nil)

		posted := h.run("/offboard delete @alice")
		assert.Contains(t, posted[0], "Deleted @alice successfully.")
		assert.NotContains(t, posted[0], "@@")
	})

	t.Run("mode argument overrides the setting", func(t *testing.T) {
		h := newCommandHarness(t).asAdmin().withUser("alice", "alice_id")
		h.config.EXPECT().GetConfiguration().Return(defaultConfig)
		h.service.EXPECT().DeleteUser("alice_id", app.Options{
			Mode:             app.ErasureUnlink,
			SystemUserId:     "bot_id",
			RemovedUserAlias: "Removed User",
		}).Return(&app.Result{UserId: "alice_id", Mode: app.ErasureUnlink}, nil)

		h.run("/offboard delete alice Unlink")
		assert.Equal(t, config.ErasureModeDelete, defaultConfig.ErasureMode)
	})

	t.Run("invalid mode", func(t *testing.T) {
		h := newCommandHarness(t).asAdmin()
		h.config.EXPECT().GetConfiguration().Return(defaultConfig)

		posted := h.run("/offboard delete alice Shred")
		assert.Contains(t, posted[0], "`error-invalid-erasure-mode`")
	})

	t.Run("federated user", func(t *testing.T) {
		h := newCommandHarness(t).asAdmin().withUser("fed", "fed_id")
		h.config.EXPECT().GetConfiguration().Return(defaultConfig)
		h.service.EXPECT().DeleteUser("fed_id", gomock.Any()).
			Return(nil, fmt.Errorf("%w user:fed_id subscriptions:2", app.ErrFederationConstraintViolation))

		posted := h.run("/offboard delete fed")
		assert.Contains(t, posted[0], "Deleting failed. `FEDERATION_Error_user_is_federated_on_rooms`")
	})

	t.Run("not yourself", func(t *testing.T) {
		h := newCommandHarness(t).asAdmin().withUser("admin", "admin_id")
		h.config.EXPECT().GetConfiguration().Return(defaultConfig)

		assert.Equal(t, []string{"You can't delete yourself."}, h.run("/offboard delete admin"))
	})
}

func TestResumeCommand(t *testing.T) {
	t.Run("by id of a removed user", func(t *testing.T) {
		id := model.NewId()
		h := newCommandHarness(t).asAdmin().withoutUser(id)
		h.service.EXPECT().Resume(id).Return(&app.Result{UserId: id, Resumed: true}, nil)

		posted := h.run("/offboard resume " + id)
		assert.Contains(t, posted[0], "Resumed deletion of "+id+" successfully.")
	})

	t.Run("nothing to resume", func(t *testing.T) {
		h := newCommandHarness(t).asAdmin().withUser("alice", "alice_id")
		h.service.EXPECT().Resume("alice_id").Return(nil, fmt.Errorf("%w user:alice_id", app.ErrNoDeletionIntent))

		posted := h.run("/offboard resume alice")
		assert.Contains(t, posted[0], "`error-no-deletion-intent`")
	})
}

func TestPendingCommand(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		h := newCommandHarness(t).asAdmin()
		h.service.EXPECT().PendingIntents().Return([]*app.DeletionIntent{}, nil)
		assert.Equal(t, []string{"No deletion in progress."}, h.run("/offboard pending"))
	})

	t.Run("listed with their pending steps", func(t *testing.T) {
		h := newCommandHarness(t).asAdmin()
		h.service.EXPECT().PendingIntents().Return([]*app.DeletionIntent{{
			UserId:    "alice_id",
			Options:   app.Options{Mode: app.ErasureDelete},
			Plan:      &app.Plan{User: &app.User{Id: "alice_id", Username: "alice"}},
			Completed: app.Steps()[:len(app.Steps())-1],
			LastError: "websocket down",
		}}, nil)

		posted := h.run("/offboard pending")
		assert.Contains(t, posted[0], "1 deletions did not finish.")
		assert.Contains(t, posted[0], `"Username": "alice"`)
		assert.Contains(t, posted[0], `"notify"`)
		assert.Contains(t, posted[0], "websocket down")
	})
}

func TestPeersCommand(t *testing.T) {
	h := newCommandHarness(t).asAdmin()
	gomock.InOrder(
		h.federation.EXPECT().Refresh().Return(nil),
		h.federation.EXPECT().Servers().Return([]string{"remote1", "remote2"}),
	)

	assert.Equal(t, []string{"Federated servers:\n* remote1\n* remote2"}, h.run("/offboard peers"))
}
