package bot

import (
	"github.com/mattermost/mattermost-server/v6/model"
)

//go:generate mockgen -destination=mocks/mock_bot.go -package=mock_bot github.com/ericzzh/mattermost-plugin-offboard/server/bot Poster,Logger

// UserDeletedEvent is published to every connected client once a user is gone.
const UserDeletedEvent = "user_deleted"

// Poster interface - a small subset of the plugin posting API.
type Poster interface {
	// EphemeralPost sends an ephemeral message to a user from the plugin bot.
	EphemeralPost(userID, channelID string, post *model.Post)
}

// EphemeralPost sends an ephemeral message to a user.
func (b *Bot) EphemeralPost(userID, channelID string, post *model.Post) {
	post.UserId = b.botUserID
	post.ChannelId = channelID

	b.pluginAPI.Post.SendEphemeralPost(userID, post)
}

// NotifyUserDeleted broadcasts the user_deleted websocket event. It does not wait for delivery.
func (b *Bot) NotifyUserDeleted(userID string) {
	b.pluginAPI.Frontend.PublishWebSocketEvent(UserDeletedEvent, map[string]interface{}{
		"user_id": userID,
	}, &model.WebsocketBroadcast{})
}
