package app

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mock_app

// UserStore reads and removes user accounts.
type UserStore interface {
	// GetUser returns ErrUserNotFound when no account has the id.
	GetUser(userId string) (*User, error)
	// GetActiveUserIds returns the subset of ids that exist and are active.
	GetActiveUserIds(userIds []string) (map[string]bool, error)
	DeleteUser(userId string) error
}

type SubscriptionStore interface {
	GetSubscriptionsForUser(userId string) ([]*Subscription, error)
	// GetSubscriptionsForRoom returns the members ordered by join time, earliest first.
	GetSubscriptionsForRoom(roomId string) ([]*Subscription, error)
	CountSubscriptionsForRoom(roomId string) (int, error)
	CountSubscriptionsForUser(userId string) (int, error)
	DeleteSubscriptionsForRoom(roomId string) (int64, error)
	DeleteSubscriptionsForUser(userId string) (int64, error)
}

// RoleStore is the room scoped role authority.
type RoleStore interface {
	HasRole(userId, role, roomId string) (bool, error)
	CountRoleHolders(role, roomId string) (int, error)
	GrantRole(userId, role, roomId string) error
}

type RoomStore interface {
	DeleteRoom(roomId string) (int64, error)
	// GetDirectRoomIdsForUser returns every direct room the user takes part in.
	GetDirectRoomIdsForUser(userId string) ([]string, error)
}

type MessageStore interface {
	// GetFilesForUser returns the files attached to messages authored by the user.
	GetFilesForUser(userId string) ([]*FileRef, error)
	GetFilesForRoom(roomId string) ([]*FileRef, error)
	DeleteFileInfos(fileIds []string) (int64, error)
	DeleteMessagesForUser(userId string) (int64, error)
	DeleteMessagesForRoom(roomId string) (int64, error)
	// UnlinkMessagesForUser re-attributes the messages of the user, keeping their bodies.
	UnlinkMessagesForUser(userId, newUserId, alias string) (int64, error)
}

type IntegrationStore interface {
	// DisableIntegrationsForUser disables the hooks owned by the user. The rows are kept.
	DisableIntegrationsForUser(userId string) (int64, error)
}

// BlobStore removes stored blobs. Removing a missing blob is not an error.
type BlobStore interface {
	RemoveUpload(file *FileRef) error
	RemoveAvatar(user *User) error
}

// Notifier publishes events to connected clients without waiting for delivery.
type Notifier interface {
	NotifyUserDeleted(userId string)
}

// FederationRegistry is the process wide cache of known federated servers.
type FederationRegistry interface {
	Refresh() error
	Servers() []string
}

// IntentStore persists deletion intents so a failed deletion can be resumed.
type IntentStore interface {
	Save(intent *DeletionIntent) error
	// Get returns nil without error when no intent exists for the user.
	Get(userId string) (*DeletionIntent, error)
	Delete(userId string) error
	List() ([]*DeletionIntent, error)
}

// Stores groups the repositories the deletion works with. A single SQL store usually
// implements all of them.
type Stores struct {
	Users         UserStore
	Subscriptions SubscriptionStore
	Roles         RoleStore
	Rooms         RoomStore
	Messages      MessageStore
	Integrations  IntegrationStore
}
