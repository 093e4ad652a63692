package app

import (
	"time"
)

type AvatarOrigin string

const (
	AvatarOriginNone   AvatarOrigin = ""
	AvatarOriginUpload AvatarOrigin = "upload"
	AvatarOriginURL    AvatarOrigin = "url"
)

// User is the projection of an account the deletion works with.
type User struct {
	Id       string
	Username string
	Avatar   AvatarOrigin
	// FederationMarker is the remote server the account is linked with, empty for local users.
	FederationMarker string
	Active           bool
}

// HasUsername reports whether the account ever became usable. Accounts without a username
// own no rooms or messages, so the room cascade and the message erasure are skipped.
func (u *User) HasUsername() bool {
	return u.Username != ""
}

// IsFederated reports whether the account is mirrored from or to a remote server.
func (u *User) IsFederated() bool {
	return u.FederationMarker != ""
}

// HasAvatar reports whether an avatar blob exists for the account. Only uploaded or linked
// avatars are stored, and they are found by username.
func (u *User) HasAvatar() bool {
	return u.HasUsername() && (u.Avatar == AvatarOriginUpload || u.Avatar == AvatarOriginURL)
}

type RoomType string

const (
	RoomTypeDirect  RoomType = "direct"
	RoomTypeChannel RoomType = "channel"
	RoomTypeOther   RoomType = "other"
)

// RoleOwner is the room scoped role that keeps a room managed.
const RoleOwner = "owner"

// Subscription is the membership of a user in a room.
type Subscription struct {
	RoomId   string
	RoomType RoomType
	UserId   string
	Roles    []string
	// JoinedAt is in milliseconds.
	JoinedAt int64
}

func (s *Subscription) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// FileRef is an uploaded file attached to a message.
type FileRef struct {
	Id            string
	MessageId     string
	RoomId        string
	Path          string
	ThumbnailPath string
	PreviewPath   string
}

// Paths returns the non empty blob paths of the file.
func (f *FileRef) Paths() []string {
	paths := []string{}
	for _, p := range []string{f.Path, f.ThumbnailPath, f.PreviewPath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func fileIds(files []*FileRef) []string {
	ids := make([]string, 0, len(files))
	for _, f := range files {
		ids = append(ids, f.Id)
	}
	return ids
}

type RemovalReason string

const (
	RemovalNone        RemovalReason = ""
	RemovalDirect      RemovalReason = "direct"
	RemovalSoleMember  RemovalReason = "sole_member"
	RemovalNoSuccessor RemovalReason = "no_successor"
)

// SubscribersUnknown marks a room whose members were not counted.
const SubscribersUnknown = -1

// RoomPlan is the decision taken for one room the user is subscribed to.
type RoomPlan struct {
	RoomId      string
	RoomType    RoomType
	Subscribers int
	// NewOwnerId is set when the user was the sole owner and a successor was found.
	NewOwnerId string
	Remove     RemovalReason
}

func (rp *RoomPlan) IsRemoved() bool {
	return rp.Remove != RemovalNone
}

// Plan is the full set of decisions for a user deletion. It is computed before any mutation
// and stored with the deletion intent, so a resumed deletion uses the same decisions.
type Plan struct {
	User  *User
	Rooms []*RoomPlan
}

// Transfers maps room id to the new owner id.
func (p *Plan) Transfers() map[string]string {
	t := map[string]string{}
	for _, r := range p.Rooms {
		if r.NewOwnerId != "" {
			t[r.RoomId] = r.NewOwnerId
		}
	}
	return t
}

// RoomsToRemove lists the rooms deleted together with the user, in subscription order.
func (p *Plan) RoomsToRemove() []string {
	ids := []string{}
	for _, r := range p.Rooms {
		if r.IsRemoved() {
			ids = append(ids, r.RoomId)
		}
	}
	return ids
}

// Stats counts the rows and blobs touched by a deletion run.
type Stats struct {
	OwnershipTransfers   int
	MessagesRemoved      int64
	MessagesUnlinked     int64
	FilesRemoved         int
	RoomsRemoved         int
	RoomSubscriptions    int64
	RoomMessages         int64
	UserSubscriptions    int64
	DirectRoomsRemoved   int64
	AvatarRemoved        bool
	IntegrationsDisabled int64
}

// Result reports a deletion run.
type Result struct {
	UserId    string
	Username  string
	Mode      ErasureMode
	Transfers map[string]string
	Removed   []string
	Resumed   bool
	Stats     Stats
	Elapsed   time.Duration
}
