package sqlstore

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/pkg/errors"
)

// ErrUnsupportedRole is returned for room roles other than app.RoleOwner.
var ErrUnsupportedRole = errors.New("unsupported role")

const channelAdminRole = "channel_admin"

type subscriptionRow struct {
	ChannelId   string
	UserId      string
	Type        string
	Roles       string
	SchemeAdmin bool
	JoinTime    int64
}

func (r *subscriptionRow) toSubscription() *app.Subscription {
	s := &app.Subscription{
		RoomId:   r.ChannelId,
		RoomType: roomType(model.ChannelType(r.Type)),
		UserId:   r.UserId,
		Roles:    strings.Fields(r.Roles),
		JoinedAt: r.JoinTime,
	}
	if r.SchemeAdmin || s.HasRole(channelAdminRole) {
		s.Roles = append(s.Roles, app.RoleOwner)
	}
	return s
}

func roomType(t model.ChannelType) app.RoomType {
	switch t {
	case model.ChannelTypeDirect:
		return app.RoomTypeDirect
	case model.ChannelTypeOpen:
		return app.RoomTypeChannel
	default:
		return app.RoomTypeOther
	}
}

// ownerCond matches the memberships holding the owner role.
var ownerCond = sq.Or{
	sq.Eq{"SchemeAdmin": true},
	sq.Like{"Roles": "%" + channelAdminRole + "%"},
}

func (sqlStore *SQLStore) subscriptionsQuery() sq.SelectBuilder {
	return sqlStore.builder.
		Select(
			"cm.ChannelId AS ChannelId",
			"cm.UserId AS UserId",
			"c.Type AS Type",
			"cm.Roles AS Roles",
			"COALESCE(cm.SchemeAdmin, FALSE) AS SchemeAdmin",
			"COALESCE(MIN(h.JoinTime), 0) AS JoinTime",
		).
		From("ChannelMembers cm").
		Join("Channels c ON c.Id = cm.ChannelId").
		LeftJoin("ChannelMemberHistory h ON h.ChannelId = cm.ChannelId AND h.UserId = cm.UserId AND h.LeaveTime IS NULL").
		GroupBy("cm.ChannelId", "cm.UserId", "c.Type", "cm.Roles", "cm.SchemeAdmin")
}

func (sqlStore *SQLStore) getSubscriptions(query sq.SelectBuilder) ([]*app.Subscription, error) {
	var rows []subscriptionRow
	if err := sqlStore.selectBuilder(sqlStore.db, &rows, query); err != nil {
		return nil, err
	}

	subs := make([]*app.Subscription, 0, len(rows))
	for i := range rows {
		subs = append(subs, rows[i].toSubscription())
	}
	return subs, nil
}

func (sqlStore *SQLStore) GetSubscriptionsForUser(userId string) ([]*app.Subscription, error) {
	subs, err := sqlStore.getSubscriptions(sqlStore.subscriptionsQuery().
		Where(sq.Eq{"cm.UserId": userId}).
		OrderBy("cm.ChannelId ASC"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get subscriptions of user %s", userId)
	}
	return subs, nil
}

// GetSubscriptionsForRoom returns the members of the room, the earliest joined first. Members
// without a join record come last.
func (sqlStore *SQLStore) GetSubscriptionsForRoom(roomId string) ([]*app.Subscription, error) {
	subs, err := sqlStore.getSubscriptions(sqlStore.subscriptionsQuery().
		Where(sq.Eq{"cm.ChannelId": roomId}).
		OrderBy("MIN(h.JoinTime) IS NULL", "JoinTime ASC", "cm.UserId ASC"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get subscriptions of room %s", roomId)
	}
	return subs, nil
}

func (sqlStore *SQLStore) countMembers(cond sq.Sqlizer) (int, error) {
	var n int
	query := sqlStore.builder.Select("COUNT(*)").From("ChannelMembers").Where(cond)
	if err := sqlStore.getBuilder(sqlStore.db, &n, query); err != nil {
		return 0, err
	}
	return n, nil
}

func (sqlStore *SQLStore) CountSubscriptionsForRoom(roomId string) (int, error) {
	n, err := sqlStore.countMembers(sq.Eq{"ChannelId": roomId})
	return n, errors.Wrapf(err, "failed to count subscriptions of room %s", roomId)
}

func (sqlStore *SQLStore) CountSubscriptionsForUser(userId string) (int, error) {
	n, err := sqlStore.countMembers(sq.Eq{"UserId": userId})
	return n, errors.Wrapf(err, "failed to count subscriptions of user %s", userId)
}

func (sqlStore *SQLStore) DeleteSubscriptionsForRoom(roomId string) (int64, error) {
	rc, err := sqlStore.execAffected(sqlStore.db, sqlStore.builder.Delete("ChannelMembers").Where(sq.Eq{"ChannelId": roomId}))
	return rc, errors.Wrapf(err, "failed to delete subscriptions of room %s", roomId)
}

func (sqlStore *SQLStore) DeleteSubscriptionsForUser(userId string) (int64, error) {
	rc, err := sqlStore.execAffected(sqlStore.db, sqlStore.builder.Delete("ChannelMembers").Where(sq.Eq{"UserId": userId}))
	return rc, errors.Wrapf(err, "failed to delete subscriptions of user %s", userId)
}

func (sqlStore *SQLStore) HasRole(userId, role, roomId string) (bool, error) {
	if role != app.RoleOwner {
		return false, errors.Wrap(ErrUnsupportedRole, role)
	}

	n, err := sqlStore.countMembers(sq.And{sq.Eq{"ChannelId": roomId, "UserId": userId}, ownerCond})
	if err != nil {
		return false, errors.Wrapf(err, "failed to check role %s of user %s in room %s", role, userId, roomId)
	}
	return n > 0, nil
}

func (sqlStore *SQLStore) CountRoleHolders(role, roomId string) (int, error) {
	if role != app.RoleOwner {
		return 0, errors.Wrap(ErrUnsupportedRole, role)
	}

	n, err := sqlStore.countMembers(sq.And{sq.Eq{"ChannelId": roomId}, ownerCond})
	return n, errors.Wrapf(err, "failed to count holders of role %s in room %s", role, roomId)
}

// GrantRole makes the member an owner. Granting twice is harmless.
func (sqlStore *SQLStore) GrantRole(userId, role, roomId string) error {
	if role != app.RoleOwner {
		return errors.Wrap(ErrUnsupportedRole, role)
	}

	query := sqlStore.builder.
		Update("ChannelMembers").
		Set("SchemeAdmin", true).
		Where(sq.Eq{"ChannelId": roomId, "UserId": userId})
	if _, err := sqlStore.execBuilder(sqlStore.db, query); err != nil {
		return errors.Wrapf(err, "failed to grant role %s to user %s in room %s", role, userId, roomId)
	}
	return nil
}

func (sqlStore *SQLStore) DeleteRoom(roomId string) (int64, error) {
	rc, err := sqlStore.execAffected(sqlStore.db, sqlStore.builder.Delete("Channels").Where(sq.Eq{"Id": roomId}))
	return rc, errors.Wrapf(err, "failed to delete room %s", roomId)
}

// GetDirectRoomIdsForUser returns the direct message rooms the user takes part in, whether or
// not the user is still subscribed. Direct rooms are named after both of their members.
func (sqlStore *SQLStore) GetDirectRoomIdsForUser(userId string) ([]string, error) {
	// '_' matches any character in LIKE, the names are checked exactly below.
	query := sqlStore.builder.
		Select("Id", "Name").
		From("Channels").
		Where(sq.Eq{"Type": string(model.ChannelTypeDirect)}).
		Where(sq.Or{
			sq.Like{"Name": userId + "__%"},
			sq.Like{"Name": "%__" + userId},
		}).
		OrderBy("Id ASC")

	var rows []struct {
		Id   string
		Name string
	}
	if err := sqlStore.selectBuilder(sqlStore.db, &rows, query); err != nil {
		return nil, errors.Wrapf(err, "failed to get direct rooms of user %s", userId)
	}

	ids := []string{}
	for _, r := range rows {
		if strings.HasPrefix(r.Name, userId+"__") || strings.HasSuffix(r.Name, "__"+userId) {
			ids = append(ids, r.Id)
		}
	}
	return ids, nil
}
