package sqlstore

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type userRow struct {
	Id                string
	Username          string
	DeleteAt          int64
	LastPictureUpdate int64
	RemoteId          string
}

func (r *userRow) toUser() *app.User {
	u := &app.User{
		Id:               r.Id,
		Username:         r.Username,
		FederationMarker: r.RemoteId,
		Active:           r.DeleteAt == 0,
	}
	if r.LastPictureUpdate > 0 {
		u.Avatar = app.AvatarOriginUpload
	}
	return u
}

// userTables are cleared together with the user record.
var userTables = []string{"Sessions", "Preferences", "TeamMembers"}

// GetUser gets the user, app.ErrUserNotFound when there is none.
func (sqlStore *SQLStore) GetUser(userId string) (*app.User, error) {
	query := sqlStore.builder.
		Select("Id", "Username", "DeleteAt", "LastPictureUpdate", "COALESCE(RemoteId, '') AS RemoteId").
		From("Users").
		Where(sq.Eq{"Id": userId})

	var row userRow
	err := sqlStore.getBuilder(sqlStore.db, &row, query)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w user:%v", app.ErrUserNotFound, userId)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get user %s", userId)
	}

	return row.toUser(), nil
}

func (sqlStore *SQLStore) GetActiveUserIds(userIds []string) (map[string]bool, error) {
	active := map[string]bool{}
	if len(userIds) == 0 {
		return active, nil
	}

	query := sqlStore.builder.
		Select("Id").
		From("Users").
		Where(sq.Eq{"Id": userIds, "DeleteAt": 0})

	var ids []string
	if err := sqlStore.selectBuilder(sqlStore.db, &ids, query); err != nil {
		return nil, errors.Wrap(err, "failed to get active users")
	}

	for _, id := range ids {
		active[id] = true
	}
	return active, nil
}

// DeleteUser removes the user record and the rows that only make sense with it.
func (sqlStore *SQLStore) DeleteUser(userId string) error {
	return sqlStore.inTransaction(func(tx *sqlx.Tx) error {
		for _, table := range userTables {
			if _, err := sqlStore.execBuilder(tx, sqlStore.builder.Delete(table).Where(sq.Eq{"UserId": userId})); err != nil {
				return errors.Wrapf(err, "failed to delete %s of user %s", table, userId)
			}
		}

		if _, err := sqlStore.execBuilder(tx, sqlStore.builder.Delete("Users").Where(sq.Eq{"Id": userId})); err != nil {
			return errors.Wrapf(err, "failed to delete user %s", userId)
		}
		return nil
	})
}
