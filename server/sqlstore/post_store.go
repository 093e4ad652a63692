package sqlstore

import (
	"database/sql"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	"github.com/jmoiron/sqlx"
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/pkg/errors"
)

type fileRow struct {
	Id            string
	PostId        string
	ChannelId     string
	Path          string
	ThumbnailPath string
	PreviewPath   string
}

type postPropsRow struct {
	Id    string
	Props sql.NullString
}

func (sqlStore *SQLStore) filesQuery() sq.SelectBuilder {
	return sqlStore.builder.
		Select(
			"f.Id AS Id",
			"f.PostId AS PostId",
			"p.ChannelId AS ChannelId",
			"f.Path AS Path",
			"f.ThumbnailPath AS ThumbnailPath",
			"f.PreviewPath AS PreviewPath",
		).
		From("FileInfo f").
		Join("Posts p ON p.Id = f.PostId").
		OrderBy("f.Id ASC")
}

func (sqlStore *SQLStore) getFiles(query sq.SelectBuilder) ([]*app.FileRef, error) {
	var rows []fileRow
	if err := sqlStore.selectBuilder(sqlStore.db, &rows, query); err != nil {
		return nil, err
	}

	files := make([]*app.FileRef, 0, len(rows))
	for _, r := range rows {
		files = append(files, &app.FileRef{
			Id:            r.Id,
			MessageId:     r.PostId,
			RoomId:        r.ChannelId,
			Path:          r.Path,
			ThumbnailPath: r.ThumbnailPath,
			PreviewPath:   r.PreviewPath,
		})
	}
	return files, nil
}

// GetFilesForUser returns the files attached to the messages the user sent.
func (sqlStore *SQLStore) GetFilesForUser(userId string) ([]*app.FileRef, error) {
	files, err := sqlStore.getFiles(sqlStore.filesQuery().Where(sq.Eq{"p.UserId": userId}))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get files of user %s", userId)
	}
	return files, nil
}

// GetFilesForRoom returns the files attached to the messages of the room.
func (sqlStore *SQLStore) GetFilesForRoom(roomId string) ([]*app.FileRef, error) {
	files, err := sqlStore.getFiles(sqlStore.filesQuery().Where(sq.Eq{"p.ChannelId": roomId}))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get files of room %s", roomId)
	}
	return files, nil
}

func (sqlStore *SQLStore) DeleteFileInfos(fileIds []string) (int64, error) {
	if len(fileIds) == 0 {
		return 0, nil
	}

	rc, err := sqlStore.execAffected(sqlStore.db, sqlStore.builder.Delete("FileInfo").Where(sq.Eq{"Id": fileIds}))
	return rc, errors.Wrap(err, "failed to delete file infos")
}

func (sqlStore *SQLStore) DeleteMessagesForUser(userId string) (int64, error) {
	rc, err := sqlStore.execAffected(sqlStore.db, sqlStore.builder.Delete("Posts").Where(sq.Eq{"UserId": userId}))
	return rc, errors.Wrapf(err, "failed to delete messages of user %s", userId)
}

func (sqlStore *SQLStore) DeleteMessagesForRoom(roomId string) (int64, error) {
	rc, err := sqlStore.execAffected(sqlStore.db, sqlStore.builder.Delete("Posts").Where(sq.Eq{"ChannelId": roomId}))
	return rc, errors.Wrapf(err, "failed to delete messages of room %s", roomId)
}

// UnlinkMessagesForUser hands the messages of the user over to newUserId and shows them
// under alias.
func (sqlStore *SQLStore) UnlinkMessagesForUser(userId, newUserId, alias string) (int64, error) {
	var unlinked int64

	err := sqlStore.inTransaction(func(tx *sqlx.Tx) error {
		var rows []postPropsRow
		query := sqlStore.builder.
			Select("Id", "Props").
			From("Posts").
			Where(sq.Eq{"UserId": userId})
		if err := sqlStore.selectBuilder(tx, &rows, query); err != nil {
			return errors.Wrap(err, "failed to get messages")
		}

		for _, row := range rows {
			props, err := unlinkedProps(row.Props.String, alias)
			if err != nil {
				return errors.Wrapf(err, "failed to rewrite props of message %s", row.Id)
			}

			update := sqlStore.builder.
				Update("Posts").
				Set("UserId", newUserId).
				Set("Props", props).
				Set("UpdateAt", model.GetMillis()).
				Where(sq.Eq{"Id": row.Id})
			if _, err := sqlStore.execBuilder(tx, update); err != nil {
				return errors.Wrapf(err, "failed to unlink message %s", row.Id)
			}
			unlinked++
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to unlink messages of user %s", userId)
	}

	return unlinked, nil
}

// unlinkedProps sets the display name override on the serialized message props.
func unlinkedProps(raw, alias string) (string, error) {
	props := model.StringInterface{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &props); err != nil {
			return "", err
		}
	}
	if props == nil {
		props = model.StringInterface{}
	}
	props["override_username"] = alias

	b, err := json.Marshal(props)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
