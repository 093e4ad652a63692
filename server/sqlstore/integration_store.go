package sqlstore

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/pkg/errors"
)

// integrationOwners maps the integration tables to the column naming their creator.
var integrationOwners = []struct {
	table  string
	column string
}{
	{"IncomingWebhooks", "UserId"},
	{"OutgoingWebhooks", "CreatorId"},
	{"Commands", "CreatorId"},
}

// DisableIntegrationsForUser soft deletes the webhooks and slash commands the user created.
// Integrations that are already disabled are left alone.
func (sqlStore *SQLStore) DisableIntegrationsForUser(userId string) (int64, error) {
	var disabled int64
	now := model.GetMillis()

	err := sqlStore.inTransaction(func(tx *sqlx.Tx) error {
		for _, o := range integrationOwners {
			query := sqlStore.builder.
				Update(o.table).
				Set("DeleteAt", now).
				Set("UpdateAt", now).
				Where(sq.Eq{o.column: userId, "DeleteAt": 0})

			rc, err := sqlStore.execAffected(tx, query)
			if err != nil {
				return errors.Wrapf(err, "failed to disable %s", o.table)
			}
			disabled += rc
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to disable integrations of user %s", userId)
	}

	return disabled, nil
}
