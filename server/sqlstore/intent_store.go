package sqlstore

import (
	"database/sql"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// IntentStore keeps deletion intents in the plugin key value table, so that the command
// line tool and the plugin see the same intents.
type IntentStore struct {
	store    *SQLStore
	pluginId string
}

func NewIntentStore(store *SQLStore, pluginId string) *IntentStore {
	return &IntentStore{store: store, pluginId: pluginId}
}

func (s *IntentStore) Save(intent *app.DeletionIntent) error {
	value, err := json.Marshal(intent)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal intent of user %s", intent.UserId)
	}

	key := app.IntentKey(intent.UserId)
	return s.store.inTransaction(func(tx *sqlx.Tx) error {
		if _, err := s.store.execBuilder(tx, s.store.builder.
			Delete("PluginKeyValueStore").
			Where(sq.Eq{"PluginId": s.pluginId, "PKey": key})); err != nil {
			return errors.Wrapf(err, "failed to replace intent of user %s", intent.UserId)
		}

		if _, err := s.store.execBuilder(tx, s.store.builder.
			Insert("PluginKeyValueStore").
			Columns("PluginId", "PKey", "PValue", "ExpireAt").
			Values(s.pluginId, key, value, 0)); err != nil {
			return errors.Wrapf(err, "failed to save intent of user %s", intent.UserId)
		}
		return nil
	})
}

func (s *IntentStore) Get(userId string) (*app.DeletionIntent, error) {
	var value []byte
	err := s.store.getBuilder(s.store.db, &value, s.store.builder.
		Select("PValue").
		From("PluginKeyValueStore").
		Where(sq.Eq{"PluginId": s.pluginId, "PKey": app.IntentKey(userId)}))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get intent of user %s", userId)
	}

	var intent app.DeletionIntent
	if err := json.Unmarshal(value, &intent); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal intent of user %s", userId)
	}
	return &intent, nil
}

func (s *IntentStore) Delete(userId string) error {
	_, err := s.store.execBuilder(s.store.db, s.store.builder.
		Delete("PluginKeyValueStore").
		Where(sq.Eq{"PluginId": s.pluginId, "PKey": app.IntentKey(userId)}))
	return errors.Wrapf(err, "failed to delete intent of user %s", userId)
}

func (s *IntentStore) List() ([]*app.DeletionIntent, error) {
	var values [][]byte
	err := s.store.selectBuilder(s.store.db, &values, s.store.builder.
		Select("PValue").
		From("PluginKeyValueStore").
		Where(sq.Eq{"PluginId": s.pluginId}).
		Where(sq.Like{"PKey": app.IntentKeyPrefix + "%"}).
		OrderBy("PKey ASC"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list intents")
	}

	intents := make([]*app.DeletionIntent, 0, len(values))
	for _, v := range values {
		var intent app.DeletionIntent
		if err := json.Unmarshal(v, &intent); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal intent")
		}
		intents = append(intents, &intent)
	}
	return intents, nil
}
