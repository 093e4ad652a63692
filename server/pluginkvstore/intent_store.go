package pluginkvstore

import (
	"encoding/json"
	"strings"

	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	pluginapi "github.com/mattermost/mattermost-plugin-api"
	"github.com/pkg/errors"
)

const listPerPage = 100

// KV is the plugin key value store.
type KV interface {
	Set(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
	ListKeys(page, perPage int) ([]string, error)
}

type pluginKV struct {
	client *pluginapi.Client
}

// NewPluginKV wraps the KV service of the plugin API.
func NewPluginKV(client *pluginapi.Client) KV {
	return &pluginKV{client: client}
}

func (kv *pluginKV) Set(key string, value []byte) error {
	_, err := kv.client.KV.Set(key, value)
	return err
}

func (kv *pluginKV) Get(key string) ([]byte, error) {
	var value []byte
	if err := kv.client.KV.Get(key, &value); err != nil {
		return nil, err
	}
	return value, nil
}

func (kv *pluginKV) Delete(key string) error {
	return kv.client.KV.Delete(key)
}

func (kv *pluginKV) ListKeys(page, perPage int) ([]string, error) {
	return kv.client.KV.ListKeys(page, perPage)
}

// IntentStore keeps deletion intents as JSON documents in the plugin key value store.
type IntentStore struct {
	kv KV
}

func NewIntentStore(kv KV) *IntentStore {
	return &IntentStore{kv: kv}
}

func (s *IntentStore) Save(intent *app.DeletionIntent) error {
	value, err := json.Marshal(intent)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal intent of user %s", intent.UserId)
	}

	if err := s.kv.Set(app.IntentKey(intent.UserId), value); err != nil {
		return errors.Wrapf(err, "failed to save intent of user %s", intent.UserId)
	}
	return nil
}

func (s *IntentStore) Get(userId string) (*app.DeletionIntent, error) {
	return s.get(app.IntentKey(userId))
}

func (s *IntentStore) get(key string) (*app.DeletionIntent, error) {
	value, err := s.kv.Get(key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s", key)
	}
	if len(value) == 0 {
		return nil, nil
	}

	var intent app.DeletionIntent
	if err := json.Unmarshal(value, &intent); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s", key)
	}
	return &intent, nil
}

func (s *IntentStore) Delete(userId string) error {
	if err := s.kv.Delete(app.IntentKey(userId)); err != nil {
		return errors.Wrapf(err, "failed to delete intent of user %s", userId)
	}
	return nil
}

func (s *IntentStore) List() ([]*app.DeletionIntent, error) {
	intents := []*app.DeletionIntent{}

	for page := 0; ; page++ {
		keys, err := s.kv.ListKeys(page, listPerPage)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list keys")
		}

		for _, key := range keys {
			if !strings.HasPrefix(key, app.IntentKeyPrefix) {
				continue
			}
			intent, err := s.get(key)
			if err != nil {
				return nil, err
			}
			// Deleted since the keys were listed.
			if intent == nil {
				continue
			}
			intents = append(intents, intent)
		}

		if len(keys) < listPerPage {
			return intents, nil
		}
	}
}
