package config

import (
	"reflect"
)

const (
	ErasureModeDelete = "Delete"
	ErasureModeUnlink = "Unlink"

	DefaultRemovedUserAlias = "Removed User"
)

// Configuration captures the plugin's external configuration as exposed in the Mattermost server
// configuration, as well as values computed from the configuration. Any public fields will be
// deserialized from the Mattermost server configuration in OnConfigurationChange.
//
// As plugins are inherently concurrent (hooks being called asynchronously), and the plugin
// configuration can change at any time, access to the configuration must be synchronized. The
// strategy used in this plugin is to guard a pointer to the configuration, and clone the entire
// struct whenever it changes. You may replace this with whatever strategy you choose.
type Configuration struct {
	// BotUserID used to post messages, and as the author of unlinked messages.
	BotUserID string

	// ErasureMode is Delete or Unlink.
	ErasureMode string

	// RemovedUserAlias replaces the author name of unlinked messages.
	RemovedUserAlias string
}

// Clone shallow copies the configuration. Your implementation may require a deep copy if
// your configuration has reference types.
func (c *Configuration) Clone() *Configuration {
	var clone = *c
	return &clone
}

// ToMap is used for SavePluginConfig.
func (c *Configuration) ToMap() map[string]interface{} {
	out := map[string]interface{}{}
	v := reflect.ValueOf(*c)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		out[t.Field(i).Name] = v.Field(i).Interface()
	}
	return out
}

func (c *Configuration) setDefaults() {
	if c.ErasureMode == "" {
		c.ErasureMode = ErasureModeDelete
	}
	if c.RemovedUserAlias == "" {
		c.RemovedUserAlias = DefaultRemovedUserAlias
	}
}
