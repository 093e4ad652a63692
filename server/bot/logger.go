package bot

import (
	"fmt"
)

// Debugf logs a message at debug level.
func (b *Bot) Debugf(format string, args ...interface{}) {
	b.pluginAPI.Log.Debug(fmt.Sprintf(format, args...))
}

// Errorf logs a message at error level.
func (b *Bot) Errorf(format string, args ...interface{}) {
	b.pluginAPI.Log.Error(fmt.Sprintf(format, args...))
}

// Warnf logs a message at warning level.
func (b *Bot) Warnf(format string, args ...interface{}) {
	b.pluginAPI.Log.Warn(fmt.Sprintf(format, args...))
}

// Infof logs a message at info level.
func (b *Bot) Infof(format string, args ...interface{}) {
	b.pluginAPI.Log.Info(fmt.Sprintf(format, args...))
}
