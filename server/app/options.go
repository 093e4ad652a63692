package app

import (
	"fmt"

	"github.com/ericzzh/mattermost-plugin-offboard/server/config"
)

type ErasureMode string

const (
	ErasureDelete ErasureMode = "Delete"
	ErasureUnlink ErasureMode = "Unlink"
)

func ParseErasureMode(s string) (ErasureMode, error) {
	switch ErasureMode(s) {
	case ErasureDelete, ErasureUnlink:
		return ErasureMode(s), nil
	}
	return "", fmt.Errorf("%w mode:%v", ErrInvalidErasureMode, s)
}

// Options are the settings of one deletion run.
type Options struct {
	Mode ErasureMode
	// SystemUserId becomes the author of unlinked messages.
	SystemUserId string
	// RemovedUserAlias is the display name of unlinked messages.
	RemovedUserAlias string
}

// NewOptions reads the run options from the plugin configuration.
func NewOptions(c *config.Configuration) (Options, error) {
	mode, err := ParseErasureMode(c.ErasureMode)
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		Mode:             mode,
		SystemUserId:     c.BotUserID,
		RemovedUserAlias: c.RemovedUserAlias,
	}

	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) validate() error {
	switch o.Mode {
	case ErasureDelete:
	case ErasureUnlink:
		if o.SystemUserId == "" {
			return fmt.Errorf("%w unlink requires a system user", ErrInvalidErasureMode)
		}
	default:
		return fmt.Errorf("%w mode:%v", ErrInvalidErasureMode, o.Mode)
	}
	return nil
}
