package main

import (
	"io"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

// cliLogger writes plain log records to the error output of the command.
type cliLogger struct {
	mlog.Sugar
	logger *mlog.Logger
}

func newCLILogger(out io.Writer, verbose bool) (*cliLogger, error) {
	logger, err := mlog.NewLogger()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	levels := []mlog.Level{mlog.LvlCritical, mlog.LvlError, mlog.LvlWarn, mlog.LvlInfo}
	if verbose {
		levels = append(levels, mlog.LvlDebug)
	}
	if err := mlog.AddWriterTarget(logger, out, false, levels...); err != nil {
		return nil, errors.Wrap(err, "failed to add log target")
	}

	return &cliLogger{Sugar: logger.Sugar(), logger: logger}, nil
}

// Close flushes the queued records.
func (l *cliLogger) Close() error {
	return l.logger.Shutdown()
}

// logNotifier stands in for the websocket broadcast, which only the server can send.
type logNotifier struct {
	logger *cliLogger
}

func (n logNotifier) NotifyUserDeleted(userId string) {
	n.logger.Infof("Offboard: user %s deleted, connected clients are not notified.", userId)
}
