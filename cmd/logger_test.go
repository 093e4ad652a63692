package main

import (
	"testing"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLILogger(t *testing.T) {
	t.Run("debug only when verbose", func(t *testing.T) {
		var buf mlog.Buffer
		logger, err := newCLILogger(&buf, false)
		require.NoError(t, err)

		logger.Debugf("planning user %s", "u")
		logger.Infof("deleting user %s", "u")
		logger.Errorf("step failed. err:%v", "timeout")
		require.NoError(t, logger.Close())

		out := buf.String()
		assert.NotContains(t, out, "planning user u")
		assert.Contains(t, out, "deleting user u")
		assert.Contains(t, out, "step failed. err:timeout")
	})

	t.Run("verbose", func(t *testing.T) {
		var buf mlog.Buffer
		logger, err := newCLILogger(&buf, true)
		require.NoError(t, err)

		logger.Debugf("planning user %s", "u")
		logNotifier{logger: logger}.NotifyUserDeleted("u")
		require.NoError(t, logger.Close())

		assert.Contains(t, buf.String(), "planning user u")
		assert.Contains(t, buf.String(), "user u deleted, connected clients are not notified")
	})
}
