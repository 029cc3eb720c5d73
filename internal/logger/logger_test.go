package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, dev := range []bool{false, true} {
		log, err := New(zapcore.InfoLevel, dev)
		require.NoError(t, err)
		require.NotNil(t, log)

		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	}
}
