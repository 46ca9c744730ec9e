package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	defer level.SetLevel(zapcore.InfoLevel)

	assert.NoError(t, SetLevel("debug"))
	assert.True(t, Logger("test").Desugar().Core().Enabled(zapcore.DebugLevel))

	assert.NoError(t, SetLevel("warn"))
	assert.False(t, Logger("test").Desugar().Core().Enabled(zapcore.InfoLevel))

	assert.Error(t, SetLevel("loud"))
}
