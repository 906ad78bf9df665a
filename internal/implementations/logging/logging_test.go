package logging

import (
	"context"
	"registration/internal/core/domain/logging"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "User successfully activated.", logging.Entry("userId", 42))
	logger.Warning(ctx, "warning message", logging.Entry("key", "value"))
	logger.Error(ctx, "error message", logging.Entry("err", "boom"))

	assert := require.New(t)
	entries := logs.All()
	assert.Len(entries, 4)
	assert.Equal(zapcore.DebugLevel, entries[0].Level)
	assert.Equal(zapcore.InfoLevel, entries[1].Level)
	assert.Equal("User successfully activated.", entries[1].Message)
	assert.Equal(int64(42), entries[1].ContextMap()["userId"])
	assert.Equal(zapcore.WarnLevel, entries[2].Level)
	assert.Equal("value", entries[2].ContextMap()["key"])
	assert.Equal(zapcore.ErrorLevel, entries[3].Level)
}
