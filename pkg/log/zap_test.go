package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetApplicationName_StampsLogName(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetCore(core)
	t.Cleanup(func() { SetApplicationName("") })

	Info("before")
	SetApplicationName("weather-checker-staging")
	Info("after")
	Named("openweather").Info("outbound")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, defaultApplicationName, entries[0].ContextMap()["logName"])
	assert.Equal(t, "weather-checker-staging", entries[1].ContextMap()["logName"])
	assert.Equal(t, "weather-checker-staging", entries[2].ContextMap()["logName"])
	assert.Equal(t, "openweather", entries[2].LoggerName)
}

func TestSetCore_KeepsApplicationName(t *testing.T) {
	SetApplicationName("checker")
	t.Cleanup(func() { SetApplicationName("") })

	core, logs := observer.New(zapcore.InfoLevel)
	SetCore(core)

	Errorw("failed", "place", "Guntur")
	Info("started", zap.Int("port", 8080))

	entries := logs.All()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "checker", entry.ContextMap()["logName"])
	}
	assert.Equal(t, "Guntur", entries[0].ContextMap()["place"])
}
