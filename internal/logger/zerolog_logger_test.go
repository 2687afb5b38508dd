package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerMethods(t *testing.T) {
	l := NewZerologLogger("test", "dev")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLogger_ComponentField(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLoggerWithWriter("slots", &buf, zerolog.InfoLevel)
	l.Infof("registered %s", "A1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "slots", entry["component"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "registered A1", entry["message"])
}

func TestZerologLogger_InfoLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLoggerWithWriter("jobs", &buf, zerolog.InfoLevel)
	l.Debugf("snapshot %d", 1)
	l.Debugw("snapshot", map[string]any{"total": 3})
	assert.Empty(t, buf.String())

	l.Warnf("kept")
	assert.Contains(t, buf.String(), `"message":"kept"`)
}

func TestZerologLogger_DebugLevelKeepsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLoggerWithWriter("jobs", &buf, zerolog.DebugLevel)
	l.Debugw("snapshot", map[string]any{"total": 3})
	assert.Contains(t, buf.String(), `"total":3`)
}

func TestNewZerologLogger_ProdIsInfoLevel(t *testing.T) {
	l, ok := NewZerologLogger("server", "prod").(*ZerologLogger)
	require.True(t, ok)
	assert.Equal(t, zerolog.InfoLevel, l.log.GetLevel())

	l, ok = NewZerologLogger("server", "DEV").(*ZerologLogger)
	require.True(t, ok)
	assert.Equal(t, zerolog.DebugLevel, l.log.GetLevel())
}
