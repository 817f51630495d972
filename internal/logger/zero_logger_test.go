package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestZeroLogger_WritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelInfo, Fields{"service": "travel-explorer"})

	l.Info("countries loaded", map[string]interface{}{"count": 250})
	l.Error(errors.New("upstream down"), nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "countries loaded", entries[0]["message"])
	assert.Equal(t, float64(250), entries[0]["count"])
	assert.Equal(t, "travel-explorer", entries[0]["service"])
	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "upstream down", entries[1]["error"])
}

func TestZeroLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelWarn, nil)

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("shown", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])

	buf.Reset()
	l.SetLevel(LevelOff)
	l.Warn("hidden", nil)
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelOff, ParseLevel("off"))
	assert.Equal(t, LevelInfo, ParseLevel("whatever"))
	assert.Equal(t, "ERROR", LevelError.String())
}
