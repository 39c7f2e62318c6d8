package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, lvl)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, LevelWarn)

	log.Info("booking id=%s confirmed", "b-1")
	log.Warn("slot %s taken", "9:00 AM")
	log.Error("store failure: %v", "timeout")

	out := buf.String()
	assert.NotContains(t, out, "confirmed")
	assert.Contains(t, out, "[WARN] slot 9:00 AM taken")
	assert.Contains(t, out, "[ERROR] store failure: timeout")
}

func TestLogger_Fatal(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, LevelInfo)

	code := -1
	log.exitFn = func(c int) { code = c }

	log.Fatal("cannot start: %s", "no db")
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "[FATAL] cannot start: no db")
}
