package slog

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	t.Cleanup(func() { SetLevel(INFO) })
	return &buf
}

func TestLevelGate(t *testing.T) {
	buf := capture(t)

	SetLevel(INFO)
	Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())
	Infof("shown %d", 2)
	assert.Contains(t, buf.String(), "INFO: shown 2")

	SetLevel(ERROR)
	buf.Reset()
	Info("hidden")
	assert.Empty(t, buf.String())
	Errorf("boom: %s", "cause")
	assert.Contains(t, buf.String(), "ERROR: boom: cause")

	SetLevel(DEBUG)
	buf.Reset()
	Debug("visible again")
	assert.Contains(t, buf.String(), "DEBUG: visible again")
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]Level{"DEBUG": DEBUG, "INFO": INFO, "ERROR": ERROR, "FATAL": FATAL} {
		got, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseLevel("LOUD")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "FATAL", FATAL.String())
	assert.Equal(t, "LEVEL(42)", Level(42).String())
}
