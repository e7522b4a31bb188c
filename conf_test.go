package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConf(t *testing.T) {
	path := filepath.Join(t.TempDir(), "findex.yml")
	content := "loglevel: DEBUG\n" +
		"dir: doggos\n" +
		"extension: .txt\n" +
		"addr: 127.0.0.1:7070\n" +
		"topn: 5\n" +
		"metrics_secs: 30\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	conf, err := NewConf(path)
	require.NoError(t, err)
	assert.Equal(t, &Conf{
		LogLevel:    "DEBUG",
		Dir:         "doggos",
		Extension:   ".txt",
		Addr:        "127.0.0.1:7070",
		TopN:        5,
		MetricsSecs: 30,
	}, conf)
}

func TestNewConfPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "findex.yml")
	require.NoError(t, os.WriteFile(path, []byte("dir: doggos\n"), 0644))

	conf, err := NewConf(path)
	require.NoError(t, err)
	assert.Equal(t, "doggos", conf.Dir)
	assert.Empty(t, conf.Extension, "unset keys fall back to the zero value")
	assert.Zero(t, conf.TopN)
}

func TestNewConfMissingFile(t *testing.T) {
	_, err := NewConf(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestNewConfBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("dir: [unclosed"), 0644))
	_, err := NewConf(path)
	assert.Error(t, err)
}
