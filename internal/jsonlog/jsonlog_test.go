package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Level      string            `json:"level"`
	Time       string            `json:"time"`
	Message    string            `json:"message"`
	Properties map[string]string `json:"properties"`
	Trace      string            `json:"trace"`
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []entry {
	t.Helper()
	var entries []entry
	dec := json.NewDecoder(buf)
	for dec.More() {
		var e entry
		require.NoError(t, dec.Decode(&e))
		entries = append(entries, e)
	}
	return entries
}

func TestJSONLogger(t *testing.T) {
	t.Run("INFO Level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		l.PrintInfo("starting server", map[string]string{"addr": ":8080", "env": "development"})
		entries := decodeLines(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "INFO", entries[0].Level)
		assert.Equal(t, "starting server", entries[0].Message)
		assert.Equal(t, ":8080", entries[0].Properties["addr"])
		assert.Empty(t, entries[0].Trace)
	})

	t.Run("ERROR Level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		l.PrintError(errors.New("ERROR log"), nil)
		entries := decodeLines(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "ERROR", entries[0].Level)
		assert.NotEmpty(t, entries[0].Trace)
	})

	t.Run("below minimum level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelFatal)
		l.PrintDebug("debug", nil)
		l.PrintInfo("info", nil)
		l.PrintError(errors.New("error"), nil)
		assert.Zero(t, buf.Len())
		l.PrintFatal(errors.New("fatal"), nil)
		entries := decodeLines(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "FATAL", entries[0].Level)
	})

	t.Run("OFF", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelOff)
		l.PrintFatal(errors.New("fatal"), nil)
		assert.Zero(t, buf.Len())
	})

	t.Run("SetLevel", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		l.PrintDebug("hidden", nil)
		l.SetLevel(LevelDebug)
		l.PrintDebug("shown", nil)
		entries := decodeLines(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "shown", entries[0].Message)
	})

	t.Run("Write", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		_, err := l.Write([]byte("http: TLS handshake error\n"))
		require.NoError(t, err)
		entries := decodeLines(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "ERROR", entries[0].Level)
		assert.Equal(t, "http: TLS handshake error", entries[0].Message)
	})
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"debug": LevelDebug, "INFO": LevelInfo, "": LevelInfo, " error ": LevelError, "fatal": LevelFatal, "off": LevelOff} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
