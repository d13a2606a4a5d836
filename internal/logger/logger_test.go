package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("go-meet-server")
	l.Logger = l.Output(&buf)

	l.Info().Str("user_id", "u-1").Msg("user verified")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "go-meet-server", entry["role"])
	assert.Equal(t, "u-1", entry["user_id"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry["func"], "TestNewLogger_EntryShape")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_Discards(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_DoesNotLeakFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "seed").Logger()}

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("trace_id", "abc").Logger()

	parent.Info().Msg("parent")
	parentLine, childLine, _ := strings.Cut(buf.String(), "\n")
	assert.NotContains(t, parentLine, "trace_id")
	assert.Empty(t, childLine)

	buf.Reset()
	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "seed", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestFromRequest_UsesContextLogger(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("trace_id", "t-42").Logger()

	r := httptest.NewRequest("GET", "/api/interests", nil)
	r = r.WithContext(attached.WithContext(r.Context()))

	FromRequest(r).Info().Msg("request scoped")

	assert.Equal(t, "t-42", decodeEntry(t, &buf)["trace_id"])
}

func TestFromContext_WithoutLogger(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestNewCLILogger_VerboseLevels(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var quiet bytes.Buffer
	NewCLILogger("cli", &quiet, false).Debug().Msg("hidden")
	assert.Empty(t, quiet.String())

	var verbose bytes.Buffer
	NewCLILogger("cli", &verbose, true).Debug().Msg("shown")
	assert.Contains(t, verbose.String(), "shown")
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.Error(t, SetLevel("loud"))
}
