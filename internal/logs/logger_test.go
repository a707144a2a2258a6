package logs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")

	log, err := New(WithLevel("warn"), WithOutput(logPath), func(o *LoggerOptions) {
		o.Encoding = EncodingTypeJSON
	})
	require.NoError(t, err)

	log.Info("skipped")
	log.Warn("written", zap.String("token", "AQAAAA"))
	_ = log.Sync()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "skipped")
	assert.Contains(t, string(data), `"msg":"written"`)
	assert.Contains(t, string(data), `"token":"AQAAAA"`)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(WithLevel("loud"))
	assert.Error(t, err)

	assert.Panics(t, func() { MustNew(WithLevel("loud")) })
}

func TestWithLevel_EmptyKeepsDefault(t *testing.T) {
	options := LoggerOptions{Level: "debug"}
	WithLevel("")(&options)
	assert.Equal(t, "debug", options.Level)
}
