package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("info"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
}

func TestNew_Level(t *testing.T) {
	log := New("production", "warn")
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())

	local := New("local", "debug")
	assert.Equal(t, zerolog.DebugLevel, local.GetLevel())
}
