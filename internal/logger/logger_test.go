package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_WritesServiceField(t *testing.T) {
	var buf bytes.Buffer
	log := build(&buf, "debug")

	log.Info().Str("addr", ":8080").Msg("starting")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "waste-service", entry["service"])
	assert.Equal(t, "starting", entry["message"])
	assert.Equal(t, ":8080", entry["addr"])
	assert.Contains(t, entry, "time")
}

func TestBuild_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := build(&buf, "loud")

	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())

	log.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())
}
