package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Format: FormatJSON, Output: &buf})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("topic", "fractions").Debug("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "fractions", entry["topic"])
}

func TestNew_Defaults(t *testing.T) {
	log, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestContextLogger(t *testing.T) {
	assert.Equal(t, logrus.StandardLogger(), FromContext(context.Background()))

	log := Discard().WithField("request_id", "abc")
	ctx := WithLogger(context.Background(), log)
	assert.Equal(t, log, FromContext(ctx))
}
