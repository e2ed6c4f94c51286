package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("falls back to global entry", func(t *testing.T) {
		entry := FromContext(context.Background())
		require.NotNil(t, entry)
		assert.Equal(t, L.Logger, entry.Logger)
	})

	t.Run("returns attached entry", func(t *testing.T) {
		custom := logrus.NewEntry(logrus.New()).WithField("component", "fetcher")
		ctx := WithLogger(context.Background(), custom)

		entry := FromContext(ctx)
		assert.Equal(t, "fetcher", entry.Data["component"])
	})
}

func TestSetLevel(t *testing.T) {
	orig := L.Logger.GetLevel()
	defer L.Logger.SetLevel(orig)

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())

	assert.Error(t, SetLevel("not-a-level"))
}

func TestSetFormat(t *testing.T) {
	defer SetFormat("text")

	SetFormat("json")
	_, ok := L.Logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)

	SetFormat("text")
	_, ok = L.Logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}
