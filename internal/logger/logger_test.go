package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("username from context", func(t *testing.T) {
		ctx := ContextWithUsername(context.Background(), "alice")
		l := WithContext(ctx)
		assert.Equal(t, "alice", l.Data["user"])
	})

	t.Run("no username", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "anonymous", l.Data["user"])
	})
}

func TestWithFields(t *testing.T) {
	l := New().WithFields(map[string]interface{}{"a": 1, "b": "two"})
	assert.Equal(t, 1, l.Data["a"])
	assert.Equal(t, "two", l.Data["b"])
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
