package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("development включает debug", func(t *testing.T) {
		log := New(EnvDevelopment)
		assert.True(t, log.Core().Enabled(zap.DebugLevel))
	})

	t.Run("production пишет с уровня info", func(t *testing.T) {
		log := New(EnvProduction)
		assert.False(t, log.Core().Enabled(zap.DebugLevel))
		assert.True(t, log.Core().Enabled(zap.InfoLevel))
	})

	t.Run("неизвестное окружение", func(t *testing.T) {
		log := New("staging")
		assert.False(t, log.Core().Enabled(zap.DebugLevel))
	})
}

func TestFromContext(t *testing.T) {
	fallback := zap.NewNop()

	t.Run("логгер из контекста", func(t *testing.T) {
		requestLog := zap.NewExample()
		ctx := WithContext(context.Background(), requestLog)

		assert.Same(t, requestLog, FromContext(ctx, fallback))
	})

	t.Run("пустой контекст", func(t *testing.T) {
		assert.Same(t, fallback, FromContext(context.Background(), fallback))
	})
}
