package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewRedis(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		assert.Nil(t, NewRedis(Config{}, zap.NewNop()))
	})

	t.Run("Unreachable", func(t *testing.T) {
		cfg := Config{RedisAddr: "127.0.0.1:1", TimeoutSeconds: 1}
		assert.Nil(t, NewRedis(cfg, zap.NewNop()))
	})
}

func TestConfig_TTL(t *testing.T) {
	assert.Equal(t, time.Minute, Config{}.TTL())
	assert.Equal(t, 5*time.Second, Config{TTLSeconds: 5}.TTL())
}
