package cache

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/mentor-hub-api/pkg/config"
)

func redisConfig(t *testing.T, mr *miniredis.Miniredis) config.RedisConfig {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return config.RedisConfig{Host: mr.Host(), Port: port}
}

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedis(context.Background(), redisConfig(t, mr))
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, Ping(context.Background(), client))
}

func TestNewRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := redisConfig(t, mr)
	mr.Close()

	_, err := NewRedis(context.Background(), cfg)
	assert.Error(t, err)
}

func TestPingNilClient(t *testing.T) {
	assert.NoError(t, Ping(context.Background(), nil))
}
