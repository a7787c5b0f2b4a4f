package kv

import (
	"context"
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	r, err := NewRedis(RedisConfig{Host: host, Port: port})
	require.NoError(t, err)
	defer r.Close()

	assert.NoError(t, r.Client.Ping(context.Background()).Err())
}

func TestNewRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	mr.Close()

	_, err = NewRedis(RedisConfig{Host: host, Port: port})
	assert.ErrorContains(t, err, "failed to connect to redis")
}
