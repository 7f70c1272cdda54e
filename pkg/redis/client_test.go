package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Run("Should require a URL", func(t *testing.T) {
		_, err := Options(Config{})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("Should enable TLS for rediss and default the port", func(t *testing.T) {
		opts, err := Options(Config{URL: "rediss://default:pw@eu1-upstash.io"})
		require.NoError(t, err)
		assert.Equal(t, "eu1-upstash.io:6379", opts.Addr)
		assert.Equal(t, "pw", opts.Password)
		assert.NotNil(t, opts.TLSConfig)
	})

	t.Run("Should let an explicit password win", func(t *testing.T) {
		opts, err := Options(Config{URL: "redis://:pw@localhost:6380", Password: "override"})
		require.NoError(t, err)
		assert.Equal(t, "localhost:6380", opts.Addr)
		assert.Equal(t, "override", opts.Password)
		assert.Nil(t, opts.TLSConfig)
	})
}

func TestHealthCheckWithoutClient(t *testing.T) {
	assert.ErrorIs(t, HealthCheck(context.Background(), nil), ErrNotConfigured)
}
