package config

import (
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfig_Defaults(t *testing.T) {
	var c Config
	require.NoError(t, envconfig.Process("", &c))
	require.Equal(t, "8080", c.Server.Port)
	require.Equal(t, "5000", c.BookstoreHTTPServer.Port)
	require.Equal(t, time.Minute, c.BookstoreHTTPServer.Timeout)
	require.Equal(t, "bn", c.Catalog.Locale)
	require.Equal(t, 24*time.Hour, c.Session.TTL)
	require.Equal(t, "storefront-events", c.Kafka.Topic)
	require.False(t, c.Kafka.Enabled())
	require.Equal(t, zapcore.InfoLevel, c.Log.LogLevel)
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("BOOKSTORE_HTTP_HOST", "bookstore")
	t.Setenv("KAFKA_ADDRS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("LOG_LEVEL", "debug")

	var c Config
	require.NoError(t, envconfig.Process("", &c))
	require.Equal(t, "bookstore", c.BookstoreHTTPServer.Host)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Kafka.Addrs)
	require.True(t, c.Kafka.Enabled())
	require.Equal(t, zapcore.DebugLevel, c.Log.LogLevel)
}

func TestConfig_Options(t *testing.T) {
	var c Config
	for _, op := range []Option{
		WithLogLevel(zapcore.WarnLevel),
		WithWriteTimeout(time.Minute),
		WithBookstoreTimeout(5 * time.Second),
	} {
		op(&c)
	}
	require.Equal(t, zapcore.WarnLevel, c.Log.LogLevel)
	require.Equal(t, time.Minute, c.Server.WriteTimeout)
	require.Equal(t, 5*time.Second, c.BookstoreHTTPServer.Timeout)
}
