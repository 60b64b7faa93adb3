package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "station-numbers.md", cfg.MarkdownPath)
	assert.Equal(t, "station_data.csv", cfg.CSVPath)
	assert.Equal(t, "station_data.db", cfg.SeedDBPath)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "station-data-updates", cfg.KafkaTopic)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STATION_MD", "/data/stations.md")
	t.Setenv("STATION_CSV", "/data/stations.csv")
	t.Setenv("SEED_DB", "/data/seed.db")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_TOPIC", "stations")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/stations.md", cfg.MarkdownPath)
	assert.Equal(t, "/data/stations.csv", cfg.CSVPath)
	assert.Equal(t, "/data/seed.db", cfg.SeedDBPath)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "stations", cfg.KafkaTopic)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"empty markdown path", "STATION_MD", "", "STATION_MD is required"},
		{"empty csv path", "STATION_CSV", "", "STATION_CSV is required"},
		{"empty seed db path", "SEED_DB", "", "SEED_DB is required"},
		{"zero shutdown timeout", "SHUTDOWN_TIMEOUT", "0s", "SHUTDOWN_TIMEOUT must be positive"},
		{"bad shutdown timeout", "SHUTDOWN_TIMEOUT", "soon", "parse env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadKafkaValidation(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_TOPIC", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_TOPIC")
}
