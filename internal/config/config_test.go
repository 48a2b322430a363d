package config_test

import (
	"testing"

	"github.com/lookai-app/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(config.DebugModeEnv, "true")
	t.Setenv(config.DBHostEnv, "localhost")
	t.Setenv(config.DBUserEnv, "user")
	t.Setenv(config.DBPassEnv, "pass")
	t.Setenv(config.DBNameEnv, "testdb")
	t.Setenv(config.DBPortEnv, "5432")
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9090")
	t.Setenv(config.UploadDirEnv, "/var/lib/lookai/uploads")
	t.Setenv(config.AIAPIKeyEnv, "test-key")

	conf, err := config.LoadFromEnv()
	require.NoError(t, err, "loading config should not return error")

	assert.True(t, conf.DebugMode, "DebugMode should be true")
	assert.Equal(t, "localhost", conf.Database.Host, "DB Host should be 'localhost'")
	assert.Equal(t, "user", conf.Database.User, "DB User should be 'user'")
	assert.Equal(t, "pass", conf.Database.Password, "DB Password should be 'pass'")
	assert.Equal(t, "testdb", conf.Database.Name, "DB Name should be 'testdb'")
	assert.Equal(t, "5432", conf.Database.Port, "DB Port should be '5432'")
	assert.Equal(t, "8080", conf.HTTPServer.Port, "HTTP Server Port should be '8080'")
	assert.Equal(t, "9090", conf.MetricsServer.Port, "Metrics Server Port should be '9090'")
	assert.Equal(t, "/var/lib/lookai/uploads", conf.Upload.Dir, "Upload Dir should come from env")
	assert.Equal(t, "test-key", conf.AI.APIKey, "AI API key should come from env")
	assert.Equal(t, config.DefaultAIAPIURL, conf.AI.APIURL, "AI API URL should default")
	assert.Equal(t, config.DefaultAIModel, conf.AI.Model, "AI model should default")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv(config.DBHostEnv, "localhost")
	t.Setenv(config.DBUserEnv, "user")
	t.Setenv(config.DBNameEnv, "testdb")
	t.Setenv(config.DBPortEnv, "5432")
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9090")
	t.Setenv(config.UploadDirEnv, "")

	conf, err := config.LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultUploadDir, conf.Upload.Dir, "Upload Dir should default")
	assert.Empty(t, conf.AWS.SQSQueueURL, "SQS queue URL is optional")
}

func TestLoadFromEnv_MissingRequired(t *testing.T) {
	t.Setenv(config.DBHostEnv, "")
	t.Setenv(config.DBUserEnv, "user")
	t.Setenv(config.DBNameEnv, "testdb")
	t.Setenv(config.DBPortEnv, "5432")
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9090")

	_, err := config.LoadFromEnv()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingConfig)
}

func TestLoadFromEnv_InvalidPort(t *testing.T) {
	t.Setenv(config.DBHostEnv, "localhost")
	t.Setenv(config.DBUserEnv, "user")
	t.Setenv(config.DBNameEnv, "testdb")
	t.Setenv(config.DBPortEnv, "not-a-number")
	t.Setenv(config.HTTPServerPortEnv, "8080")
	t.Setenv(config.MetricsServerPortEnv, "9090")

	_, err := config.LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid number")
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue bool
		want         bool
	}{
		{"GetEnvAsBool_True", "true", false, true},
		{"GetEnvAsBool_False", "false", true, false},
		{"GetEnvAsBool_Invalid", "invalid", true, true},
		{"GetEnvAsBool_Empty", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV", tt.envValue)
			got := config.GetEnvAsBool("TEST_ENV", tt.defaultValue)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllNonEmpty(t *testing.T) {
	t.Run("all values present", func(t *testing.T) {
		err := config.AllNonEmpty(map[string]string{"A": "1", "B": "2"})
		require.NoError(t, err)
	})

	t.Run("empty value is reported with its key", func(t *testing.T) {
		err := config.AllNonEmpty(map[string]string{"A": "1", "B": ""})
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrMissingConfig)
		assert.Contains(t, err.Error(), "B")
	})
}

func TestAllNumbers(t *testing.T) {
	t.Run("all values numeric", func(t *testing.T) {
		err := config.AllNumbers(map[string]string{"PORT": "8080"})
		require.NoError(t, err)
	})

	t.Run("non-numeric value is rejected", func(t *testing.T) {
		err := config.AllNumbers(map[string]string{"PORT": "eighty"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PORT")
	})
}
