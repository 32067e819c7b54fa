package config_test

import (
	"testing"
	"time"

	"wearlog/src/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := config.LoadConfig()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.NotEmpty(t, cfg.Session.Secret)
	assert.False(t, cfg.Log.UploadEnabled)
	assert.Equal(t, "wearlog-logs", cfg.S3.LogBucket)
	assert.Equal(t, "wearlog-images", cfg.S3.ImageBucket)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("BACKEND_BASE_URL", "https://api.wearlog.example.com")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("LOG_UPLOAD_ENABLED", "true")

	cfg := config.LoadConfig()

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "https://api.wearlog.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Log.UploadEnabled)
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "not-a-duration")
	t.Setenv("LOG_UPLOAD_ENABLED", "not-a-bool")

	cfg := config.LoadConfig()

	// パースできない値はデフォルトに戻る
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.False(t, cfg.Log.UploadEnabled)
}
