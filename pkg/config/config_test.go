package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_CalComConfig(t *testing.T) {
	os.Setenv("CAL_USERNAME", "test-salon")
	os.Setenv("CAL_EVENT_TYPE_SLUG", "test-appointment")
	os.Setenv("CAL_API_KEY", "cal_test_key")
	defer func() {
		os.Unsetenv("CAL_USERNAME")
		os.Unsetenv("CAL_EVENT_TYPE_SLUG")
		os.Unsetenv("CAL_API_KEY")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "test-salon", cfg.CalCom.Username)
	assert.Equal(t, "test-appointment", cfg.CalCom.EventTypeSlug)
	assert.Equal(t, "cal_test_key", cfg.CalCom.APIKey)
	assert.Equal(t, "https://api.cal.com", cfg.CalCom.BaseURL)
}

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared so the literal fallbacks apply
	os.Unsetenv("CAL_USERNAME")
	os.Unsetenv("CAL_EVENT_TYPE_SLUG")
	os.Unsetenv("CAL_API_KEY")
	os.Unsetenv("AGENT_MODEL")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, DefaultCalUsername, cfg.CalCom.Username)
	assert.Equal(t, DefaultCalEventTypeSlug, cfg.CalCom.EventTypeSlug)
	assert.Equal(t, "", cfg.CalCom.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Agent.Model)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestRedisConfig_RedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", cfg.RedisAddr())
}
