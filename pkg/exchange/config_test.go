package exchange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig("key", "secret")

	require.NotNil(t, config.Credentials)
	assert.Equal(t, "key", config.Credentials.Key)
	assert.Equal(t, "secret", config.Credentials.Secret)
	assert.Equal(t, "https://api.remitano.com", config.BaseURL)
	assert.Equal(t, 3*time.Second, config.Timeout)
	assert.Contains(t, config.UserAgent, "Mozilla/5.0")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing_key", func(c *Config) { c.Credentials.Key = "" }, true},
		{"missing_secret", func(c *Config) { c.Credentials.Secret = "" }, true},
		{"nil_credentials", func(c *Config) { c.Credentials = nil }, true},
		{"missing_base_url", func(c *Config) { c.BaseURL = "" }, true},
		{"invalid_base_url", func(c *Config) { c.BaseURL = "not a url" }, true},
		{"zero_timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"missing_user_agent", func(c *Config) { c.UserAgent = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig("key", "secret")
			tt.mutate(config)

			err := config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Chaining(t *testing.T) {
	config := DefaultConfig("key", "secret").
		WithBaseURL("https://sandbox.example.com").
		WithTimeout(10 * time.Second).
		WithUserAgent("custom-agent")

	assert.Equal(t, "https://sandbox.example.com", config.BaseURL)
	assert.Equal(t, 10*time.Second, config.Timeout)
	assert.Equal(t, "custom-agent", config.UserAgent)
	assert.NoError(t, config.Validate())
}
