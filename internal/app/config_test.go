package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		AdventuresDir: "adventures",
		StartRoom:     "S",
		Border:        "=",
		LogFormat:     "text",
		LogLevel:      "info",
	}
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*Config)
		contains string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing dir", mutate: func(c *Config) { c.AdventuresDir = "" }, contains: "AdventuresDir"},
		{name: "long start room", mutate: func(c *Config) { c.StartRoom = "SS" }, contains: "start room"},
		{name: "empty border", mutate: func(c *Config) { c.Border = "" }, contains: "border"},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }, contains: "log format"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, contains: "log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			got, err := NewConfig(cfg)
			if tc.contains == "" {
				require.NoError(t, err)
				assert.Equal(t, cfg, *got)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}
