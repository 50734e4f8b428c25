package config

import "os"

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "GEMINI_API_KEY",
		apply: func(c *Config, v string) {
			c.APIKey = v
		},
	},
	{
		envVar: "GYM_MODEL",
		apply: func(c *Config, v string) {
			c.Model = v
		},
	},
	{
		envVar: "GYM_BASE_URL",
		apply: func(c *Config, v string) {
			c.BaseURL = v
		},
	},
	{
		envVar: "GYM_LOG_LEVEL",
		apply: func(c *Config, v string) {
			c.LogLevel = v
		},
	},
	{
		envVar: "GYM_LOG_FILE",
		apply: func(c *Config, v string) {
			c.LogFile = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
