package config

const (
	// ConfigFileName is looked up in the working directory.
	ConfigFileName = ".gym.yml"

	DefaultModel    = "gemini-2.5-flash"
	DefaultBaseURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout  = "60s"
	DefaultLogLevel = "info"
	DefaultLogFile  = "gym.log"
)

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		Model:    DefaultModel,
		BaseURL:  DefaultBaseURL,
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
		LogFile:  DefaultLogFile,
	}
}
