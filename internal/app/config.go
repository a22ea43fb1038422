package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath string // integer stream; empty means standard input

	LogFormat string
	LogLevel  string
}

// NewConfig applies defaults to the raw configuration and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
