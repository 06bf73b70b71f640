package domain

// Config represents the runtime configuration loaded from gotemplate.yaml.
type Config struct {
	Counter CounterConfig
	Logging LoggingConfig
}

type CounterConfig struct {
	Overflow OverflowPolicy
}

type LoggingConfig struct {
	Debug bool
}

// DefaultConfig provides the values used when gotemplate.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Counter: CounterConfig{Overflow: OverflowSaturate},
		Logging: LoggingConfig{Debug: false},
	}
}
