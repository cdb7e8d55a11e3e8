package indicator

import "github.com/evdnx/movavg/config"

// Re-export config defaults and types so callers of the facade need a single import.
type Config = config.Config

func DefaultConfig() Config {
	return config.DefaultConfig()
}

// WindowOptions translates the capacity settings of cfg into window options.
func WindowOptions(cfg Config) []WindowOption {
	return []WindowOption{
		WithStrictCapacity(cfg.StrictCapacity),
		WithMaxCapacity(cfg.MaxCapacity),
	}
}
