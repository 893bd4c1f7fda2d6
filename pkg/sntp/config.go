package sntp

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the optional TOML configuration surface of the CLI.
type Config struct {
	Server   string `toml:"server"`
	Timeout  uint   `toml:"timeout"` // receive budget in polling cycles
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

func DefaultConfig() Config {
	return Config{
		Server:   DefaultServerName,
		Timeout:  ExchangeTimeout,
		LogLevel: "warning",
	}
}

// LoadConfig reads a TOML file into the defaults. A missing file is fine and
// yields the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := toml.Unmarshal(raw, &config); err != nil {
		return config, fmt.Errorf("parsing %s: %w", path, err)
	}
	if config.Server == "" {
		config.Server = DefaultServerName
	}
	if config.Timeout == 0 {
		config.Timeout = ExchangeTimeout
	}
	return config, nil
}
