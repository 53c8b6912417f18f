package cmd

import (
	"os"

	"github.com/pelletier/go-toml"
)

// ConfigFile is the optional project config read from the working directory.
// Flags always win over config values.
const ConfigFile = "spssr.toml"

type config struct {
	Dialect     string `toml:"dialect"`
	Output      string `toml:"output"`
	PassThrough bool   `toml:"pass_through"`
}

// loadConfig reads spssr.toml if present. A missing or unreadable file yields
// zero defaults; a malformed file is ignored the same way rather than
// blocking translation.
func loadConfig() config {
	var cfg config
	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		return cfg
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return config{}
	}
	return cfg
}
