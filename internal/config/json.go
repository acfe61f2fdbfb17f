package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdir/internal/flagx"
)

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path is taken from the -c or -config command-line flags.
// If neither is set, no file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics: a half-applied config file
// is worse than a crash at startup.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, config); err != nil {
		panic(err)
	}
}
