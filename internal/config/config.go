package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"cribbage-core/internal/util"
)

// Config provides configuration for the cribbage tools
type Config struct {
	loaded bool
	Board  struct {
		Target  int `yaml:"target" envconfig:"target"`
		Players int `yaml:"players" envconfig:"players"`
	} `yaml:"board"`
	Log struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Board.Target = 121
	cfg.Board.Players = 2
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values come from the defaults, then the YAML file in CRIBBAGE_CONFIG_FILE (if it exists),
// then CRIBBAGE_* environment variables
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("CRIBBAGE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("cribbage", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
