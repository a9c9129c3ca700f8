// Package config loads fleet scenarios from YAML and settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Environment variables read by LoadEnv
const (
	EnvLang      = "FLEET_LANG"
	EnvLog       = "FLEET_LOG"
	EnvLogOutput = "FLEET_LOG_OUTPUT"
)

// Config is the complete contents of a scenario file.
type Config struct {
	// Lang selects the message catalog. Empty means english.
	Lang string `yaml:"lang,omitempty"`
	// Vehicles are built, in order, before any step runs.
	Vehicles []VehicleSpec `yaml:"vehicles"`
	// Steps are executed in order against the vehicles above.
	Steps []Step `yaml:"steps"`
}

// VehicleSpec describes one vehicle to construct.
type VehicleSpec struct {
	// Name is how steps refer to the vehicle. Must be unique.
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"` // "car" or "truck"
	Make  string `yaml:"make"`
	Model string `yaml:"model"`
	Fuel  int    `yaml:"fuel"`
	// Passengers only applies to cars.
	Passengers int `yaml:"passengers,omitempty"`
	// Cargo is the cargo weight in kg and only applies to trucks.
	Cargo int `yaml:"cargo,omitempty"`
}

// Step is a single operation in a scenario.
type Step struct {
	Vehicle string `yaml:"vehicle,omitempty"`
	Action  string `yaml:"action"`
	// Amount is km for drive and liters for refuel and set-fuel.
	Amount int `yaml:"amount,omitempty"`
}

// Settings are the process-level options that may come from the environment.
type Settings struct {
	Lang      string
	Log       bool
	LogOutput string
}

// Load reads and strictly decodes the scenario file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario from YAML. Unknown fields are an error.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

// Marshal encodes c back to YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// LoadEnv loads the .env style file at path, if it exists, into the process
// environment and returns the settings found there. Variables already set
// in the environment take precedence over the file.
func LoadEnv(path string) (Settings, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load env file: %w", err)
		}
	}
	s := Settings{
		Lang:      os.Getenv(EnvLang),
		LogOutput: os.Getenv(EnvLogOutput),
	}
	if v := os.Getenv(EnvLog); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s value %q: %w", EnvLog, v, err)
		}
		s.Log = b
	}
	return s, nil
}
