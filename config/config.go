// Package config loads submitter credentials for the CLI.
//
// Credentials come from a YAML file or, as a fallback, from environment
// variables. They are held in memory for the duration of one invocation and
// never written anywhere.
package config

import (
	"errors"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Environment fallbacks used by FromEnv.
const (
	EnvStudentID = "EUCLID_STUDENT_ID"
	EnvSecretKey = "EUCLID_SECRET_KEY"
)

// ErrMissingCredentials is returned when a loaded config has an empty
// student id or secret key.
var ErrMissingCredentials = errors.New("config: student_id and secret_key are required")

// Credentials holds the submitter identity used to sign responses.
type Credentials struct {
	StudentID string `yaml:"student_id"`
	SecretKey string `yaml:"secret_key"`
}

// Config is the root of the YAML config file.
//
//	credentials:
//	  student_id: "w1234567"
//	  secret_key: "..."
type Config struct {
	Credentials Credentials `yaml:"credentials"`
}

// Load reads and validates the YAML config file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if cfg.Credentials.StudentID == "" || cfg.Credentials.SecretKey == "" {
		return Config{}, ErrMissingCredentials
	}
	return cfg, nil
}

// FromEnv builds a Config from the environment fallbacks. The result may be
// partially or fully empty; callers decide whether that is acceptable.
func FromEnv() Config {
	return Config{
		Credentials: Credentials{
			StudentID: os.Getenv(EnvStudentID),
			SecretKey: os.Getenv(EnvSecretKey),
		},
	}
}
