package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the optional tool configuration (.graveyard.yaml).
type Settings struct {
	Registry string   `yaml:"registry"` // Explicit registry path, may contain ${ENV_VAR}
	Include  []string `yaml:"include"`  // Extra gitignore-style include patterns
	Exclude  []string `yaml:"exclude"`  // Extra gitignore-style exclude patterns
	Workers  int      `yaml:"workers"`  // 0 means GOMAXPROCS
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and validates a settings file.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Registry = expandEnv(settings.Registry)

	if validateErr := validateSettings(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".graveyard.yaml",
		".graveyard.yml",
		"graveyard.yaml",
		"graveyard.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func validateSettings(settings *Settings) error {
	if settings.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", settings.Workers)
	}
	for i, pattern := range settings.Include {
		if pattern == "" {
			return fmt.Errorf("include[%d] must not be empty", i)
		}
	}
	for i, pattern := range settings.Exclude {
		if pattern == "" {
			return fmt.Errorf("exclude[%d] must not be empty", i)
		}
	}
	return nil
}
