package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/routes/route"
)

const (
	// DefaultFile is read from the working directory when ROUTES_CONFIG is unset.
	DefaultFile = "routes.yml"

	EnvConfig = "ROUTES_CONFIG"
	EnvData   = "ROUTES_DATA"
)

// LoadAppConfig loads the configuration named by ROUTES_CONFIG, falling back
// to routes.yml. A missing default file yields an empty configuration; a
// missing file named explicitly is an error.
func LoadAppConfig() (AppConfig, error) {
	path := strings.TrimSpace(os.Getenv(EnvConfig))
	if path == "" {
		cfg, err := LoadFile(DefaultFile)
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return cfg, err
	}
	return LoadFile(path)
}

// LoadFile reads and validates the YAML configuration at path.
func LoadFile(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("validate %s: %w", path, err)
	}
	if cfg.Display.Format == "" {
		cfg.Display.Format = Default().Display.Format
	}
	return cfg, nil
}

// Default is the configuration used when no file is present.
func Default() AppConfig {
	return AppConfig{Display: DisplayConfig{Format: "table"}}
}

// ResolveDataPath picks the data file: the flag value, then ROUTES_DATA,
// then data.path from the configuration file.
func ResolveDataPath(flagValue string, cfg AppConfig) (string, error) {
	for _, p := range []string{flagValue, os.Getenv(EnvData), cfg.Data.Path} {
		if p = strings.TrimSpace(p); p != "" {
			return p, nil
		}
	}
	return "", &route.ConfigurationError{Msg: "the data file name is absent"}
}
