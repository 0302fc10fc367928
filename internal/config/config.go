// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the envalidator configuration. Values come from an
// optional envalidator.yaml (user, system or working directory), from
// ENVALIDATOR_* environment variables and from CLI flags, in ascending
// precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the persistent settings of the tool. The action flags
// (--init, --fix, --approve) are per-invocation and deliberately not part
// of the config file.
type Config struct {
	EnvFile     string `mapstructure:"env-file" yaml:"env-file"`
	ExampleFile string `mapstructure:"example-file" yaml:"example-file"`
	Language    string `mapstructure:"lang" yaml:"lang"`
	Debug       bool   `mapstructure:"debug" yaml:"debug"`
	Plain       bool   `mapstructure:"plain" yaml:"plain"`
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Envalidator")
		default: // Linux, macOS, etc.
			configDir = "/etc/envalidator"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "envalidator")
	}

	return filepath.Join(configDir, "envalidator.yaml"), nil
}

// LoadConfig builds a T from defaults, config file, environment and the
// command's flags. An explicit file path (from --config) takes precedence
// over the search paths. When no config file exists anywhere, the
// returned T is still fully populated from defaults, environment and
// flags, and the viper.ConfigFileNotFoundError is returned with it so
// callers can persist a default config on first run.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("envalidator")
	v.SetConfigType("yaml")

	if configFilePath != nil {
		v.SetConfigFile(*configFilePath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		// A missing file still yields a usable config; anything else is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("envalidator")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile persists c to the user (or system) config path,
// creating the directory if needed.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600 since the referenced files may point at secrets
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}
