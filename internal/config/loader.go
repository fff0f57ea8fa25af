package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gmotion/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/gmotion"
	configFileName = "config.yaml"
)

// GetDefaultConfigPathOrPanic returns the default configuration directory.
func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads configuration from the specified directory. The directory
// is expected to contain config.yaml; a missing file yields the defaults.
func LoadConfig(configPath string) (GmotionConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		logging.Info("ConfigLoader", "Error loading config.yaml from %s: %s", configFilePath, err)
		return GmotionConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		// config malformed
		return GmotionConfig{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	if config.Gmsaas.Path == "" {
		config.Gmsaas.Path = "gmsaas"
	}
	if config.Gmsaas.SettleIntervalMs <= 0 {
		config.Gmsaas.SettleIntervalMs = 500
	}
	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}
