package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/unity-activate"
	projectConfigDir = ".unity-activate"
	configFileName   = "config.yaml"
	dotenvFileName   = ".env"
)

// Load reads the environment and the settings. With an empty configDir the
// settings are layered; otherwise only configDir/config.yaml is used.
func Load(configDir string) (*Config, error) {
	environment, err := LoadEnvironment()
	if err != nil {
		return nil, err
	}

	var settings Settings
	if configDir != "" {
		settings, err = LoadSettingsFromPath(configDir)
	} else {
		settings, err = LoadSettings()
	}
	if err != nil {
		return nil, err
	}

	return &Config{Env: environment, Settings: settings}, nil
}

// LoadEnvironment loads ./.env (if any) into the process environment without
// overriding existing variables, then decodes the environment.
func LoadEnvironment() (Environment, error) {
	if err := godotenv.Load(dotenvFileName); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Environment{}, fmt.Errorf("error loading %s: %w", dotenvFileName, err)
	}

	var environment Environment
	if err := env.Load(&environment, nil); err != nil {
		return Environment{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return environment, nil
}

// LoadSettings layers default, user, and project settings.
func LoadSettings() (Settings, error) {
	// 1. Start with the defaults
	settings := GetDefaultSettings()

	// 2. User-specific settings
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userSettings, err := loadSettingsFromFile(userConfigPath)
		if err != nil {
			return Settings{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		settings = mergeSettings(settings, userSettings)
	}

	// 3. Project-specific settings
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectSettings, err := loadSettingsFromFile(projectConfigPath)
		if err != nil {
			return Settings{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		settings = mergeSettings(settings, projectSettings)
	}

	return settings, nil
}

// LoadSettingsFromPath merges dir/config.yaml over the defaults. The file
// must exist.
func LoadSettingsFromPath(dir string) (Settings, error) {
	path := filepath.Join(dir, configFileName)
	fileSettings, err := loadSettingsFromFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeSettings(GetDefaultSettings(), fileSettings), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func loadSettingsFromFile(filePath string) (Settings, error) {
	var settings Settings
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Settings{}, err
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// mergeSettings merges 'overlay' into 'base'. Empty overlay fields keep the
// base value; a non-empty extraArgs list replaces the base list.
func mergeSettings(base, overlay Settings) Settings {
	merged := base

	if overlay.Editor.PathTemplate != "" {
		merged.Editor.PathTemplate = overlay.Editor.PathTemplate
	}
	if len(overlay.Editor.ExtraArgs) > 0 {
		merged.Editor.ExtraArgs = append([]string(nil), overlay.Editor.ExtraArgs...)
	}
	if overlay.Project.Subdirectory != "" {
		merged.Project.Subdirectory = overlay.Project.Subdirectory
	}

	return merged
}
