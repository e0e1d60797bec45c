package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/raysh454/fhscan/internal/logging"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "fhscan.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/fhscan"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger logging.Logger
	// HomeDir and WorkDir override the user's home and the current
	// directory; tests set them.
	HomeDir string
	WorkDir string
}

// NewLoader creates a new configuration loader.
func NewLoader(logger logging.Logger) *Loader {
	return &Loader{logger: logging.OrNop(logger).With(logging.Field{Key: "component", Value: "config"})}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/fhscan/config.yaml)
// 3. Project config (fhscan.yaml in current or parent directories)
// 4. explicitPath, when set; a missing explicit file is an error
func (l *Loader) Load(explicitPath string) (*Config, error) {
	config := DefaultConfig()

	if userConfigPath := l.userConfigPath(); userConfigPath != "" {
		if userConfig, err := LoadFromFile(userConfigPath); err == nil {
			l.logger.Debug("loaded user config", logging.Field{Key: "path", Value: userConfigPath})
			config.Merge(userConfig)
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("failed to load user config",
				logging.Field{Key: "path", Value: userConfigPath},
				logging.Field{Key: "error", Value: err})
		}
	}

	if projectConfigPath := l.findProjectConfig(); projectConfigPath != "" {
		projectConfig, err := LoadFromFile(projectConfigPath)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("loaded project config", logging.Field{Key: "path", Value: projectConfigPath})
		config.Merge(projectConfig)
	}

	if explicitPath != "" {
		explicit, err := LoadFromFile(explicitPath)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("loaded config", logging.Field{Key: "path", Value: explicitPath})
		config.Merge(explicit)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// EnsureUserConfig creates the user config file with defaults if it doesn't exist.
func (l *Loader) EnsureUserConfig() (string, error) {
	userConfigPath := l.userConfigPath()
	if userConfigPath == "" {
		return "", fmt.Errorf("cannot determine home directory")
	}
	if _, err := os.Stat(userConfigPath); err == nil {
		return userConfigPath, nil
	}
	if err := DefaultConfig().SaveToFile(userConfigPath); err != nil {
		return "", err
	}
	l.logger.Info("created default user config", logging.Field{Key: "path", Value: userConfigPath})
	return userConfigPath, nil
}

func (l *Loader) userConfigPath() string {
	home := l.HomeDir
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for fhscan.yaml in the working directory and its parents.
func (l *Loader) findProjectConfig() string {
	dir := l.WorkDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = cwd
	}

	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
