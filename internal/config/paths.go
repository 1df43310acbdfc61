package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFile is the dotenv file loaded from the working directory.
const EnvFile = ".env"

// LoadDotEnv loads EnvFile if present. Variables already set in the
// environment are not overridden.
func LoadDotEnv() error {
	if _, err := os.Stat(EnvFile); err != nil {
		return nil
	}
	if err := godotenv.Load(EnvFile); err != nil {
		return fmt.Errorf("load %s: %w", EnvFile, err)
	}
	return nil
}

// ResolvePath returns the config file path in priority order:
// 1. the flag value
// 2. FASTPATH_CONFIG environment variable
// 3. $XDG_CONFIG_HOME/fastpath/config.yaml
// 4. ~/.config/fastpath/config.yaml
// explicit reports whether the path came from the flag or the env var.
func ResolvePath(flagValue string) (path string, explicit bool, err error) {
	if flagValue != "" {
		return flagValue, true, nil
	}
	if p := os.Getenv("FASTPATH_CONFIG"); p != "" {
		return p, true, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "fastpath", "config.yaml"), false, nil
}
