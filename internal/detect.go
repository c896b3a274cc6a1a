package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// HomeEnv overrides the detected home directory when set
	HomeEnv = "CODALAB_HOME"

	envDBFileName  = "env.db"
	configFileName = "config.yaml"
)

// HomePaths holds the client's local state locations
type HomePaths struct {
	Home string // Root of the client's local state
}

// DetectHomePaths detects the client home directory based on the environment
// and the operating system
func DetectHomePaths() (HomePaths, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return GetHomePaths(home)
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return HomePaths{}, fmt.Errorf("failed to get home directory: %w", err)
	}

	var home string
	switch runtime.GOOS {
	case "windows":
		// Prefer the roaming-free local app data directory when available
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			home = filepath.Join(local, "codalab")
		} else {
			home = filepath.Join(userHome, ".codalab")
		}
	default:
		home = filepath.Join(userHome, ".codalab")
	}

	return HomePaths{Home: home}, nil
}

// GetHomePaths returns HomePaths for a custom home or detects the default one
func GetHomePaths(customHome string) (HomePaths, error) {
	if customHome == "" {
		return DetectHomePaths()
	}
	abs, err := filepath.Abs(ExpandHome(customHome))
	if err != nil {
		return HomePaths{}, fmt.Errorf("invalid home path %q: %w", customHome, err)
	}
	return HomePaths{Home: abs}, nil
}

// EnvDBPath returns the path to the per-shell environment database
func (hp HomePaths) EnvDBPath() string {
	return filepath.Join(hp.Home, envDBFileName)
}

// ConfigPath returns the path to the optional config file
func (hp HomePaths) ConfigPath() string {
	return filepath.Join(hp.Home, configFileName)
}

// EnvDBExists checks if the environment database has been created
func (hp HomePaths) EnvDBExists() bool {
	_, err := os.Stat(hp.EnvDBPath())
	return err == nil
}

// ExpandHome replaces a leading "~" with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !hasHomePrefix(path) {
		return path
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return userHome
	}
	return filepath.Join(userHome, path[2:])
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}

// NormalizePath expands "~" and returns the cleaned absolute form of path.
// If the working directory cannot be determined the cleaned input is returned.
func NormalizePath(path string) string {
	expanded := ExpandHome(path)
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return filepath.Clean(expanded)
	}
	return abs
}
