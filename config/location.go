package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default configuration locations. The user path is relative to the home
// folder; the system path is absolute.
const (
	DefaultUserConfPath   = ".tlskit/tlskit.yaml"
	DefaultSystemConfPath = "/etc/tlskit/tlskit.yaml"
)

// FileSystem abstracts file existence checks and .env loading so location
// logic can be tested without touching the real filesystem.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

// Exists reports whether the path exists.
func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadEnv loads a .env file into the process environment.
func (rfs *RealFileSystem) LoadEnv(path string) error {
	return loadDotEnv(path)
}

// Location resolves the configuration file path.
//
// Precedence:
//  1. explicitPath, when non-empty. The file must exist.
//  2. The path named by envVar, when the variable is set. The file must
//     exist.
//  3. userConfPath relative to the home folder, when that file exists.
//  4. systemConfPath, whether or not it exists.
//
// An explicit or environment-provided path that does not exist is an
// error rather than a silent fallthrough: the caller asked for that
// specific file.
func Location(explicitPath, envVar, userConfPath, systemConfPath string) (string, error) {
	return locationWithFS(&RealFileSystem{}, explicitPath, envVar, userConfPath, systemConfPath)
}

func locationWithFS(fs FileSystem, explicitPath, envVar, userConfPath, systemConfPath string) (string, error) {
	if explicitPath != "" {
		if !fs.Exists(explicitPath) {
			return "", fmt.Errorf("config: file %q does not exist", explicitPath)
		}
		return explicitPath, nil
	}

	if envVar != "" {
		if envPath := os.Getenv(envVar); envPath != "" {
			if !fs.Exists(envPath) {
				return "", fmt.Errorf("config: file %q from %s does not exist", envPath, envVar)
			}
			return envPath, nil
		}
	}

	if home, err := HomeFolder(); err == nil {
		userPath := filepath.Join(home, userConfPath)
		if fs.Exists(userPath) {
			return userPath, nil
		}
	}

	return systemConfPath, nil
}
