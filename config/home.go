package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoHomeFolder is returned when no home directory can be determined
// from the environment.
var ErrNoHomeFolder = errors.New("config: unable to determine the user home folder")

// HomeFolder returns the current user's home directory. It checks HOME
// first, then the Windows variables USERPROFILE and HOMEDRIVE+HOMEPATH.
func HomeFolder() (string, error) {
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	if profile := os.Getenv("USERPROFILE"); profile != "" {
		return profile, nil
	}
	drive := os.Getenv("HOMEDRIVE")
	path := os.Getenv("HOMEPATH")
	if drive != "" && path != "" {
		return drive + path, nil
	}
	return "", ErrNoHomeFolder
}

// ExpandHome replaces a leading "~" or "~/" with the user's home folder.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := HomeFolder()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
