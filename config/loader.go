package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads the configuration file at path into cfg. YAML and JSON are
// supported, chosen by file extension. Environment variables override
// file values; a .env file next to the configuration file is loaded
// first when present.
func Load(path string, cfg interface{}) error {
	fs := &RealFileSystem{}

	envFile := filepath.Join(filepath.Dir(path), ".env")
	if fs.Exists(envFile) {
		if err := fs.LoadEnv(envFile); err != nil {
			return fmt.Errorf("config: loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshaling %s: %w", path, err)
	}
	return nil
}

// Save writes cfg to path as pretty-printed JSON. Parent directories are
// created as needed; the file is written with owner-only permissions
// since it may hold credentials.
func Save(path string, cfg interface{}) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encoding %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("config: creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

func loadDotEnv(path string) error {
	return godotenv.Load(path)
}
