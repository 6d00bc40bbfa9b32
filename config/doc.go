// Package config locates, loads, and saves client configuration files.
//
// It uses Viper to read configuration from files and environment
// variables, supporting YAML and JSON formats plus .env overrides.
//
// # Locating the file
//
// Location resolves the configuration path with a fixed precedence:
// an explicit path, then an environment variable, then a per-user
// default under the home folder, then a system-wide fallback.
//
//	path, err := config.Location(cliPath, "TLSKIT_CONF",
//	    config.DefaultUserConfPath, config.DefaultSystemConfPath)
package config
