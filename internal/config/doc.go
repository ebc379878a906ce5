// Package config loads red's settings.
//
// Settings come from three layers, later ones winning:
//
//  1. built-in defaults
//  2. the config file (TOML, or YAML for .yaml/.yml)
//  3. RED_* environment variables
//
// Command-line flags are applied by the caller on the returned Config.
package config
