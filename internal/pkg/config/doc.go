// Package config loads the settings shared by videoshare-api and videoshare-cli.
//
// Settings come from a YAML file read through viper, with VIDEOSHARE_* environment
// variables taking precedence. Each section validates itself with go-playground/validator.
package config
