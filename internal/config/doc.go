// Package config manages the user-level configuration file
// (~/.vueforge/config.yaml) through Viper, with environment variable
// overrides under the VUEFORGE_ prefix.
package config
