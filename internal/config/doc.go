// Package config handles onekp configuration: defaults, CLI-populated
// settings, validation, and the optional .onekp YAML configuration file.
package config
