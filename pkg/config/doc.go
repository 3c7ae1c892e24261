// Package config handles configuration management for lineinfile.
// It loads the embedded defaults, then an optional TOML file, then
// LINEINFILE_* environment variables, each layer overriding the previous.
package config
